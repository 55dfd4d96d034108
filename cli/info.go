package main

import (
	"github.com/sliverarmory/unhunker"
	"github.com/sliverarmory/unhunker/emit"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <hunk executable>",
	Short: "Print the hunk structure of an executable without linking it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := unhunker.InspectFile(args[0])
		if err != nil {
			return err
		}
		return emit.WriteReport(cmd.OutOrStdout(), f)
	},
}
