package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/sliverarmory/unhunker"
	"github.com/sliverarmory/unhunker/emit"
	"github.com/sliverarmory/unhunker/hunk"
	"github.com/spf13/cobra"
)

var (
	outputDir    string
	outputFormat string
	verbose      bool
	memConfig    = hunk.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:          "unhunker <hunk executable>",
	Short:        "Link a hunk executable into a statically addressed memory dump",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(cmd.ErrOrStderr())
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := emit.ParseFormat(outputFormat)
		if err != nil {
			return err
		}

		img, err := unhunker.DecodeFile(args[0],
			unhunker.WithConfig(memConfig),
			unhunker.WithLogger(log.StandardLogger()),
		)
		if err != nil {
			return err
		}

		path, err := emit.Write(outputDir, args[0], img, format)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"path":  path,
			"base":  fmtAddr(img.Base),
			"entry": fmtAddr(img.Entry),
			"size":  len(img.Data),
		}).Info("wrote memory image")

		if verbose {
			return emit.WriteSummary(cmd.OutOrStdout(), img)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every pipeline stage")

	flags := rootCmd.Flags()
	flags.StringVarP(&outputDir, "output-dir", "o", ".", "Directory to write the image to")
	flags.StringVarP(&outputFormat, "format", "f", string(emit.FormatMemdump), "Output format: memdump or ihex")
	flags.Uint32Var(&memConfig.Base, "base", hunk.DefaultBase, "Chip/fast memory boundary; chip hunks grow down, others up")
	flags.Uint32Var(&memConfig.ChipFloor, "chip-floor", hunk.DefaultChipFloor, "Lowest address available to chip hunks")
	flags.Uint32Var(&memConfig.FastCeiling, "fast-ceiling", hunk.DefaultFastCeiling, "End of the fast/any memory region")

	rootCmd.AddCommand(infoCmd)
}
