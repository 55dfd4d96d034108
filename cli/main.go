package main

import (
	"fmt"
	"os"
)

func fmtAddr(addr uint32) string {
	return fmt.Sprintf("0x%x", addr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
