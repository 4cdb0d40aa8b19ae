package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := loadConfig()

	root := &cobra.Command{
		Use:          "hw3",
		Short:        "Console demos for the bank account and library lending engines",
		SilenceUsage: true,
	}
	root.AddCommand(newBankCmd(&cfg), newLibraryCmd(&cfg))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
