package cmd

import (
	"fmt"
	"os"

	"inventree-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "inventree-sync",
	Short: "InvenTree part synchronization tools",
	Long: `inventree-sync keeps an InvenTree parts catalog in step with suppliers.

It imports products from the Prusa Research e-shop, capacitors and connector
housings bought from GES electronics, refreshes parameters parsed from part
names, and converts purchase order exports into TME order lists.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report with the console logger so failures look like the rest of the output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
