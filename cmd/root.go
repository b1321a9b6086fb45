package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/navps-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "navps",
	Short: "Daily mutual fund NAVPS report downloader",
	Long:  "Downloads the PIFA daily mutual fund NAVPS report, classifies each fund by type, and saves one CSV per trading day.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
