package cmd

import (
	"fmt"
	"os"

	"econ-cdn/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "econ-cdn",
	Short: "Economy item image CDN resolver",
	Long: `econ-cdn turns item display names such as "AWP | Redline (Field-Tested)" into
content-addressed CDN image URLs, using the items catalog, localization and CDN manifest
stored in an S3 compatible bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
