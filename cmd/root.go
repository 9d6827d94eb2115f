package cmd

import (
	"fmt"
	"os"

	"cloud-storage-manager/core/config"
	"cloud-storage-manager/core/logger"
	"cloud-storage-manager/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "storage-manager",
	Short: "Cloud Storage Manager",
	Long: `Cloud Storage Manager is a small client for moving files and reading
and writing text, JSON, and newline-delimited JSON objects in cloud object
storage. It supports MinIO/S3-compatible and Google Cloud Storage backends.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var bucketFlag string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&bucketFlag, "bucket", "", "bucket to use instead of the configured default")
}

// newClient loads configuration and builds the storage client shared by all
// subcommands.
func newClient(cmd *cobra.Command) (*storage.Client, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	backend, err := storage.NewBackend(cmd.Context(), cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	return storage.NewClient(backend, cfg.Storage, logg), logg, nil
}
