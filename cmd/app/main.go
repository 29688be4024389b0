// Basic Image Editor
// Loads or captures an image, applies simple transformations and saves it,
// from a Fyne window or the command line.

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"basic-image-editor/internal/config"
)

const (
	AppName    = "Basic Image Editor"
	AppID      = "com.example.basic-image-editor"
	AppVersion = "1.0.0"
)

var (
	cfg    config.Config
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:               "image-editor",
	Short:             "Load, capture, transform and save images",
	Version:           AppVersion,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runGUI,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode with verbose logging")
	rootCmd.PersistentFlags().String("env-file", ".env", "Settings file read before the environment")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration, lets flags override it and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")

	loaded, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cmd.Flags().Changed("debug") {
		loaded.Debug, _ = cmd.Flags().GetBool("debug")
	}
	cfg = loaded

	logger = initLogger(cfg.Debug, cfg.LogFormat)
	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": cfg.Debug,
		"command":    cmd.Name(),
	}).Debug("Configuration loaded")
	return nil
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if debugMode || format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
