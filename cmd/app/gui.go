package main

import (
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"basic-image-editor/internal/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui [image]",
	Short: "Open the editor window, optionally with an image",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	logger.WithFields(logrus.Fields{
		"version": AppVersion,
	}).Info("Starting " + AppName)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.DocumentIcon())

	mainApp := gui.NewApplication(myApp, cfg, logger, AppVersion)
	if len(args) == 1 {
		mainApp.LoadImageFromPath(args[0])
	}
	mainApp.ShowAndRun()

	logger.Info("Application shutting down gracefully")
	return nil
}
