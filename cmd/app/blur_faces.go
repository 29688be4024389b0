package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gocv.io/x/gocv"

	"basic-image-editor/internal/capture"
	"basic-image-editor/internal/detect"
	"basic-image-editor/internal/io"
)

const (
	keyEsc   = 27
	keyEnter = 13
	keyLF    = 10
	keySpace = 32
)

var blurFacesCmd = &cobra.Command{
	Use:   "blur-faces",
	Short: "Show the camera with faces blurred; ESC quits, Enter or Space saves a snapshot",
	Args:  cobra.NoArgs,
	RunE:  runBlurFaces,
}

func init() {
	blurFacesCmd.Flags().Int("device", 0, "Camera device id")
	blurFacesCmd.Flags().String("cascade", "", "Face cascade XML file")
	blurFacesCmd.Flags().StringP("output", "o", "", "Snapshot file written on Enter or Space")
	rootCmd.AddCommand(blurFacesCmd)
}

func runBlurFaces(cmd *cobra.Command, args []string) error {
	device := cfg.CameraDevice
	if cmd.Flags().Changed("device") {
		device, _ = cmd.Flags().GetInt("device")
	}
	cascade := cfg.CascadePath
	if cmd.Flags().Changed("cascade") {
		cascade, _ = cmd.Flags().GetString("cascade")
	}
	output, _ := cmd.Flags().GetString("output")
	if output != "" && !io.IsWritable(output) {
		return fmt.Errorf("%w: %s", io.ErrUnsupportedFormat, output)
	}

	detector, err := detect.NewFaceDetector(cascade, detect.DefaultParams(), logger)
	if err != nil {
		return err
	}
	defer detector.Close()

	source, err := capture.OpenDevice(device)
	if err != nil {
		return err
	}

	window := gocv.NewWindow("Blur Faces")
	defer window.Close()

	session := capture.NewSession(source, logger.WithField("device", device))
	session.SetFilter(detector.BlurFaces)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	loader := io.NewImageLoader(logger)
	snapshots := 0
	wait := max(int(cfg.FrameInterval/time.Millisecond), 1)

	frame, err := session.Run(ctx, func(shown gocv.Mat) capture.Decision {
		window.IMShow(shown)
		switch window.WaitKey(wait) {
		case keyEsc:
			return capture.Cancel
		case keyEnter, keyLF, keySpace:
			if output == "" {
				logger.Info("No output file given; snapshot skipped")
				break
			}
			if err := loader.SaveImage(shown, output); err != nil {
				logger.WithError(err).Error("Failed to save snapshot")
				break
			}
			snapshots++
		}
		return capture.Continue
	})
	frame.Close()

	logger.WithFields(logrus.Fields{
		"frames":    session.Frames(),
		"snapshots": snapshots,
	}).Info("Face blur session ended")

	if errors.Is(err, capture.ErrCancelled) {
		return nil
	}
	return err
}
