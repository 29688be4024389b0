package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"basic-image-editor/internal/core"
	"basic-image-editor/internal/detect"
	"basic-image-editor/internal/io"
	"basic-image-editor/internal/transform"
)

// blurFacesOp is accepted by apply in addition to the registered operations.
const blurFacesOp = "blur_faces"

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply operations to an image file and save the result",
	Example: `  image-editor apply -i in.png -o out.png --op channel:channel=red
  image-editor apply -i in.jpg -o out.png --op resize:width=640,height=480 --op border:thickness=10,color=white`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringP("input", "i", "", "Input image file")
	applyCmd.Flags().StringP("output", "o", "", "Output image file")
	applyCmd.Flags().StringArray("op", nil, "Operation as name:key=value,...; repeat to chain")
	applyCmd.Flags().String("cascade", "", "Face cascade XML for blur_faces")
	applyCmd.MarkFlagRequired("input")
	applyCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	specs, _ := cmd.Flags().GetStringArray("op")
	cascade, _ := cmd.Flags().GetString("cascade")
	if cascade == "" {
		cascade = cfg.CascadePath
	}

	if !io.IsWritable(outputPath) {
		return fmt.Errorf("%w: %s", io.ErrUnsupportedFormat, outputPath)
	}

	loader := io.NewImageLoader(logger)
	editor := core.NewEditor(core.NewImageStore(loader), loader, logger)
	defer editor.Close()

	if err := editor.LoadFile(inputPath); err != nil {
		return err
	}

	var detector *detect.FaceDetector
	defer func() {
		if detector != nil {
			detector.Close()
		}
	}()

	for _, spec := range specs {
		name, params, err := transform.ParseSpec(spec)
		if err != nil {
			return err
		}

		if name == blurFacesOp {
			if detector == nil {
				if detector, err = detect.NewFaceDetector(cascade, detect.DefaultParams(), logger); err != nil {
					return err
				}
			}
			err = editor.ApplyFunc(blurFacesOp, detector.BlurFaces)
		} else {
			err = editor.Apply(name, params)
		}
		if err != nil {
			return fmt.Errorf("applying %q: %w", spec, err)
		}
	}

	if err := editor.SaveFile(outputPath); err != nil {
		return err
	}

	width, height := editor.Store().CurrentSize()
	logger.WithFields(logrus.Fields{
		"output":     outputPath,
		"operations": len(specs),
		"width":      width,
		"height":     height,
	}).Info("Image written")
	return nil
}
