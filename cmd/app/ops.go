package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"basic-image-editor/internal/transform"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List operations and their parameters",
	Args:  cobra.NoArgs,
	RunE:  runOps,
}

func init() {
	opsCmd.Flags().Int("width", 640, "Image width used to compute parameter ranges")
	opsCmd.Flags().Int("height", 480, "Image height used to compute parameter ranges")
	rootCmd.AddCommand(opsCmd)
}

func runOps(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	out := cmd.OutOrStdout()

	for _, name := range transform.Names() {
		op, _ := transform.Get(name)
		fmt.Fprintf(out, "%s\n    %s\n", name, op.Description())
		for _, p := range op.Parameters(width, height) {
			fmt.Fprintf(out, "    %-12s %s\n", p.Name, describeParameter(p))
		}
	}
	fmt.Fprintf(out, "%s\n    Blur every detected face (needs a cascade file)\n", blurFacesOp)
	return nil
}

func describeParameter(p transform.ParameterInfo) string {
	switch p.Type {
	case transform.ParamInt:
		return fmt.Sprintf("int %d..%d (default %v)", p.Min, p.Max, p.Default)
	case transform.ParamEnum:
		return fmt.Sprintf("one of %s (default %v)", strings.Join(p.Options, "|"), p.Default)
	default:
		return fmt.Sprintf("color name or #rrggbb (default %v)", p.Default)
	}
}
