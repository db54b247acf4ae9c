package cmd

import (
	"context"
	"os"

	appinspection "get-badapple/application/inspection"
	"get-badapple/domain/inspection"
	infrainspection "get-badapple/infrastructure/inspection"

	"github.com/spf13/cobra"
)

var inspectFramesDir string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Verify an extracted frames directory",
	Long: `Check the frames directory produced by extract: frame count, contiguous
4-digit numbering, and (when built with -tags=inspect and OpenCV/GoCV)
whether each frame decodes and is not blank.

An empty frames directory is reported as an error; it usually means the
downloaded source had no usable video stream.

Example:
  get-badapple inspect
  get-badapple inspect --frames-dir out/stills`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectFramesDir, "frames-dir", "", "Frames directory to inspect (default from config)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	framesDir := inspectFramesDir
	if framesDir == "" {
		framesDir = cfg.Paths.FramesDirectory
	}

	inspector := infrainspection.NewFrameInspector(
		infrainspection.WithImageFormat(cfg.Extraction.ImageFormat),
	)

	return RunInspectWithDependencies(cmd.Context(), inspector, framesDir, os.Stdout)
}

// RunInspectWithDependencies runs the inspect command with injected dependencies (for testing)
func RunInspectWithDependencies(
	ctx context.Context,
	inspector inspection.FrameInspector,
	framesDir string,
	output OutputWriter,
) error {
	service := appinspection.NewService(inspector, output)

	_, err := service.Inspect(ctx, framesDir)
	return err
}
