package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	appvideo "get-badapple/application/video"
	"get-badapple/domain/video"
	"get-badapple/infrastructure/config"
	"get-badapple/infrastructure/ffmpeg"
	"get-badapple/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	extractSourcePath string
	extractFrameRate  int
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract frames and audio from a downloaded video",
	Long: `Extract still frames and the audio track from a local video file in a
single ffmpeg pass. The frames directory is wiped and recreated, and a stale
audio file is removed, before extraction starts.

The source defaults to the configured video path (bad_apple.mp4).

Example:
  get-badapple extract
  get-badapple extract --source other.mp4 --frame-rate 10`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractSourcePath, "source", "", "Path to source video file (default from config)")
	extractCmd.Flags().IntVar(&extractFrameRate, "frame-rate", 0, "Frames per second to sample (default from config or 5)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	sourcePath := extractSourcePath
	if sourcePath == "" {
		sourcePath = cfg.Paths.VideoPath
	}

	extractor := ffmpeg.NewExtractor()
	fileChecker := filesystem.NewChecker()
	workspace := filesystem.NewWorkspace()

	return RunExtractWithDependencies(
		cmd.Context(),
		extractor,
		fileChecker,
		workspace,
		cfg,
		sourcePath,
		extractFrameRate,
		os.Stdout,
	)
}

// RunExtractWithDependencies runs the extract command with injected dependencies (for testing)
func RunExtractWithDependencies(
	ctx context.Context,
	extractor video.FrameAudioExtractor,
	fileChecker video.FileChecker,
	workspace video.Workspace,
	cfg *config.Config,
	sourcePath string,
	frameRate int,
	output OutputWriter,
) error {
	// Verify ffmpeg is available if the extractor supports it
	if verifiable, ok := extractor.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			return fmt.Errorf("ffmpeg verification failed: %w", err)
		}
	}

	service := appvideo.NewExtractService(
		extractor,
		fileChecker,
		workspace,
		cfg.Paths.FramesDirectory,
		cfg.Extraction.ImageFormat,
		cfg.Extraction.FrameRate,
		cfg.Extraction.AudioCodec,
		cfg.Paths.AudioPath,
	)

	fmt.Fprintf(output, "Extracting frames and audio from %s...\n", sourcePath)

	result, err := service.Extract(ctx, appvideo.ExtractInput{
		SourcePath: sourcePath,
		FrameRate:  frameRate,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Frames in %s, audio at %s\n", result.FramesDir, result.AudioPath)
	return nil
}
