package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	apppipeline "get-badapple/application/pipeline"
	"get-badapple/domain/video"
	"get-badapple/infrastructure/config"
	"get-badapple/infrastructure/ffmpeg"
	"get-badapple/infrastructure/filesystem"
	"get-badapple/infrastructure/ytdlp"

	"github.com/spf13/cobra"
)

var (
	fetchURL       string
	fetchFrameRate int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a video and extract its frames and audio",
	Long: `Run the complete pipeline: download the video, then extract still frames
and the audio track in a single ffmpeg pass.

When --url is omitted, the URL is asked for interactively.

The outputs land at the configured paths (by default bad_apple.mp4,
frames/%04d.png at 5 fps, and bad_apple.flac). Stale outputs from a previous
run are removed first.

Example:
  get-badapple fetch --url "https://www.youtube.com/watch?v=FtutLA63Cp8"
  get-badapple fetch --url "https://www.youtube.com/watch?v=FtutLA63Cp8" --frame-rate 10`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "Video URL (prompted for when omitted)")
	fetchCmd.Flags().IntVar(&fetchFrameRate, "frame-rate", 0, "Frames per second to sample (default from config or 5)")
}

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

func runFetch(cmd *cobra.Command, args []string) error {
	url := fetchURL
	if url == "" {
		var err error
		url, err = DefaultPrompter.Input("URL for Bad Apple:", "")
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
	}

	downloader := ytdlp.NewDownloader()
	extractor := ffmpeg.NewExtractor()
	fileChecker := filesystem.NewChecker()
	workspace := filesystem.NewWorkspace()

	return RunFetchWithDependencies(
		cmd.Context(),
		downloader,
		extractor,
		fileChecker,
		workspace,
		GetConfig(),
		url,
		fetchFrameRate,
		os.Stdout,
	)
}

// RunFetchWithDependencies runs the fetch command with injected dependencies (for testing)
func RunFetchWithDependencies(
	ctx context.Context,
	downloader video.Downloader,
	extractor video.FrameAudioExtractor,
	fileChecker video.FileChecker,
	workspace video.Workspace,
	cfg *config.Config,
	url string,
	frameRate int,
	output OutputWriter,
) error {
	// Verify the external tools are available before touching any files
	if verifiable, ok := downloader.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := verifiable.VerifyInstalled(verifyCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("yt-dlp verification failed: %w", err)
		}
	}
	if verifiable, ok := extractor.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := verifiable.VerifyInstalled(verifyCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("ffmpeg verification failed: %w", err)
		}
	}

	service := apppipeline.NewService(downloader, extractor, fileChecker, workspace, cfg, output)

	result, err := service.Run(ctx, apppipeline.Input{
		URL:       url,
		FrameRate: frameRate,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Video: %s\nFrames: %s\nAudio: %s\n", result.VideoPath, result.FramesDir, result.AudioPath)
	return nil
}
