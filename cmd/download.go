package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	appvideo "get-badapple/application/video"
	"get-badapple/domain/video"
	"get-badapple/infrastructure/filesystem"
	"get-badapple/infrastructure/ytdlp"

	"github.com/spf13/cobra"
)

var downloadURL string

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download a video without extracting anything",
	Long: `Download a video to the configured video path (default bad_apple.mp4),
replacing any previous download. Extraction is left to the extract command.

When --url is omitted, the URL is asked for interactively.

Example:
  get-badapple download --url "https://www.youtube.com/watch?v=FtutLA63Cp8"`,
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringVar(&downloadURL, "url", "", "Video URL (prompted for when omitted)")
}

func runDownload(cmd *cobra.Command, args []string) error {
	url := downloadURL
	if url == "" {
		var err error
		url, err = DefaultPrompter.Input("URL for Bad Apple:", "")
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
	}

	downloader := ytdlp.NewDownloader()
	fileChecker := filesystem.NewChecker()
	workspace := filesystem.NewWorkspace()

	return RunDownloadWithDependencies(
		cmd.Context(),
		downloader,
		fileChecker,
		workspace,
		GetConfig().Paths.VideoPath,
		GetConfig().Download.Format,
		url,
		os.Stdout,
	)
}

// RunDownloadWithDependencies runs the download command with injected dependencies (for testing)
func RunDownloadWithDependencies(
	ctx context.Context,
	downloader video.Downloader,
	fileChecker video.FileChecker,
	workspace video.Workspace,
	outputPath string,
	format string,
	url string,
	output OutputWriter,
) error {
	if verifiable, ok := downloader.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			return fmt.Errorf("yt-dlp verification failed: %w", err)
		}
	}

	service := appvideo.NewDownloadService(downloader, workspace, fileChecker, format)

	fmt.Fprintf(output, "Downloading %s...\n", url)

	result, err := service.Download(ctx, appvideo.DownloadInput{
		URL:        url,
		OutputPath: outputPath,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Saved %s\n", result.OutputPath)
	return nil
}
