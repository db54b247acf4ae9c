package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	appvideo "get-badapple/application/video"
	"get-badapple/domain/video"
	"get-badapple/infrastructure/config"
)

// Service orchestrates the complete fetch-and-extract workflow
type Service struct {
	downloader  video.Downloader
	extractor   video.FrameAudioExtractor
	fileChecker video.FileChecker
	workspace   video.Workspace
	cfg         *config.Config
	output      io.Writer
}

// NewService creates a new pipeline service
func NewService(
	downloader video.Downloader,
	extractor video.FrameAudioExtractor,
	fileChecker video.FileChecker,
	workspace video.Workspace,
	cfg *config.Config,
	output io.Writer,
) *Service {
	return &Service{
		downloader:  downloader,
		extractor:   extractor,
		fileChecker: fileChecker,
		workspace:   workspace,
		cfg:         cfg,
		output:      output,
	}
}

// Input contains all input parameters for a pipeline run
type Input struct {
	URL       string
	FrameRate int // Optional, overrides the configured frame rate
}

// Result contains the artifact locations of a successful run
type Result struct {
	VideoPath string
	FramesDir string
	AudioPath string
}

// Run executes the full workflow: clear stale video, download, reset frames
// directory, clear stale audio, then one extraction pass for frames and
// audio. A failed step aborts the run; later steps do not execute.
func (s *Service) Run(ctx context.Context, input Input) (*Result, error) {
	startTime := time.Now()

	if input.URL == "" {
		return nil, fmt.Errorf("video URL is required")
	}

	fmt.Fprintf(s.output, "Source URL: %s\n", input.URL)
	fmt.Fprintf(s.output, "Video output: %s\n", s.cfg.Paths.VideoPath)
	fmt.Fprintln(s.output)

	// Step 1: Download (includes clearing the stale video file)
	fmt.Fprintf(s.output, "[1/2] Downloading video...\n")
	downloadService := appvideo.NewDownloadService(s.downloader, s.workspace, s.fileChecker, s.cfg.Download.Format)
	downloadResult, err := downloadService.Download(ctx, appvideo.DownloadInput{
		URL:        input.URL,
		OutputPath: s.cfg.Paths.VideoPath,
	})
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	fmt.Fprintf(s.output, "      Saved %s\n", downloadResult.OutputPath)

	// Step 2: Extract frames and audio (includes resetting the frames
	// directory and clearing the stale audio file)
	fmt.Fprintf(s.output, "[2/2] Extracting frames and audio...\n")
	extractService := appvideo.NewExtractService(
		s.extractor,
		s.fileChecker,
		s.workspace,
		s.cfg.Paths.FramesDirectory,
		s.cfg.Extraction.ImageFormat,
		s.cfg.Extraction.FrameRate,
		s.cfg.Extraction.AudioCodec,
		s.cfg.Paths.AudioPath,
	)
	extractResult, err := extractService.Extract(ctx, appvideo.ExtractInput{
		SourcePath: downloadResult.OutputPath,
		FrameRate:  input.FrameRate,
	})
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	fmt.Fprintf(s.output, "      Frames in %s, audio at %s\n", extractResult.FramesDir, extractResult.AudioPath)

	fmt.Fprintln(s.output)
	fmt.Fprintf(s.output, "Done in %s\n", time.Since(startTime).Round(time.Second))

	return &Result{
		VideoPath: downloadResult.OutputPath,
		FramesDir: extractResult.FramesDir,
		AudioPath: extractResult.AudioPath,
	}, nil
}
