package ffmpeg

import (
	"context"
	"fmt"
	"strconv"

	"get-badapple/domain/video"
)

// Extractor implements video.FrameAudioExtractor using ffmpeg
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		e.ffmpegPath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// NewExtractor creates a new FFmpeg-based frame and audio extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract implements video.FrameAudioExtractor. Frames and audio come out of
// a single ffmpeg invocation: the image sequence output samples at the
// requested rate, the audio output encodes the audio stream with video
// suppressed.
func (e *Extractor) Extract(ctx context.Context, req *video.ExtractionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	args := []string{
		"-i", req.SourceVideoPath,
		"-r", strconv.Itoa(req.FrameRate), // Frame sample rate
		req.FramePattern(),
		"-acodec", req.AudioCodec,
		"-vn", // No video in the audio output
		req.AudioPath,
	}

	if err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg extraction failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	_, err := e.runner.Output(ctx, e.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// Ensure Extractor implements video.FrameAudioExtractor
var _ video.FrameAudioExtractor = (*Extractor)(nil)
