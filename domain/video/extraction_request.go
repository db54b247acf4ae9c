package video

import (
	"fmt"
	"path/filepath"
)

const (
	// DefaultFrameRate is the number of still frames sampled per second
	DefaultFrameRate = 5

	// DefaultFramesDir is the default directory for extracted frame images
	DefaultFramesDir = "frames"

	// DefaultImageFormat is the default frame image extension
	DefaultImageFormat = "png"

	// DefaultAudioCodec is the default codec for the extracted audio track
	DefaultAudioCodec = "flac"

	// DefaultAudioPath is the default output path for the extracted audio
	DefaultAudioPath = "bad_apple.flac"
)

// ExtractionRequest represents a request to extract frames and audio from a
// local video file in a single pass
type ExtractionRequest struct {
	SourceVideoPath string
	FrameRate       int
	FramesDir       string
	ImageFormat     string
	AudioCodec      string
	AudioPath       string
}

// NewExtractionRequest creates a new ExtractionRequest with validation
func NewExtractionRequest(sourcePath string) (*ExtractionRequest, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source video path is required")
	}

	return &ExtractionRequest{
		SourceVideoPath: sourcePath,
		FrameRate:       DefaultFrameRate,
		FramesDir:       DefaultFramesDir,
		ImageFormat:     DefaultImageFormat,
		AudioCodec:      DefaultAudioCodec,
		AudioPath:       DefaultAudioPath,
	}, nil
}

// Validate checks that the request fields are usable
func (r *ExtractionRequest) Validate() error {
	if r.SourceVideoPath == "" {
		return fmt.Errorf("source video path is required")
	}
	if r.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", r.FrameRate)
	}
	if r.FramesDir == "" {
		return fmt.Errorf("frames directory is required")
	}
	if r.AudioPath == "" {
		return fmt.Errorf("audio output path is required")
	}
	return nil
}

// FramePattern returns the printf-style output template for frame images,
// e.g. "frames/%04d.png" for 4-digit zero-padded 1-based numbering
func (r *ExtractionRequest) FramePattern() string {
	format := r.ImageFormat
	if format == "" {
		format = DefaultImageFormat
	}
	return filepath.Join(r.FramesDir, "%04d."+format)
}
