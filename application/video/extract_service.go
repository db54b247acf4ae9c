package video

import (
	"context"
	"fmt"

	"get-badapple/domain/video"
)

// ExtractResult contains the result of a frame and audio extraction
type ExtractResult struct {
	FramesDir string
	AudioPath string
}

// ExtractService coordinates single-pass frame and audio extraction
type ExtractService struct {
	extractor   video.FrameAudioExtractor
	fileChecker video.FileChecker
	workspace   video.Workspace
	framesDir   string
	imageFormat string
	frameRate   int
	audioCodec  string
	audioPath   string
}

// NewExtractService creates a new ExtractService
func NewExtractService(extractor video.FrameAudioExtractor, fileChecker video.FileChecker, workspace video.Workspace, framesDir, imageFormat string, frameRate int, audioCodec, audioPath string) *ExtractService {
	if framesDir == "" {
		framesDir = video.DefaultFramesDir
	}
	if imageFormat == "" {
		imageFormat = video.DefaultImageFormat
	}
	if frameRate <= 0 {
		frameRate = video.DefaultFrameRate
	}
	if audioCodec == "" {
		audioCodec = video.DefaultAudioCodec
	}
	if audioPath == "" {
		audioPath = video.DefaultAudioPath
	}
	return &ExtractService{
		extractor:   extractor,
		fileChecker: fileChecker,
		workspace:   workspace,
		framesDir:   framesDir,
		imageFormat: imageFormat,
		frameRate:   frameRate,
		audioCodec:  audioCodec,
		audioPath:   audioPath,
	}
}

// ExtractInput represents the input for an extraction operation
type ExtractInput struct {
	SourcePath string
	FrameRate  int // Optional, uses the service default if zero
}

// Extract resets the frames directory, removes any stale audio file, and runs
// the extractor once to produce both outputs
func (s *ExtractService) Extract(ctx context.Context, input ExtractInput) (*ExtractResult, error) {
	if !s.fileChecker.Exists(input.SourcePath) {
		return nil, fmt.Errorf("source video does not exist: %s", input.SourcePath)
	}

	frameRate := input.FrameRate
	if frameRate <= 0 {
		frameRate = s.frameRate
	}

	req, err := video.NewExtractionRequest(input.SourcePath)
	if err != nil {
		return nil, err
	}
	req.FrameRate = frameRate
	req.FramesDir = s.framesDir
	req.ImageFormat = s.imageFormat
	req.AudioCodec = s.audioCodec
	req.AudioPath = s.audioPath

	// Stale frames from a previous run would mix with the new sequence
	if err := s.workspace.ResetDir(req.FramesDir); err != nil {
		return nil, err
	}

	if err := s.workspace.RemoveFile(req.AudioPath); err != nil {
		return nil, err
	}

	if err := s.extractor.Extract(ctx, req); err != nil {
		return nil, err
	}

	return &ExtractResult{
		FramesDir: req.FramesDir,
		AudioPath: req.AudioPath,
	}, nil
}
