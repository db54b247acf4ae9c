package video

import (
	"context"
	"fmt"

	"get-badapple/domain/video"
)

// DownloadResult contains the result of a video download operation
type DownloadResult struct {
	OutputPath string
}

// DownloadService coordinates video retrieval operations
type DownloadService struct {
	downloader  video.Downloader
	workspace   video.Workspace
	fileChecker video.FileChecker
	format      string
}

// NewDownloadService creates a new DownloadService
func NewDownloadService(downloader video.Downloader, workspace video.Workspace, fileChecker video.FileChecker, format string) *DownloadService {
	if format == "" {
		format = video.DefaultContainerFormat
	}
	return &DownloadService{
		downloader:  downloader,
		workspace:   workspace,
		fileChecker: fileChecker,
		format:      format,
	}
}

// DownloadInput represents the input for a download operation
type DownloadInput struct {
	URL        string
	OutputPath string // Optional, uses the default video path if empty
}

// Download removes any stale video at the output path, then retrieves the
// video at the given URL into it
func (s *DownloadService) Download(ctx context.Context, input DownloadInput) (*DownloadResult, error) {
	req, err := video.NewDownloadRequest(input.URL, input.OutputPath, s.format)
	if err != nil {
		return nil, err
	}

	// A stale file from a previous run would collide with the retrieval
	// tool's output
	if err := s.workspace.RemoveFile(req.OutputPath); err != nil {
		return nil, err
	}

	if err := s.downloader.Download(ctx, req); err != nil {
		return nil, err
	}

	if !s.fileChecker.Exists(req.OutputPath) {
		return nil, fmt.Errorf("download finished but %s was not created", req.OutputPath)
	}

	return &DownloadResult{OutputPath: req.OutputPath}, nil
}
