package video

import "fmt"

// DefaultVideoPath is the default output path for the downloaded video
const DefaultVideoPath = "bad_apple.mp4"

// DefaultContainerFormat is the default merge container requested from the
// retrieval tool
const DefaultContainerFormat = "mp4"

// DownloadRequest represents a request to download a video from a URL
type DownloadRequest struct {
	URL             string
	OutputPath      string
	ContainerFormat string
}

// NewDownloadRequest creates a new DownloadRequest with validation
func NewDownloadRequest(url, outputPath, containerFormat string) (*DownloadRequest, error) {
	if url == "" {
		return nil, fmt.Errorf("video URL is required")
	}

	if outputPath == "" {
		outputPath = DefaultVideoPath
	}

	if containerFormat == "" {
		containerFormat = DefaultContainerFormat
	}

	return &DownloadRequest{
		URL:             url,
		OutputPath:      outputPath,
		ContainerFormat: containerFormat,
	}, nil
}
