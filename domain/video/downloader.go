package video

import "context"

// Downloader defines the interface for video retrieval operations
// This is a port that can be implemented by different infrastructure adapters
type Downloader interface {
	// Download fetches the video described by the request and saves it to the
	// request's output path
	Download(ctx context.Context, req *DownloadRequest) error
}
