package inspection

import "context"

// FrameInspector defines the interface for verifying extracted frame images
// This is a port implemented by the GoCV-backed inspector when available
type FrameInspector interface {
	// Inspect examines the frame images in framesDir and reports on their
	// count, numbering and decodability
	Inspect(ctx context.Context, framesDir string) (Report, error)
}
