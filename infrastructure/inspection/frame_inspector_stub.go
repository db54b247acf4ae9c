//go:build !inspect

package inspection

import (
	"context"
	"fmt"
	"os"

	"get-badapple/domain/inspection"
)

// FrameInspector is a reduced inspector used when GoCV/OpenCV is not
// available. It verifies frame count and numbering but cannot decode images;
// build with -tags=inspect for blank-frame detection.
type FrameInspector struct {
	imageFormat string
}

// FrameInspectorOption is a functional option for configuring FrameInspector
type FrameInspectorOption func(*FrameInspector)

// WithImageFormat sets the frame image extension to look for
func WithImageFormat(format string) FrameInspectorOption {
	return func(i *FrameInspector) {
		i.imageFormat = format
	}
}

// WithBlankThreshold is a no-op without GoCV
func WithBlankThreshold(threshold float32) FrameInspectorOption {
	return func(i *FrameInspector) {}
}

// NewFrameInspector creates a frame inspector limited to filename checks
// (image decoding requires building with -tags=inspect and OpenCV/GoCV)
func NewFrameInspector(opts ...FrameInspectorOption) *FrameInspector {
	i := &FrameInspector{
		imageFormat: "png",
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Inspect implements inspection.FrameInspector using filename checks only
func (i *FrameInspector) Inspect(ctx context.Context, framesDir string) (inspection.Report, error) {
	entries, err := os.ReadDir(framesDir)
	if err != nil {
		return inspection.Report{}, fmt.Errorf("failed to read frames directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	nums, missing, stray := inspection.CheckSequence(names, i.imageFormat)

	return inspection.Report{
		FrameCount:  len(nums),
		MissingNums: missing,
		StrayFiles:  stray,
	}, nil
}

// Ensure FrameInspector implements inspection.FrameInspector
var _ inspection.FrameInspector = (*FrameInspector)(nil)
