//go:build inspect

package inspection

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"get-badapple/domain/inspection"

	"gocv.io/x/gocv"
)

// FrameInspector implements inspection.FrameInspector using GoCV
type FrameInspector struct {
	imageFormat    string
	blankThreshold float32
}

// FrameInspectorOption is a functional option for configuring FrameInspector
type FrameInspectorOption func(*FrameInspector)

// WithImageFormat sets the frame image extension to look for
func WithImageFormat(format string) FrameInspectorOption {
	return func(i *FrameInspector) {
		i.imageFormat = format
	}
}

// WithBlankThreshold sets the minimum grayscale intensity range below which a
// frame counts as blank
func WithBlankThreshold(threshold float32) FrameInspectorOption {
	return func(i *FrameInspector) {
		i.blankThreshold = threshold
	}
}

// NewFrameInspector creates a new GoCV-based frame inspector
func NewFrameInspector(opts ...FrameInspectorOption) *FrameInspector {
	i := &FrameInspector{
		imageFormat:    "png",
		blankThreshold: 2,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Inspect implements inspection.FrameInspector
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

	report := inspection.Report{
		FrameCount:  len(nums),
		MissingNums: missing,
		StrayFiles:  stray,
	}

	for _, n := range nums {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name := fmt.Sprintf("%04d.%s", n, i.imageFormat)
		path := filepath.Join(framesDir, name)

		mat := gocv.IMRead(path, gocv.IMReadGrayScale)
		if mat.Empty() {
			mat.Close()
			report.Undecodable = append(report.Undecodable, name)
			continue
		}

		minVal, maxVal, _, _ := gocv.MinMaxLoc(mat)
		if maxVal-minVal < i.blankThreshold {
			report.BlankFrames = append(report.BlankFrames, name)
		}
		mat.Close()
	}

	return report, nil
}

// Ensure FrameInspector implements inspection.FrameInspector
var _ inspection.FrameInspector = (*FrameInspector)(nil)
