package inspection

import (
	"context"
	"fmt"
	"io"

	"get-badapple/domain/inspection"
)

// Service runs a frame inspector over an extracted frames directory and
// renders the findings
type Service struct {
	inspector inspection.FrameInspector
	output    io.Writer
}

// NewService creates a new inspection service
func NewService(inspector inspection.FrameInspector, output io.Writer) *Service {
	return &Service{
		inspector: inspector,
		output:    output,
	}
}

// Inspect verifies the frames directory and writes a report. A directory
// with no frames at all is treated as a failure: it usually means the source
// had no usable video stream.
func (s *Service) Inspect(ctx context.Context, framesDir string) (inspection.Report, error) {
	report, err := s.inspector.Inspect(ctx, framesDir)
	if err != nil {
		return report, err
	}

	fmt.Fprintf(s.output, "Frames directory: %s\n", framesDir)
	fmt.Fprintf(s.output, "Report: %s\n", report.Summary())

	for _, n := range report.MissingNums {
		fmt.Fprintf(s.output, "  missing frame %04d\n", n)
	}
	for _, name := range report.StrayFiles {
		fmt.Fprintf(s.output, "  stray file %s\n", name)
	}
	for _, name := range report.BlankFrames {
		fmt.Fprintf(s.output, "  blank frame %s\n", name)
	}
	for _, name := range report.Undecodable {
		fmt.Fprintf(s.output, "  undecodable frame %s\n", name)
	}

	if report.FrameCount == 0 {
		return report, fmt.Errorf("no frames found in %s; the source may not contain a video stream", framesDir)
	}

	return report, nil
}
