package inspection

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"get-badapple/domain/inspection"
)

type mockInspector struct {
	report inspection.Report
	err    error
}

func (m *mockInspector) Inspect(ctx context.Context, framesDir string) (inspection.Report, error) {
	return m.report, m.err
}

func TestInspectHealthyFrames(t *testing.T) {
	output := &bytes.Buffer{}
	service := NewService(&mockInspector{report: inspection.Report{FrameCount: 120}}, output)

	report, err := service.Inspect(context.Background(), "frames")
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if report.FrameCount != 120 {
		t.Errorf("FrameCount = %d", report.FrameCount)
	}
	if !strings.Contains(output.String(), "120 frames") {
		t.Errorf("output missing frame count:\n%s", output.String())
	}
}

func TestInspectZeroFramesIsError(t *testing.T) {
	output := &bytes.Buffer{}
	service := NewService(&mockInspector{report: inspection.Report{}}, output)

	_, err := service.Inspect(context.Background(), "frames")
	if err == nil {
		t.Fatal("expected error for empty frames directory")
	}
	if !strings.Contains(err.Error(), "no frames found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInspectRendersAnomalies(t *testing.T) {
	output := &bytes.Buffer{}
	service := NewService(&mockInspector{report: inspection.Report{
		FrameCount:  10,
		MissingNums: []int{3},
		StrayFiles:  []string{"notes.txt"},
		BlankFrames: []string{"0007.png"},
	}}, output)

	if _, err := service.Inspect(context.Background(), "frames"); err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	out := output.String()
	for _, want := range []string{"missing frame 0003", "stray file notes.txt", "blank frame 0007.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectErrorPropagates(t *testing.T) {
	service := NewService(&mockInspector{err: errors.New("read failed")}, &bytes.Buffer{})

	_, err := service.Inspect(context.Background(), "frames")
	if err == nil {
		t.Fatal("expected error")
	}
}
