package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"get-badapple/domain/video"
	"get-badapple/infrastructure/config"
)

// --- Mock implementations for testing ---

type mockDownloader struct {
	req        *video.DownloadRequest
	shouldFail bool
	failError  error
	onDownload func(req *video.DownloadRequest)
}

func (m *mockDownloader) Download(ctx context.Context, req *video.DownloadRequest) error {
	if m.shouldFail {
		return m.failError
	}
	m.req = req
	if m.onDownload != nil {
		m.onDownload(req)
	}
	return nil
}

type mockExtractor struct {
	req        *video.ExtractionRequest
	shouldFail bool
	failError  error
}

func (m *mockExtractor) Extract(ctx context.Context, req *video.ExtractionRequest) error {
	if m.shouldFail {
		return m.failError
	}
	m.req = req
	return nil
}

type mockFileChecker struct {
	existingFiles map[string]bool
}

func (m *mockFileChecker) Exists(path string) bool {
	return m.existingFiles[path]
}

type mockWorkspace struct {
	removedFiles []string
	resetDirs    []string
}

func (m *mockWorkspace) RemoveFile(path string) error {
	m.removedFiles = append(m.removedFiles, path)
	return nil
}

func (m *mockWorkspace) ResetDir(path string) error {
	m.resetDirs = append(m.resetDirs, path)
	return nil
}

type fixture struct {
	downloader *mockDownloader
	extractor  *mockExtractor
	checker    *mockFileChecker
	workspace  *mockWorkspace
	output     *bytes.Buffer
	service    *Service
}

func newFixture() *fixture {
	f := &fixture{
		downloader: &mockDownloader{},
		extractor:  &mockExtractor{},
		checker:    &mockFileChecker{existingFiles: map[string]bool{}},
		workspace:  &mockWorkspace{},
		output:     &bytes.Buffer{},
	}
	// Simulate the retrieval tool creating its output file
	f.downloader.onDownload = func(req *video.DownloadRequest) {
		f.checker.existingFiles[req.OutputPath] = true
	}
	f.service = NewService(f.downloader, f.extractor, f.checker, f.workspace, config.Default(), f.output)
	return f
}

func TestRunSuccess(t *testing.T) {
	f := newFixture()

	result, err := f.service.Run(context.Background(), Input{
		URL: "https://example.com/watch?v=abc123",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.VideoPath != "bad_apple.mp4" {
		t.Errorf("VideoPath = %q", result.VideoPath)
	}
	if result.FramesDir != "frames" {
		t.Errorf("FramesDir = %q", result.FramesDir)
	}
	if result.AudioPath != "bad_apple.flac" {
		t.Errorf("AudioPath = %q", result.AudioPath)
	}

	// Stale video and stale audio were both cleared
	wantRemoved := []string{"bad_apple.mp4", "bad_apple.flac"}
	if len(f.workspace.removedFiles) != 2 {
		t.Fatalf("removedFiles = %v, want %v", f.workspace.removedFiles, wantRemoved)
	}
	for i, want := range wantRemoved {
		if f.workspace.removedFiles[i] != want {
			t.Errorf("removedFiles[%d] = %q, want %q", i, f.workspace.removedFiles[i], want)
		}
	}

	if len(f.workspace.resetDirs) != 1 || f.workspace.resetDirs[0] != "frames" {
		t.Errorf("resetDirs = %v, want [frames]", f.workspace.resetDirs)
	}

	if f.extractor.req == nil {
		t.Fatal("extractor was not invoked")
	}
	if f.extractor.req.SourceVideoPath != "bad_apple.mp4" {
		t.Errorf("extraction source = %q", f.extractor.req.SourceVideoPath)
	}
	if f.extractor.req.FrameRate != 5 {
		t.Errorf("FrameRate = %d, want 5", f.extractor.req.FrameRate)
	}
}

func TestRunMissingURL(t *testing.T) {
	f := newFixture()

	_, err := f.service.Run(context.Background(), Input{URL: ""})
	if err == nil {
		t.Fatal("expected error for missing URL")
	}
	if f.downloader.req != nil {
		t.Error("downloader should not run without a URL")
	}
}

func TestRunDownloadFailureHaltsPipeline(t *testing.T) {
	f := newFixture()
	f.downloader.shouldFail = true
	f.downloader.failError = errors.New("unsupported URL")

	_, err := f.service.Run(context.Background(), Input{
		URL: "https://example.com/broken",
	})
	if err == nil {
		t.Fatal("expected error when download fails")
	}
	if !strings.Contains(err.Error(), "download failed") {
		t.Errorf("unexpected error: %v", err)
	}

	// No later step may have executed
	if len(f.workspace.resetDirs) != 0 {
		t.Errorf("frames directory was reset after a failed download: %v", f.workspace.resetDirs)
	}
	if f.extractor.req != nil {
		t.Error("extractor ran after a failed download")
	}
}

func TestRunExtractionFailurePropagates(t *testing.T) {
	f := newFixture()
	f.extractor.shouldFail = true
	f.extractor.failError = errors.New("missing codec")

	_, err := f.service.Run(context.Background(), Input{
		URL: "https://example.com/watch?v=abc123",
	})
	if err == nil {
		t.Fatal("expected error when extraction fails")
	}
	if !strings.Contains(err.Error(), "extraction failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunFrameRateOverride(t *testing.T) {
	f := newFixture()

	_, err := f.service.Run(context.Background(), Input{
		URL:       "https://example.com/watch?v=abc123",
		FrameRate: 2,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if f.extractor.req.FrameRate != 2 {
		t.Errorf("FrameRate = %d, want 2", f.extractor.req.FrameRate)
	}
}

func TestRunReportsProgress(t *testing.T) {
	f := newFixture()

	_, err := f.service.Run(context.Background(), Input{
		URL: "https://example.com/watch?v=abc123",
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := f.output.String()
	for _, want := range []string{"[1/2] Downloading video", "[2/2] Extracting frames and audio", "Done in"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
