package video

import (
	"context"
	"errors"
	"strings"
	"testing"

	"get-badapple/domain/video"
)

type mockDownloader struct {
	req        *video.DownloadRequest
	shouldFail bool
	failError  error
	onDownload func()
}

func (m *mockDownloader) Download(ctx context.Context, req *video.DownloadRequest) error {
	if m.shouldFail {
		return m.failError
	}
	m.req = req
	if m.onDownload != nil {
		m.onDownload()
	}
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
	removeErr    error
	resetErr     error
}

func (m *mockWorkspace) RemoveFile(path string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removedFiles = append(m.removedFiles, path)
	return nil
}

func (m *mockWorkspace) ResetDir(path string) error {
	if m.resetErr != nil {
		return m.resetErr
	}
	m.resetDirs = append(m.resetDirs, path)
	return nil
}

func TestDownloadRemovesStaleVideoFirst(t *testing.T) {
	checker := &mockFileChecker{existingFiles: map[string]bool{}}
	downloader := &mockDownloader{}
	downloader.onDownload = func() {
		checker.existingFiles["bad_apple.mp4"] = true
	}
	workspace := &mockWorkspace{}

	service := NewDownloadService(downloader, workspace, checker, "mp4")

	result, err := service.Download(context.Background(), DownloadInput{
		URL: "https://example.com/watch?v=abc123",
	})
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	if result.OutputPath != "bad_apple.mp4" {
		t.Errorf("OutputPath = %q, want bad_apple.mp4", result.OutputPath)
	}
	if len(workspace.removedFiles) != 1 || workspace.removedFiles[0] != "bad_apple.mp4" {
		t.Errorf("removedFiles = %v, want [bad_apple.mp4]", workspace.removedFiles)
	}
	if downloader.req == nil {
		t.Fatal("downloader was not invoked")
	}
	if downloader.req.ContainerFormat != "mp4" {
		t.Errorf("ContainerFormat = %q, want mp4", downloader.req.ContainerFormat)
	}
}

func TestDownloadEmptyURL(t *testing.T) {
	service := NewDownloadService(&mockDownloader{}, &mockWorkspace{}, &mockFileChecker{existingFiles: map[string]bool{}}, "")

	_, err := service.Download(context.Background(), DownloadInput{URL: ""})
	if err == nil {
		t.Fatal("expected error for empty URL")
	}
}

func TestDownloadFailurePropagates(t *testing.T) {
	downloader := &mockDownloader{shouldFail: true, failError: errors.New("network unreachable")}
	workspace := &mockWorkspace{}
	service := NewDownloadService(downloader, workspace, &mockFileChecker{existingFiles: map[string]bool{}}, "mp4")

	_, err := service.Download(context.Background(), DownloadInput{
		URL: "https://example.com/watch?v=abc123",
	})
	if err == nil {
		t.Fatal("expected error when downloader fails")
	}
	if !strings.Contains(err.Error(), "network unreachable") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDownloadMissingOutput(t *testing.T) {
	// Downloader reports success but no file appears
	service := NewDownloadService(&mockDownloader{}, &mockWorkspace{}, &mockFileChecker{existingFiles: map[string]bool{}}, "mp4")

	_, err := service.Download(context.Background(), DownloadInput{
		URL: "https://example.com/watch?v=abc123",
	})
	if err == nil {
		t.Fatal("expected error when output file is missing")
	}
	if !strings.Contains(err.Error(), "was not created") {
		t.Errorf("unexpected error: %v", err)
	}
}
