package ytdlp

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"get-badapple/domain/video"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct{}

// Run executes a command, forwarding its output, and returns any error
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Output executes a command and returns its output
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Downloader implements video.Downloader using the yt-dlp binary
type Downloader struct {
	binaryPath string
	runner     CommandRunner
}

// DownloaderOption is a functional option for configuring Downloader
type DownloaderOption func(*Downloader)

// WithBinaryPath sets a custom yt-dlp executable path
func WithBinaryPath(path string) DownloaderOption {
	return func(d *Downloader) {
		d.binaryPath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) DownloaderOption {
	return func(d *Downloader) {
		d.runner = runner
	}
}

// NewDownloader creates a new yt-dlp based downloader
func NewDownloader(opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		binaryPath: "yt-dlp",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Download implements video.Downloader
func (d *Downloader) Download(ctx context.Context, req *video.DownloadRequest) error {
	args := []string{
		"-o", req.OutputPath, // Output filename template
		"--merge-output-format", req.ContainerFormat,
		req.URL,
	}

	if err := d.runner.Run(ctx, d.binaryPath, args...); err != nil {
		return fmt.Errorf("yt-dlp download failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that yt-dlp is available
func (d *Downloader) VerifyInstalled(ctx context.Context) error {
	_, err := d.runner.Output(ctx, d.binaryPath, "--version")
	if err != nil {
		return fmt.Errorf("yt-dlp not found or not executable: %w", err)
	}
	return nil
}

// Ensure Downloader implements video.Downloader
var _ video.Downloader = (*Downloader)(nil)
