//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"get-badapple/domain/video"
	"get-badapple/infrastructure/config"

	"github.com/cucumber/godog"
)

// mockDownloader records download calls for verification
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

// mockExtractor records the extraction request and the ffmpeg argument
// vector it implies
type mockExtractor struct {
	req        *video.ExtractionRequest
	args       []string
	shouldFail bool
	failError  error
}

func (m *mockExtractor) Extract(ctx context.Context, req *video.ExtractionRequest) error {
	if m.shouldFail {
		return m.failError
	}
	m.req = req
	m.args = []string{
		"-i", req.SourceVideoPath,
		"-r", strconv.Itoa(req.FrameRate),
		req.FramePattern(),
		"-acodec", req.AudioCodec,
		"-vn",
		req.AudioPath,
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
}

func (m *mockWorkspace) RemoveFile(path string) error {
	m.removedFiles = append(m.removedFiles, path)
	return nil
}

func (m *mockWorkspace) ResetDir(path string) error {
	m.resetDirs = append(m.resetDirs, path)
	return nil
}

// pipelineWorld holds shared test state for fetch and extract scenarios
type pipelineWorld struct {
	downloader *mockDownloader
	extractor  *mockExtractor
	checker    *mockFileChecker
	workspace  *mockWorkspace
	cfg        *config.Config
	output     *bytes.Buffer
	err        error
}

// SharedPipelineWorld is reset before each scenario via Before hook
var SharedPipelineWorld *pipelineWorld

func getWorld() *pipelineWorld {
	return SharedPipelineWorld
}

func InitializeCommonScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		w := &pipelineWorld{
			downloader: &mockDownloader{},
			extractor:  &mockExtractor{},
			checker:    &mockFileChecker{existingFiles: make(map[string]bool)},
			workspace:  &mockWorkspace{},
			cfg:        config.Default(),
			output:     &bytes.Buffer{},
		}
		w.downloader.onDownload = func(req *video.DownloadRequest) {
			w.checker.existingFiles[req.OutputPath] = true
		}
		SharedPipelineWorld = w
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedPipelineWorld = nil
		return c, nil
	})

	ctx.Step(`^the run should succeed$`, theRunShouldSucceed)
	ctx.Step(`^the run should fail with "([^"]*)"$`, theRunShouldFailWith)
	ctx.Step(`^the stale video "([^"]*)" should have been removed$`, theStaleFileShouldHaveBeenRemoved)
	ctx.Step(`^the stale audio "([^"]*)" should have been removed$`, theStaleFileShouldHaveBeenRemoved)
	ctx.Step(`^the frames directory "([^"]*)" should have been reset$`, theFramesDirectoryShouldHaveBeenReset)
	ctx.Step(`^the frames directory should not have been touched$`, theFramesDirectoryShouldNotHaveBeenTouched)
	ctx.Step(`^the extractor should not have run$`, theExtractorShouldNotHaveRun)
}

func theRunShouldSucceed() error {
	w := getWorld()
	if w.err != nil {
		return fmt.Errorf("expected success, got error: %v", w.err)
	}
	return nil
}

func theRunShouldFailWith(message string) error {
	w := getWorld()
	if w.err == nil {
		return fmt.Errorf("expected an error containing %q, got success", message)
	}
	if !strings.Contains(w.err.Error(), message) {
		return fmt.Errorf("error %q does not contain %q", w.err.Error(), message)
	}
	return nil
}

func theStaleFileShouldHaveBeenRemoved(path string) error {
	w := getWorld()
	for _, removed := range w.workspace.removedFiles {
		if removed == path {
			return nil
		}
	}
	return fmt.Errorf("%s was not removed; removed files: %v", path, w.workspace.removedFiles)
}

func theFramesDirectoryShouldHaveBeenReset(dir string) error {
	w := getWorld()
	for _, reset := range w.workspace.resetDirs {
		if reset == dir {
			return nil
		}
	}
	return fmt.Errorf("%s was not reset; reset dirs: %v", dir, w.workspace.resetDirs)
}

func theFramesDirectoryShouldNotHaveBeenTouched() error {
	w := getWorld()
	if len(w.workspace.resetDirs) != 0 {
		return fmt.Errorf("frames directory was reset: %v", w.workspace.resetDirs)
	}
	return nil
}

func theExtractorShouldNotHaveRun() error {
	w := getWorld()
	if w.extractor.req != nil {
		return fmt.Errorf("extractor ran with request %+v", w.extractor.req)
	}
	return nil
}
