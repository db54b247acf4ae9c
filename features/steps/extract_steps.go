//go:build integration

package steps

import (
	"context"
	"fmt"

	"get-badapple/cmd"

	"github.com/cucumber/godog"
)

func InitializeExtractScenario(ctx *godog.ScenarioContext) {
	ctx.Step(`^a downloaded video at "([^"]*)"$`, aDownloadedVideoAt)
	ctx.Step(`^no video exists at "([^"]*)"$`, noVideoExistsAt)
	ctx.Step(`^I extract frames and audio$`, iExtractFramesAndAudio)
	ctx.Step(`^I extract frames and audio at (\d+) fps$`, iExtractFramesAndAudioAtFps)
	ctx.Step(`^I attempt to extract frames and audio$`, iAttemptToExtractFramesAndAudio)
	ctx.Step(`^the extractor should have sampled at (\d+) fps$`, theExtractorShouldHaveSampledAtFps)
}

func aDownloadedVideoAt(path string) error {
	getWorld().checker.existingFiles[path] = true
	return nil
}

func noVideoExistsAt(path string) error {
	delete(getWorld().checker.existingFiles, path)
	return nil
}

func iExtractFramesAndAudio() error {
	if err := runExtract(0); err != nil {
		return fmt.Errorf("extract failed: %v", err)
	}
	return nil
}

func iExtractFramesAndAudioAtFps(fps int) error {
	if err := runExtract(fps); err != nil {
		return fmt.Errorf("extract failed: %v", err)
	}
	return nil
}

func iAttemptToExtractFramesAndAudio() error {
	// The error is recorded for later assertions
	runExtract(0)
	return nil
}

func runExtract(frameRate int) error {
	w := getWorld()
	w.err = cmd.RunExtractWithDependencies(
		context.Background(),
		w.extractor,
		w.checker,
		w.workspace,
		w.cfg,
		w.cfg.Paths.VideoPath,
		frameRate,
		w.output,
	)
	return w.err
}

func theExtractorShouldHaveSampledAtFps(fps int) error {
	w := getWorld()
	if w.extractor.req == nil {
		return fmt.Errorf("extractor was not invoked")
	}
	if w.extractor.req.FrameRate != fps {
		return fmt.Errorf("frame rate = %d, want %d", w.extractor.req.FrameRate, fps)
	}
	return nil
}
