//go:build integration

package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"get-badapple/cmd"
	"get-badapple/infrastructure/config"

	"github.com/cucumber/godog"
)

// mockPrompter answers every Input prompt with its default value
type mockPrompter struct {
	confirmAnswer bool
}

func (p *mockPrompter) Input(message string, defaultValue string) (string, error) {
	return defaultValue, nil
}

func (p *mockPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	return p.confirmAnswer, nil
}

type setupContext struct {
	tempDir         string
	configPath      string
	prompter        *mockPrompter
	existingContent []byte
	err             error
}

// SharedSetupContext is reset before each scenario via Before hook
var SharedSetupContext *setupContext

func getSetupContext() *setupContext {
	return SharedSetupContext
}

func InitializeSetupScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "get-badapple-setup-*")
		if err != nil {
			return c, err
		}
		SharedSetupContext = &setupContext{
			tempDir:    dir,
			configPath: filepath.Join(dir, "config", "config.yaml"),
			prompter:   &mockPrompter{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedSetupContext != nil {
			os.RemoveAll(SharedSetupContext.tempDir)
			SharedSetupContext = nil
		}
		return c, nil
	})

	ctx.Step(`^no configuration file exists$`, noConfigurationFileExists)
	ctx.Step(`^a configuration file already exists$`, aConfigurationFileAlreadyExists)
	ctx.Step(`^I decline to overwrite it$`, iDeclineToOverwriteIt)
	ctx.Step(`^I run setup accepting all defaults$`, iRunSetupAcceptingAllDefaults)
	ctx.Step(`^the configuration file should exist$`, theConfigurationFileShouldExist)
	ctx.Step(`^the configured video path should be "([^"]*)"$`, theConfiguredVideoPathShouldBe)
	ctx.Step(`^the configured frames directory should be "([^"]*)"$`, theConfiguredFramesDirectoryShouldBe)
	ctx.Step(`^the configured frame rate should be (\d+)$`, theConfiguredFrameRateShouldBe)
	ctx.Step(`^the configuration file should be unchanged$`, theConfigurationFileShouldBeUnchanged)
}

func noConfigurationFileExists() error {
	return nil
}

func aConfigurationFileAlreadyExists() error {
	s := getSetupContext()
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return err
	}
	s.existingContent = []byte("paths:\n  video_path: keep-me.mp4\n")
	return os.WriteFile(s.configPath, s.existingContent, 0644)
}

func iDeclineToOverwriteIt() error {
	getSetupContext().prompter.confirmAnswer = false
	return nil
}

func iRunSetupAcceptingAllDefaults() error {
	s := getSetupContext()
	s.err = cmd.RunSetupWithPrompter(s.prompter, s.configPath)
	return s.err
}

func theConfigurationFileShouldExist() error {
	s := getSetupContext()
	if _, err := os.Stat(s.configPath); err != nil {
		return fmt.Errorf("configuration file missing: %v", err)
	}
	return nil
}

func loadWrittenConfig() (*config.Config, error) {
	return config.Load(getSetupContext().configPath)
}

func theConfiguredVideoPathShouldBe(want string) error {
	cfg, err := loadWrittenConfig()
	if err != nil {
		return err
	}
	if cfg.Paths.VideoPath != want {
		return fmt.Errorf("video path = %q, want %q", cfg.Paths.VideoPath, want)
	}
	return nil
}

func theConfiguredFramesDirectoryShouldBe(want string) error {
	cfg, err := loadWrittenConfig()
	if err != nil {
		return err
	}
	if cfg.Paths.FramesDirectory != want {
		return fmt.Errorf("frames directory = %q, want %q", cfg.Paths.FramesDirectory, want)
	}
	return nil
}

func theConfiguredFrameRateShouldBe(want int) error {
	cfg, err := loadWrittenConfig()
	if err != nil {
		return err
	}
	if cfg.Extraction.FrameRate != want {
		return fmt.Errorf("frame rate = %d, want %d", cfg.Extraction.FrameRate, want)
	}
	return nil
}

func theConfigurationFileShouldBeUnchanged() error {
	s := getSetupContext()
	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return err
	}
	if string(data) != string(s.existingContent) {
		return fmt.Errorf("configuration file was modified:\n%s", string(data))
	}
	return nil
}
