package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"get-badapple/domain/video"
	"get-badapple/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

All values default to the documented fixed paths, so accepting every prompt
reproduces the standard layout (bad_apple.mp4, frames/, bad_apple.flac).`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to get-badapple setup!")
	fmt.Println()

	cfg := config.Default()

	if err := promptPaths(prompter, cfg); err != nil {
		return err
	}

	if err := promptExtraction(prompter, cfg); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}

func promptPaths(prompter Prompter, cfg *config.Config) error {
	videoPath, err := prompter.Input("Video output path:", cfg.Paths.VideoPath)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Paths.VideoPath = videoPath

	framesDir, err := prompter.Input("Frames directory:", cfg.Paths.FramesDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Paths.FramesDirectory = framesDir

	audioPath, err := prompter.Input("Audio output path:", cfg.Paths.AudioPath)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Paths.AudioPath = audioPath

	return nil
}

func promptExtraction(prompter Prompter, cfg *config.Config) error {
	rateStr, err := prompter.Input("Frame sample rate (fps):", strconv.Itoa(cfg.Extraction.FrameRate))
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	rate, err := strconv.Atoi(rateStr)
	if err != nil || rate <= 0 {
		return fmt.Errorf("frame rate must be a positive integer, got %q", rateStr)
	}
	cfg.Extraction.FrameRate = rate

	format, err := prompter.Input("Frame image format:", cfg.Extraction.ImageFormat)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Extraction.ImageFormat = format

	// flac keeps the audio lossless; leave the default unless there is a
	// reason not to
	codec, err := prompter.Input("Audio codec:", video.DefaultAudioCodec)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Extraction.AudioCodec = codec

	return nil
}
