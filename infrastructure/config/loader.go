package config

import (
	"fmt"
	"os"

	"get-badapple/domain/video"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Paths      PathsConfig      `yaml:"paths"`
	Download   DownloadConfig   `yaml:"download"`
	Extraction ExtractionConfig `yaml:"extraction"`
}

// PathsConfig contains output locations for the pipeline artifacts
type PathsConfig struct {
	VideoPath       string `yaml:"video_path"`
	FramesDirectory string `yaml:"frames_directory"`
	AudioPath       string `yaml:"audio_path"`
}

// DownloadConfig contains video retrieval settings
type DownloadConfig struct {
	Format string `yaml:"format"`
}

// ExtractionConfig contains frame and audio extraction settings
type ExtractionConfig struct {
	FrameRate   int    `yaml:"frame_rate"`
	ImageFormat string `yaml:"image_format"`
	AudioCodec  string `yaml:"audio_codec"`
}

// Default returns a configuration populated with the documented defaults
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			VideoPath:       video.DefaultVideoPath,
			FramesDirectory: video.DefaultFramesDir,
			AudioPath:       video.DefaultAudioPath,
		},
		Download: DownloadConfig{
			Format: video.DefaultContainerFormat,
		},
		Extraction: ExtractionConfig{
			FrameRate:   video.DefaultFrameRate,
			ImageFormat: video.DefaultImageFormat,
			AudioCodec:  video.DefaultAudioCodec,
		},
	}
}

// Load reads and parses the configuration from the specified YAML file.
// Fields left empty in the file fall back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Paths.VideoPath == "" {
		c.Paths.VideoPath = video.DefaultVideoPath
	}
	if c.Paths.FramesDirectory == "" {
		c.Paths.FramesDirectory = video.DefaultFramesDir
	}
	if c.Paths.AudioPath == "" {
		c.Paths.AudioPath = video.DefaultAudioPath
	}
	if c.Download.Format == "" {
		c.Download.Format = video.DefaultContainerFormat
	}
	if c.Extraction.FrameRate == 0 {
		c.Extraction.FrameRate = video.DefaultFrameRate
	}
	if c.Extraction.ImageFormat == "" {
		c.Extraction.ImageFormat = video.DefaultImageFormat
	}
	if c.Extraction.AudioCodec == "" {
		c.Extraction.AudioCodec = video.DefaultAudioCodec
	}
}
