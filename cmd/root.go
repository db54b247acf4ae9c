package cmd

import (
	"fmt"
	"os"

	"get-badapple/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "get-badapple",
	Short: "Download a video and extract frames and audio from it",
	Long: `get-badapple downloads a video from a URL and turns it into raw material
for playback experiments:

  - Download the video with yt-dlp as a merged mp4
  - Sample still frames at a fixed rate (5 fps) into frames/%04d.png
  - Extract the audio track losslessly to bad_apple.flac

Both steps run as external processes (yt-dlp and ffmpeg); this tool handles
the bookkeeping around them.

Example:
  get-badapple fetch --url "https://www.youtube.com/watch?v=FtutLA63Cp8"`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// The config file is optional; the documented defaults apply
		cfg = config.Default()
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
