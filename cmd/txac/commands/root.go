// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/txac/internal/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	gainDB  float64
	rawMode bool

	// Global configuration
	globalConfig *config.Config
	configErr    error
)

var rootCmd = &cobra.Command{
	Use:   "txac",
	Short: "TXAC text audio codec",
	Long: `txac converts audio to a compact printable token stream and back.

Input in WAV, MP3, Ogg Vorbis and AIFF is decoded natively; any other format
is converted with ffmpeg first. Settings are read from ~/.txac/config.yaml.

Examples:
  # Encode at 8 kHz mono
  txac encode --resample 8000 --mono speech.flac speech.txac

  # Decode back to a 16-bit WAV
  txac decode --bits 16 speech.txac speech.wav

  # Play a raw file recorded at 22050 Hz stereo
  txac play --raw old.txac 22050 2
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command returns the root cobra command.
func Command() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.txac/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Float64Var(&gainDB, "gain", 0, "codec gain in dB (default from config, or the file header when decoding)")
	rootCmd.PersistentFlags().BoolVar(&rawMode, "raw", false, "write or read files without a header")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	globalConfig, configErr = config.Load(cfgFile)
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// getConfig returns the loaded configuration.
func getConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	if globalConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return globalConfig, nil
}
