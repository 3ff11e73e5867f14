// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/txac/formats/wav"
)

var decodeBits int

var decodeCmd = &cobra.Command{
	Use:   "decode <input> <output.wav> [sampleRate] [channels]",
	Short: "Decode a TXAC file to WAV",
	Long: `Decode a TXAC file to a PCM WAV file.

Headered files carry their sample rate and channel count. Raw files use the
optional arguments, or the sample_rate and channels config values.

Examples:
  txac decode song.txac song.wav
  txac decode --bits 16 --raw old.txac old.wav 22050 1`,
	Args: cobra.RangeArgs(2, 4),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().IntVar(&decodeBits, "bits", 32, "output bit depth (16 or 32)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	if decodeBits != 16 && decodeBits != 32 {
		return fmt.Errorf("%w: %d", wav.ErrUnsupportedBitDepth, decodeBits)
	}
	in, out := args[0], args[1]

	stream, pcm, err := loadStream(cmd, in, args[2:], cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := wav.Write(f, pcm, decodeBits); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}

	slog.Info("decoded",
		"input", in,
		"output", out,
		"header", stream.Header != nil,
		"sample_rate", pcm.SampleRate,
		"channels", pcm.Channels,
		"samples", len(pcm.Samples),
		"bits", decodeBits,
	)
	return nil
}
