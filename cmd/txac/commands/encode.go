// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/txac"
	"github.com/ik5/txac/audio"
	"github.com/ik5/txac/transcode"
)

var (
	encodeResample int
	encodeMono     bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <input> <output>",
	Short: "Encode an audio file to TXAC",
	Long: `Encode an audio file to TXAC.

WAV, MP3, Ogg Vorbis and AIFF are read natively. Other formats are
converted to 16-bit WAV with ffmpeg first.

Examples:
  txac encode song.wav song.txac
  txac encode --resample 8000 --mono talk.m4a talk.txac
  txac encode --raw --gain 96 song.mp3 song.txac`,
	Args: cobra.ExactArgs(2),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().IntVar(&encodeResample, "resample", 0, "resample to this rate before encoding (default from config)")
	encodeCmd.Flags().BoolVar(&encodeMono, "mono", false, "fold to a single channel before encoding")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	in, out := args[0], args[1]

	start := time.Now()
	pcm, err := transcode.Load(cmd.Context(), in, transcode.Options{
		FFmpeg: cfg.FFmpeg,
		Logger: slog.Default(),
	})
	if err != nil {
		return err
	}

	rate, mono := cfg.ResampleRate, cfg.Mono
	if cmd.Flags().Changed("resample") {
		rate = encodeResample
	}
	if cmd.Flags().Changed("mono") {
		mono = encodeMono
	}
	if rate < 0 {
		return fmt.Errorf("invalid resample rate %d", rate)
	}
	if pcm, err = audio.Conform(pcm, rate, mono); err != nil {
		return err
	}

	stats := txac.Analyze(pcm.Samples)
	slog.Debug("input amplitude",
		"peak_percent", fmt.Sprintf("%.1f", stats.PeakPercent),
		"mean_percent", fmt.Sprintf("%.1f", stats.MeanPercent),
	)
	if stats.NearClipping {
		slog.Warn("input is near clipping", "peak", stats.Peak)
	}

	db := cfg.GainDB
	if cmd.Flags().Changed("gain") {
		db = gainDB
	}
	opts := []txac.Option{txac.WithGainDB(db), txac.WithLogger(slog.Default())}
	if rawMode || !cfg.Header {
		opts = append(opts, txac.WithRaw())
	}

	data, err := txac.EncodePCM(pcm, opts...)
	if err != nil {
		return fmt.Errorf("encode %s: %w", in, err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	slog.Info("encoded",
		"input", in,
		"output", out,
		"sample_rate", pcm.SampleRate,
		"channels", pcm.Channels,
		"samples", len(pcm.Samples),
		"bytes", len(data),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
