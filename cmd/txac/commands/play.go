// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ik5/txac/playback"
)

var playCmd = &cobra.Command{
	Use:   "play <input> [sampleRate] [channels]",
	Short: "Play a TXAC file",
	Long: `Play a TXAC file on the default audio device.

Keys:
  space, p   pause / resume
  c, .       seek forward
  x, ,       seek backward
  q          quit

Playback loops until quit. The seek step is the seek_step config value.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	_, pcm, err := loadStream(cmd, args[0], args[1:], cfg)
	if err != nil {
		return err
	}
	if len(pcm.Samples) == 0 {
		return fmt.Errorf("%s: no samples to play", args[0])
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("set terminal raw mode: %w", err)
		}
		defer term.Restore(fd, state)
		// raw mode drops the carriage return from newlines
		logger = slog.New(slog.NewTextHandler(crlfWriter{os.Stderr}, &slog.HandlerOptions{
			Level: logLevel(),
		}))
	}

	sink, err := playback.NewSpeakerSink(pcm.SampleRate, cfg.BufferFrames)
	if err != nil {
		return err
	}
	defer sink.Close()

	cursor := playback.NewCursor(pcm.Samples, pcm.SampleRate, pcm.Channels)
	player := playback.NewPlayer(cursor, sink,
		playback.WithSeekStep(time.Duration(cfg.SeekStep)),
		playback.WithBufferFrames(cfg.BufferFrames),
		playback.WithLogger(logger),
	)

	cmds := make(chan playback.Command, 1)
	go func() {
		if err := playback.KeyCommands(ctx, os.Stdin, cmds); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("reading keys", "error", err)
		}
	}()

	if err := player.Run(ctx, cmds); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// crlfWriter turns "\n" into "\r\n" for terminals in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
