// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ik5/txac/audio"
)

// ToWAV converts in to a 16-bit PCM WAV file at out using ffmpeg. out is
// overwritten.
func ToWAV(ctx context.Context, ffmpeg, in, out string) error {
	cmd := exec.CommandContext(ctx, ffmpeg,
		"-i", in,
		"-f", "wav",
		"-acodec", "pcm_s16le",
		out,
		"-y",
		"-loglevel", "error",
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %v: %s", ErrTranscodeFailed, err, msg)
		}
		return fmt.Errorf("%w: %v", ErrTranscodeFailed, err)
	}
	return nil
}

func viaFFmpeg(ctx context.Context, path string, opts Options) (*audio.PCM, error) {
	tmp, err := os.CreateTemp(opts.TempDir, "txac-*.wav")
	if err != nil {
		return nil, fmt.Errorf("creating temporary wav: %w", err)
	}
	name := tmp.Name()
	tmp.Close()
	defer func() {
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			opts.Logger.Warn("removing temporary wav", "path", name, "error", err)
		}
	}()

	if err := ToWAV(ctx, opts.FFmpeg, path, name); err != nil {
		return nil, err
	}
	return readWAV(name)
}
