// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/txac/audio"
	"github.com/ik5/txac/formats/aiff"
	"github.com/ik5/txac/formats/mp3"
	"github.com/ik5/txac/formats/vorbis"
	"github.com/ik5/txac/formats/wav"
)

// DefaultFFmpeg is the ffmpeg binary looked up on PATH.
const DefaultFFmpeg = "ffmpeg"

// Options configures Load.
type Options struct {
	// FFmpeg is the converter binary for formats without a native decoder.
	FFmpeg string
	// TempDir holds intermediate WAV files. Empty means os.TempDir.
	TempDir string
	// Registry maps extensions to native decoders. Nil means NewRegistry.
	Registry *audio.Registry
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.FFmpeg == "" {
		o.FFmpeg = DefaultFFmpeg
	}
	if o.Registry == nil {
		o.Registry = NewRegistry()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// bitDepther is implemented by sources that know the depth of their input.
type bitDepther interface {
	BitDepth() int
}

// NewRegistry returns a registry with the native streaming decoders.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// Load reads an audio file of any supported format into memory. WAV files
// are read directly; formats in the registry are decoded natively; anything
// else is converted by ffmpeg to a temporary 16-bit WAV first.
func Load(ctx context.Context, path string, opts Options) (*audio.PCM, error) {
	opts = opts.withDefaults()
	log := opts.Logger.With("input", path)

	var (
		pcm *audio.PCM
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case ext == ".wav":
		log.Debug("reading wav")
		pcm, err = readWAV(path)
	default:
		if dec, ok := opts.Registry.ForPath(path); ok {
			log.Debug("decoding natively", "format", strings.TrimPrefix(ext, "."))
			pcm, err = decodeFile(path, dec)
			break
		}
		log.Info("converting with ffmpeg", "ffmpeg", opts.FFmpeg)
		pcm, err = viaFFmpeg(ctx, path, opts)
	}
	if err != nil {
		return nil, err
	}

	if len(pcm.Samples) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}
	log.Info("loaded audio",
		"sample_rate", pcm.SampleRate,
		"channels", pcm.Channels,
		"bit_depth", pcm.BitDepth,
		"samples", len(pcm.Samples),
	)
	return pcm, nil
}

func readWAV(path string) (*audio.PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	pcm, err := wav.ReadPCM(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return pcm, nil
}

func decodeFile(path string, dec audio.Decoder) (*audio.PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	depth := 16
	if bd, ok := src.(bitDepther); ok {
		depth = bd.BitDepth()
	}
	pcm, err := audio.Collect(src, depth, 0)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return pcm, nil
}
