// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ik5/txac"
	"github.com/ik5/txac/audio"
	"github.com/ik5/txac/internal/config"
)

// streamParams reads the optional [sampleRate] [channels] arguments,
// falling back to the configuration.
func streamParams(args []string, cfg *config.Config) (rate, channels int, err error) {
	rate, channels = cfg.SampleRate, cfg.Channels
	if len(args) > 0 {
		if rate, err = positiveArg("sample rate", args[0]); err != nil {
			return 0, 0, err
		}
	}
	if len(args) > 1 {
		if channels, err = positiveArg("channels", args[1]); err != nil {
			return 0, 0, err
		}
	}
	return rate, channels, nil
}

func positiveArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid %s %d: must be positive", name, n)
	}
	return n, nil
}

// decodeOptions builds the codec options for reading data. An explicit
// --gain always wins; otherwise headered files use their recorded gain and
// raw files the configured one.
func decodeOptions(cmd *cobra.Command, data []byte, cfg *config.Config) []txac.Option {
	var opts []txac.Option
	if rawMode {
		opts = append(opts, txac.WithRaw())
	}
	switch {
	case cmd.Flags().Changed("gain"):
		opts = append(opts, txac.WithGainDB(gainDB))
	case rawMode || !txac.HasHeader(data):
		opts = append(opts, txac.WithGainDB(cfg.GainDB))
	}
	return opts
}

// loadStream reads and decodes a TXAC file. Positional stream parameters
// in args apply to raw files only.
func loadStream(cmd *cobra.Command, path string, args []string, cfg *config.Config) (*txac.Stream, *audio.PCM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	stream, err := txac.Decode(data, decodeOptions(cmd, data, cfg)...)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}

	rate, channels, err := streamParams(args, cfg)
	if err != nil {
		return nil, nil, err
	}
	pcm := stream.PCM(rate, channels)
	if err := pcm.Validate(); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return stream, pcm, nil
}
