// SPDX-License-Identifier: EPL-2.0

package txac

import (
	"log/slog"

	"github.com/ik5/txac/gain"
)

type options struct {
	header  *Header
	raw     bool
	gainDB  float64
	gainSet bool
	blocks  bool
	logger  *slog.Logger
}

// Option configures Encode and Decode.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		gainDB: gain.DefaultDB,
		blocks: true,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithHeader makes Encode write a version 1 header. SampleRate and Channels
// come from h; the version, gain and symbol count are filled in by Encode.
func WithHeader(h Header) Option {
	return func(o *options) { o.header = &h }
}

// WithRaw disables the header: Encode writes a bare symbol stream and
// Decode does not look for one.
func WithRaw() Option {
	return func(o *options) { o.raw = true }
}

// WithGainDB sets the attenuation in decibels. When decoding it overrides
// the gain recorded in the header.
func WithGainDB(db float64) Option {
	return func(o *options) {
		o.gainDB = db
		o.gainSet = true
	}
}

// WithBlocks enables or disables block repeat expansion when decoding.
func WithBlocks(enabled bool) Option {
	return func(o *options) { o.blocks = enabled }
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
