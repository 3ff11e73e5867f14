// SPDX-License-Identifier: EPL-2.0

package txac

import (
	"fmt"
	"math"

	"github.com/ik5/txac/audio"
	"github.com/ik5/txac/gain"
	"github.com/ik5/txac/rle"
	"github.com/ik5/txac/symbol"
)

// Stream is a decoded TXAC file.
type Stream struct {
	Samples []int32
	// Header is nil for raw files.
	Header *Header
	Stats  rle.Stats
}

// PCM wraps the samples with stream parameters. Values recorded in the
// header take precedence over sampleRate and channels, which are only
// needed for raw files.
func (s *Stream) PCM(sampleRate, channels int) *audio.PCM {
	if s.Header != nil {
		sampleRate = int(s.Header.SampleRate)
		channels = int(s.Header.Channels)
	}
	return &audio.PCM{
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   32,
		Samples:    s.Samples,
	}
}

func checkGain(db float64) error {
	if math.IsNaN(db) || math.IsInf(db, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidGain, db)
	}
	return nil
}

// Encode attenuates samples, encodes them as tokens and packs the token
// text. The input is not modified.
func Encode(samples []int32, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	if err := checkGain(o.gainDB); err != nil {
		return nil, err
	}

	scaled := make([]int32, len(samples))
	gain.Attenuator(o.gainDB).Apply(scaled, samples)
	text := rle.Encode(scaled)

	var out []byte
	if o.header != nil && !o.raw {
		h := *o.header
		h.Version = Version
		h.GainDB = float32(o.gainDB)
		h.Symbols = uint64(len(text))

		var err error
		out, err = h.AppendBinary(make([]byte, 0, HeaderSize+symbol.PackedLen(len(text))))
		if err != nil {
			return nil, err
		}
	}
	out = symbol.AppendPack(out, text)

	o.logger.Debug("encoded txac stream",
		"samples", len(samples),
		"symbols", len(text),
		"bytes", len(out),
		"header", o.header != nil && !o.raw,
	)
	return out, nil
}

// EncodePCM encodes pcm with a header carrying its sample rate and channel
// count. Pass WithRaw to write a raw file instead.
func EncodePCM(pcm *audio.PCM, opts ...Option) ([]byte, error) {
	if err := pcm.Validate(); err != nil {
		return nil, err
	}
	if uint64(pcm.SampleRate) > math.MaxUint32 || pcm.Channels > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d Hz x%d", ErrInvalidHeader, pcm.SampleRate, pcm.Channels)
	}
	h := Header{SampleRate: uint32(pcm.SampleRate), Channels: uint16(pcm.Channels)}
	return Encode(pcm.Samples, append([]Option{WithHeader(h)}, opts...)...)
}

// Decode unpacks and parses a TXAC file. Malformed tokens are skipped and
// counted in Stream.Stats; only header problems are returned as errors.
func Decode(data []byte, opts ...Option) (*Stream, error) {
	o := newOptions(opts)

	stream := &Stream{}
	payload := data
	db := o.gainDB
	symbols := -1

	if !o.raw && HasHeader(data) {
		h := new(Header)
		if err := h.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		stream.Header = h
		payload = data[HeaderSize:]
		if !o.gainSet {
			db = float64(h.GainDB)
		}

		avail := uint64(len(payload)) * 2
		if h.Symbols > avail {
			o.logger.Warn("txac payload shorter than header symbol count",
				"symbols", h.Symbols, "available", avail)
		}
		symbols = int(min(h.Symbols, avail))
	}
	if err := checkGain(db); err != nil {
		return nil, err
	}

	var text []byte
	if symbols >= 0 {
		text = symbol.UnpackN(payload, symbols)
	} else {
		text = symbol.Unpack(payload)
	}

	dec := rle.NewDecoder(gain.Booster(db),
		rle.WithLogger(o.logger),
		rle.WithBlocks(o.blocks),
		rle.WithSizeHint(len(text)/2),
	)
	stream.Samples, stream.Stats = dec.Decode(text)

	if stream.Stats.Dropped > 0 {
		o.logger.Warn("txac stream had malformed tokens",
			"dropped", stream.Stats.Dropped, "tokens", stream.Stats.Tokens)
	}
	o.logger.Debug("decoded txac stream",
		"bytes", len(data),
		"samples", len(stream.Samples),
		"header", stream.Header != nil,
	)
	return stream, nil
}
