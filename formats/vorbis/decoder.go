// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/txac/audio"
	"github.com/jfreymuth/oggvorbis"
)

// BitDepth recorded for decoded Vorbis material. Vorbis has no native
// depth; the float output is scaled to the full int32 range.
const BitDepth = 32

// valueReader is the part of oggvorbis.Reader the source needs.
type valueReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec valueReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) BitDepth() int   { return BitDepth }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst. oggvorbis reports the number of
// values written, always a whole number of frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := s.dec.Channels()
	want := len(dst) - len(dst)%ch
	if want == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:want])
	if n == 0 && err == nil {
		// the reader needs another page before it can emit samples
		n, err = s.dec.Read(dst[:want])
	}
	return n, err
}

// Decoder decodes Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}
	return &source{dec: dec}, nil
}
