// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/txac/audio"
)

// BitDepth of the PCM produced by go-mp3.
const BitDepth = 16

// go-mp3 always produces 16-bit little-endian stereo.
const channels = 2

// frameReader is the part of gomp3.Decoder the source needs.
type frameReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  frameReader
	buf  []byte
	tail []byte // odd byte left over from the previous read
}

func newSource(dec frameReader) *source {
	return &source{
		dec: dec,
		buf: make([]byte, 8192),
	}
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) BitDepth() int   { return BitDepth }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

// ReadSamples converts little-endian int16 bytes to float32 as v/32768, so
// the samples scale back to v<<16 exactly.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n := copy(s.buf, s.tail)
	s.tail = s.tail[:0]

	// a whole sample is needed, go-mp3 may hand back a single byte
	var err error
	for n < 2 && err == nil {
		var m int
		m, err = s.dec.Read(s.buf[n:])
		n += m
	}
	if n < 2 {
		return 0, err
	}

	samples := n / 2
	if n%2 == 1 {
		s.tail = append(s.tail, s.buf[n-1])
	}
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / 32768.0
	}
	return samples, err
}

// Decoder decodes MPEG-1/2 layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}
	return newSource(dec), nil
}
