// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/txac/audio"
)

// wavSource streams samples from a canonical WAV file as float32.
type wavSource struct {
	r      io.Reader
	header Header
	buf    []byte
	tmp    []int32
}

func (s *wavSource) SampleRate() int { return s.header.SampleRate }
func (s *wavSource) Channels() int   { return s.header.Channels }
func (s *wavSource) BitDepth() int   { return s.header.BitDepth }
func (s *wavSource) BufSize() int    { return cap(s.buf) / s.header.bytesPerSample() }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * s.header.bytesPerSample()
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("reading wav data: %w", err)
	}

	s.tmp = decodeSamples(s.tmp[:0], s.buf[:n], s.header.BitDepth)
	for i, v := range s.tmp {
		dst[i] = float32(v) * (1.0 / 2147483648.0)
	}

	if err != nil {
		return len(s.tmp), io.EOF
	}
	return len(s.tmp), nil
}

// Decoder streams canonical PCM WAV files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	return &wavSource{
		r:      r,
		header: h,
		buf:    make([]byte, 4096*h.bytesPerSample()),
	}, nil
}
