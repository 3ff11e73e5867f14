// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// PCM holds a fully decoded, interleaved 32-bit sample buffer.
//
// Samples use the whole int32 range regardless of the depth they were read
// from: 16-bit material is shifted left by 16 bits. BitDepth records the
// depth of the original input.
type PCM struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    []int32
}

// Frames returns the number of sample frames.
func (p *PCM) Frames() int {
	if p.Channels <= 0 {
		return 0
	}
	return len(p.Samples) / p.Channels
}

// Duration returns the playing time of the buffer.
func (p *PCM) Duration() time.Duration {
	if p.SampleRate <= 0 {
		return 0
	}
	return time.Duration(p.Frames()) * time.Second / time.Duration(p.SampleRate)
}

// Validate checks the stream parameters.
func (p *PCM) Validate() error {
	if p.SampleRate <= 0 {
		return ErrInvalidRate
	}
	if p.Channels <= 0 {
		return ErrInvalidChannels
	}
	return nil
}

// Source exposes the buffer as a Source normalized to [-1,1).
func (p *PCM) Source() Source {
	return &pcmSource{pcm: p}
}

const int32Scale = 1.0 / 2147483648.0

type pcmSource struct {
	pcm *PCM
	pos int
}

func (s *pcmSource) SampleRate() int { return s.pcm.SampleRate }
func (s *pcmSource) Channels() int   { return s.pcm.Channels }
func (s *pcmSource) BufSize() int    { return 4096 }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	rest := s.pcm.Samples[s.pos:]
	if len(rest) == 0 {
		return 0, io.EOF
	}
	n := min(len(dst), len(rest))
	for i, v := range rest[:n] {
		dst[i] = float32(v) * int32Scale
	}
	s.pos += n
	if s.pos == len(s.pcm.Samples) {
		return n, io.EOF
	}
	return n, nil
}
