// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/txac/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. It works on interleaved samples and preserves the channel
// count. When downsampling, a one-pole low-pass filter reduces aliasing.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// window of 4 frames: t-1, t0, t+1, t+2
	frames   [4][]float32
	hasFrame [4]bool
	primed   bool

	// fractional position between frames[1] and frames[2]
	pos float64

	srcBuf []float32
	eof    bool

	useFilter   bool
	filterAlpha float32
	filterState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}
	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampled source: %w", err)
	}
	return nil
}

// readFrame reads one frame into dst, applying the anti-alias filter.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.srcBuf)
	got := n > 0
	if got {
		copy(dst, r.srcBuf[:n])
		if r.useFilter {
			for c := range r.channels {
				dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = dst[c]
			}
		}
	}
	if errors.Is(err, io.EOF) {
		r.eof = true
		return got, nil
	}
	if err != nil {
		return got, fmt.Errorf("reading source frame: %w", err)
	}
	return got, nil
}

// prime fills the initial window. The filter starts from the first frame to
// avoid a warm-up transient.
func (r *Resampler) prime() error {
	r.primed = true

	n, err := r.src.ReadSamples(r.srcBuf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			r.eof = true
			return io.EOF
		}
		return fmt.Errorf("reading source frame: %w", err)
	}
	copy(r.frames[0], r.srcBuf[:n])
	copy(r.filterState, r.srcBuf[:n])
	r.hasFrame[0] = true
	if errors.Is(err, io.EOF) {
		r.eof = true
	}

	last := 0
	for i := 1; i < 4; i++ {
		if !r.eof {
			ok, err := r.readFrame(r.frames[i])
			if err != nil {
				return err
			}
			if ok {
				r.hasFrame[i] = true
				last = i
				continue
			}
		}
		// pad with the last real frame
		copy(r.frames[i], r.frames[last])
		r.hasFrame[i] = true
	}
	return nil
}

// advance shifts the window by one frame.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	r.frames[0], r.frames[1], r.frames[2], r.frames[3] = r.frames[1], r.frames[2], r.frames[3], r.frames[0]
	r.hasFrame[0], r.hasFrame[1], r.hasFrame[2] = r.hasFrame[1], r.hasFrame[2], r.hasFrame[3]

	ok, err := r.readFrame(r.frames[3])
	if err != nil {
		return err
	}
	r.hasFrame[3] = ok
	if !ok && r.eof {
		return io.EOF
	}
	return nil
}

// ReadSamples produces interleaved samples at the target rate. len(dst)
// must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	want := len(dst) / r.channels
	written := 0

	for written < want {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if errors.Is(err, io.EOF) {
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.hasFrame[1] || !r.hasFrame[2] {
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range r.channels {
			y1, y2 := r.frames[1][c], r.frames[2][c]
			y0, y3 := y1, y2
			if r.hasFrame[0] {
				y0 = r.frames[0][c]
			}
			if r.hasFrame[3] {
				y3 = r.frames[3][c]
			}
			out[c] = utils.CatmullRom(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
