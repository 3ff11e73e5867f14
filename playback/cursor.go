// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"math"
	"sync/atomic"
	"time"
)

const normalize = 1.0 / 2147483648.0

// Cursor serves a fully decoded sample buffer to a real-time audio callback.
// Pull may run concurrently with Seek, SeekRelative and TogglePause from a
// single control goroutine.
type Cursor struct {
	samples    []int32
	sampleRate int
	channels   int

	pos    atomic.Int64
	paused atomic.Bool
}

// NewCursor wraps interleaved samples. Non-positive sampleRate or channels
// are treated as 1.
func NewCursor(samples []int32, sampleRate, channels int) *Cursor {
	return &Cursor{
		samples:    samples,
		sampleRate: max(sampleRate, 1),
		channels:   max(channels, 1),
	}
}

func (c *Cursor) SampleRate() int { return c.sampleRate }
func (c *Cursor) Channels() int   { return c.channels }

// Len returns the number of samples in the buffer.
func (c *Cursor) Len() int { return len(c.samples) }

// Position returns the index of the next sample Pull will read.
func (c *Cursor) Position() int64 { return c.pos.Load() }

// Paused reports whether Pull currently returns silence.
func (c *Cursor) Paused() bool { return c.paused.Load() }

// TogglePause flips between playing and paused and returns the new state.
func (c *Cursor) TogglePause() bool {
	for {
		p := c.paused.Load()
		if c.paused.CompareAndSwap(p, !p) {
			return !p
		}
	}
}

// Pull fills dst with normalized samples starting at the current position,
// wrapping to the start when the buffer is exhausted. When paused or empty,
// dst is filled with silence. It always fills all of dst and returns len(dst).
//
// The new position is published only if no seek happened meanwhile, so a
// seek that races with Pull is never overwritten.
func (c *Cursor) Pull(dst []float32) int {
	total := int64(len(c.samples))
	if c.paused.Load() || total == 0 {
		clear(dst)
		return len(dst)
	}

	start := c.pos.Load()
	pos := start
	if pos >= total || pos < 0 {
		pos = 0
	}

	for filled := 0; filled < len(dst); {
		n := copyNormalized(dst[filled:], c.samples[pos:])
		filled += n
		pos += int64(n)
		if pos >= total {
			pos = 0
		}
	}

	c.pos.CompareAndSwap(start, pos)
	return len(dst)
}

func copyNormalized(dst []float32, src []int32) int {
	n := min(len(dst), len(src))
	for i, v := range src[:n] {
		dst[i] = float32(v) * normalize
	}
	return n
}

// offset converts seconds to a sample offset aligned down to a frame.
func (c *Cursor) offset(seconds float64) (int64, bool) {
	v := seconds * float64(c.sampleRate) * float64(c.channels)
	if math.IsNaN(v) {
		return 0, false
	}
	if v >= math.MaxInt64 {
		return math.MaxInt64, true
	}
	if v <= math.MinInt64 {
		return math.MinInt64, true
	}
	n := int64(v)
	// align toward the frame start
	if r := n % int64(c.channels); r != 0 {
		n -= r
		if r < 0 {
			n -= int64(c.channels)
		}
	}
	return n, true
}

// Seek moves to an absolute time, clamped to the buffer.
func (c *Cursor) Seek(seconds float64) {
	n, ok := c.offset(seconds)
	if !ok {
		n = 0
	}
	c.pos.Store(min(max(n, 0), int64(len(c.samples))))
}

// SeekRelative moves by delta seconds from the current position. A result
// before the start or past the end resets to the start.
func (c *Cursor) SeekRelative(delta float64) {
	d, ok := c.offset(delta)
	if !ok {
		return
	}
	total := int64(len(c.samples))
	for {
		cur := c.pos.Load()
		next := cur + d
		// overflow also lands out of range
		if (d > 0 && next < cur) || next < 0 || next > total {
			next = 0
		}
		if c.pos.CompareAndSwap(cur, next) {
			return
		}
	}
}

// Elapsed returns the playing time at the current position.
func (c *Cursor) Elapsed() time.Duration {
	return c.toDuration(c.pos.Load())
}

// Duration returns the playing time of the whole buffer.
func (c *Cursor) Duration() time.Duration {
	return c.toDuration(int64(len(c.samples)))
}

func (c *Cursor) toDuration(samples int64) time.Duration {
	frames := samples / int64(c.channels)
	return time.Duration(frames) * time.Second / time.Duration(c.sampleRate)
}
