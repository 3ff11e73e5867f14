// SPDX-License-Identifier: EPL-2.0

package playback

import "github.com/gopxl/beep/v2"

// DefaultBufferFrames is the scratch size of a Streamer, in frames.
const DefaultBufferFrames = 1024

// Streamer adapts a Cursor to beep.Streamer. Mono buffers are fanned out to
// both output channels; wider buffers contribute their first two channels.
// It never ends and never allocates after construction.
type Streamer struct {
	cursor  *Cursor
	scratch []float32
}

var _ beep.Streamer = (*Streamer)(nil)

// NewStreamer returns a streamer pulling up to bufferFrames frames from c per
// step.
func NewStreamer(c *Cursor, bufferFrames int) *Streamer {
	if bufferFrames <= 0 {
		bufferFrames = DefaultBufferFrames
	}
	return &Streamer{
		cursor:  c,
		scratch: make([]float32, bufferFrames*c.Channels()),
	}
}

// Stream fills samples with stereo frames.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	ch := s.cursor.Channels()
	per := len(s.scratch) / ch

	for done := 0; done < len(samples); {
		frames := min(len(samples)-done, per)
		buf := s.scratch[:frames*ch]
		s.cursor.Pull(buf)

		out := samples[done : done+frames]
		if ch == 1 {
			for i, v := range buf {
				out[i][0] = float64(v)
				out[i][1] = float64(v)
			}
		} else {
			for i := range out {
				out[i][0] = float64(buf[i*ch])
				out[i][1] = float64(buf[i*ch+1])
			}
		}
		done += frames
	}
	return len(samples), true
}

func (s *Streamer) Err() error { return nil }
