// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Sink is an audio output that periodically pulls from a streamer.
type Sink interface {
	Play(s beep.Streamer) error
	Close() error
}

// SpeakerSink plays through the system audio device with beep's speaker.
// The speaker is process-wide, so only one SpeakerSink may be open.
type SpeakerSink struct {
	rate beep.SampleRate
}

// NewSpeakerSink initializes the speaker at sampleRate with a device buffer
// of bufferFrames frames.
func NewSpeakerSink(sampleRate, bufferFrames int) (*SpeakerSink, error) {
	rate := beep.SampleRate(sampleRate)
	if bufferFrames <= 0 {
		bufferFrames = rate.N(100 * time.Millisecond)
	}
	if err := speaker.Init(rate, bufferFrames); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return &SpeakerSink{rate: rate}, nil
}

func (s *SpeakerSink) Play(st beep.Streamer) error {
	speaker.Play(st)
	return nil
}

func (s *SpeakerSink) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
