// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/txac/utils"
)

// Collect drains src into a PCM buffer. Float samples are scaled to the
// int32 range; bitDepth is recorded as the depth of the original material.
func Collect(src Source, bitDepth int, bufferSize int) (*PCM, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = 4096
	}
	// keep whole frames per read
	if ch := src.Channels(); ch > 1 && bufferSize%ch != 0 {
		bufferSize += ch - bufferSize%ch
	}

	pcm := &PCM{
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
		BitDepth:   bitDepth,
		// start with ~2 seconds and let append double from there
		Samples: make([]int32, 0, src.SampleRate()*src.Channels()*2),
	}
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm.Samples = append(pcm.Samples, utils.Float32ToInt32(x))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return pcm, nil
}

// Conform resamples pcm to rate (when rate > 0 and differs) and folds it to
// mono (when mono is set), using the cubic Resampler and the MonoMixer. The
// input is returned unchanged when nothing needs to be done.
func Conform(pcm *PCM, rate int, mono bool) (*PCM, error) {
	if err := pcm.Validate(); err != nil {
		return nil, err
	}
	needRate := rate > 0 && rate != pcm.SampleRate
	needMono := mono && pcm.Channels > 1
	if !needRate && !needMono {
		return pcm, nil
	}

	var src Source = pcm.Source()
	if needRate {
		src = NewResampler(src, rate)
	}
	if needMono {
		src = NewMonoMixer(src)
	}
	defer src.Close()

	out, err := Collect(src, pcm.BitDepth, 4096)
	if err != nil {
		return nil, fmt.Errorf("conforming pcm: %w", err)
	}
	return out, nil
}
