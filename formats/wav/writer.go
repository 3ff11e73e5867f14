// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/txac/audio"
	"github.com/ik5/txac/utils"
)

const writeChunk = 8192

// Write stores pcm as a PCM WAV file with the given bit depth (16 or 32).
// 16-bit output keeps the upper half of every sample. The RIFF and data
// sizes are patched when the encoder is closed, so ws must seek.
func Write(ws io.WriteSeeker, pcm *audio.PCM, bitDepth int) error {
	if err := pcm.Validate(); err != nil {
		return err
	}
	if err := checkBitDepth(bitDepth); err != nil {
		return err
	}

	enc := gowav.NewEncoder(ws, pcm.SampleRate, bitDepth, pcm.Channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: pcm.Channels,
			SampleRate:  pcm.SampleRate,
		},
		Data:           make([]int, 0, min(len(pcm.Samples), writeChunk)),
		SourceBitDepth: bitDepth,
	}

	// at least one Write, so an empty buffer still gets its headers
	for start := 0; start == 0 || start < len(pcm.Samples); start += writeChunk {
		chunk := pcm.Samples[start:min(start+writeChunk, len(pcm.Samples))]
		buf.Data = buf.Data[:0]
		for _, v := range chunk {
			if bitDepth == 16 {
				buf.Data = append(buf.Data, int(utils.Int32ToInt16(v)))
			} else {
				buf.Data = append(buf.Data, int(v))
			}
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav file: %w", err)
	}
	return nil
}
