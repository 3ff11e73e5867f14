// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/txac/audio"
)

// ReadPCM loads a whole PCM WAV file. 16-bit samples are shifted into the
// upper half of the int32 range; 32-bit samples are kept as they are.
//
// The canonical 44-byte layout is read directly. Files with extra chunks
// (LIST, fact, extensible fmt) are handed to go-audio/wav when r can seek.
func ReadPCM(r io.Reader) (*audio.PCM, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrNotWavFile
		}
		return nil, fmt.Errorf("reading wav header: %w", err)
	}

	h, err := parseHeader(buf)
	if errors.Is(err, errCanonical) {
		rs, ok := r.(io.ReadSeeker)
		if !ok {
			return nil, ErrUnsupportedWavChunks
		}
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewinding wav file: %w", err)
		}
		return readChunked(rs)
	}
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}
	if h.DataSize > 0 && h.DataSize != 0xffffffff && int64(h.DataSize) < int64(len(data)) {
		data = data[:h.DataSize]
	}

	return &audio.PCM{
		SampleRate: h.SampleRate,
		Channels:   h.Channels,
		BitDepth:   h.BitDepth,
		Samples:    decodeSamples(make([]int32, 0, len(data)/h.bytesPerSample()), data, h.BitDepth),
	}, nil
}

// decodeSamples appends the little-endian samples in data to dst. A trailing
// partial sample is ignored.
func decodeSamples(dst []int32, data []byte, depth int) []int32 {
	switch depth {
	case 16:
		for i := 0; i+2 <= len(data); i += 2 {
			dst = append(dst, int32(int16(binary.LittleEndian.Uint16(data[i:])))<<16)
		}
	case 32:
		for i := 0; i+4 <= len(data); i += 4 {
			dst = append(dst, int32(binary.LittleEndian.Uint32(data[i:])))
		}
	}
	return dst
}

func readChunked(rs io.ReadSeeker) (*audio.PCM, error) {
	d := gowav.NewDecoder(rs)
	if !d.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if d.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedWavLayout, d.WavAudioFormat)
	}
	depth := int(d.BitDepth)
	if err := checkBitDepth(depth); err != nil {
		return nil, err
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	shift := 32 - depth
	samples := make([]int32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int32(v) << shift
	}

	return &audio.PCM{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   depth,
		Samples:    samples,
	}, nil
}
