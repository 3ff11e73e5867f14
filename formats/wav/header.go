// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// HeaderSize is the size of the canonical RIFF/WAVE header: RIFF chunk,
// 16-byte fmt chunk, data chunk header.
const HeaderSize = 44

const formatPCM = 1

var errCanonical = errors.New("wav chunks outside the canonical layout")

// Header describes a canonical PCM WAV file.
type Header struct {
	SampleRate int
	Channels   int
	BitDepth   int
	// DataSize is the declared size of the data chunk. Streaming writers
	// leave it at 0 or 0xffffffff.
	DataSize uint32
}

// bytesPerSample of a supported bit depth.
func (h Header) bytesPerSample() int { return h.BitDepth / 8 }

// parseHeader validates the fixed 44-byte layout. errCanonical reports a
// valid RIFF/WAVE file whose chunks are not where the canonical layout puts
// them.
func parseHeader(header []byte) (Header, error) {
	if len(header) < HeaderSize {
		return Header{}, ErrNotWavFile
	}
	if !bytes.Equal(header[:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}
	if !bytes.Equal(header[12:16], []byte("fmt ")) || binary.LittleEndian.Uint32(header[16:20]) != 16 {
		return Header{}, errCanonical
	}
	if !bytes.Equal(header[36:40], []byte("data")) {
		return Header{}, errCanonical
	}

	if tag := binary.LittleEndian.Uint16(header[20:22]); tag != formatPCM {
		return Header{}, fmt.Errorf("%w: format tag %d", ErrUnsupportedWavLayout, tag)
	}

	h := Header{
		Channels:   int(binary.LittleEndian.Uint16(header[22:24])),
		SampleRate: int(binary.LittleEndian.Uint32(header[24:28])),
		BitDepth:   int(binary.LittleEndian.Uint16(header[34:36])),
		DataSize:   binary.LittleEndian.Uint32(header[40:44]),
	}
	if h.Channels <= 0 || h.SampleRate <= 0 {
		return Header{}, fmt.Errorf("%w: %d Hz x%d", ErrUnsupportedWavLayout, h.SampleRate, h.Channels)
	}
	if err := checkBitDepth(h.BitDepth); err != nil {
		return Header{}, err
	}
	return h, nil
}

// ReadHeader reads and validates the canonical header from r, leaving r at
// the first sample.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, ErrNotWavFile
		}
		return Header{}, fmt.Errorf("reading wav header: %w", err)
	}
	h, err := parseHeader(buf)
	if errors.Is(err, errCanonical) {
		return Header{}, ErrUnsupportedWavChunks
	}
	return h, err
}

func checkBitDepth(depth int) error {
	switch depth {
	case 16, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}
}
