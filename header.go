// SPDX-License-Identifier: EPL-2.0

package txac

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// Magic starts every headered file.
	Magic = "TXAC"
	// Version is the header version written by this package.
	Version = 1
	// HeaderSize is the encoded size of a version 1 header.
	HeaderSize = 24
)

// Header describes a headered TXAC stream.
type Header struct {
	Version    uint8
	Flags      uint8
	SampleRate uint32
	Channels   uint16
	// GainDB is the attenuation applied by the encoder, in decibels.
	GainDB float32
	// Symbols is the number of symbols in the token text, before packing.
	Symbols uint64
}

// HasHeader reports whether data starts with the header magic.
func HasHeader(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Magic))
}

// Validate checks that the header describes a playable stream.
func (h Header) Validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.SampleRate == 0 {
		return fmt.Errorf("%w: zero sample rate", ErrInvalidHeader)
	}
	if h.Channels == 0 {
		return fmt.Errorf("%w: zero channels", ErrInvalidHeader)
	}
	if g := float64(h.GainDB); math.IsNaN(g) || math.IsInf(g, 0) {
		return fmt.Errorf("%w: gain %v", ErrInvalidHeader, h.GainDB)
	}
	return nil
}

// AppendBinary appends the encoded header to b.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	if err := h.Validate(); err != nil {
		return b, err
	}
	b = append(b, Magic...)
	b = append(b, h.Version, h.Flags)
	b = binary.LittleEndian.AppendUint32(b, h.SampleRate)
	b = binary.LittleEndian.AppendUint16(b, h.Channels)
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(h.GainDB))
	b = binary.LittleEndian.AppendUint64(b, h.Symbols)
	return b, nil
}

// MarshalBinary encodes the header.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// UnmarshalBinary decodes a header from the start of data. Bytes after the
// header are ignored.
func (h *Header) UnmarshalBinary(data []byte) error {
	if !HasHeader(data) {
		return fmt.Errorf("%w: missing magic", ErrInvalidHeader)
	}
	if len(data) < HeaderSize {
		return ErrShortHeader
	}

	v := Header{
		Version:    data[4],
		Flags:      data[5],
		SampleRate: binary.LittleEndian.Uint32(data[6:]),
		Channels:   binary.LittleEndian.Uint16(data[10:]),
		GainDB:     math.Float32frombits(binary.LittleEndian.Uint32(data[12:])),
		Symbols:    binary.LittleEndian.Uint64(data[16:]),
	}
	if err := v.Validate(); err != nil {
		return err
	}
	*h = v
	return nil
}
