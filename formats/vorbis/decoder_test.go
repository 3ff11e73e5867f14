// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"
)

// fakeReader hands out interleaved values, at most perRead values each call,
// always whole frames. An empty read (0, nil) is returned first when stall
// is set.
type fakeReader struct {
	rate     int
	channels int
	values   []float32
	perRead  int
	stall    bool
	err      error
}

func (f *fakeReader) SampleRate() int { return f.rate }
func (f *fakeReader) Channels() int   { return f.channels }

func (f *fakeReader) Read(p []float32) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.stall {
		f.stall = false
		return 0, nil
	}
	if len(f.values) == 0 {
		return 0, io.EOF
	}
	n := min(len(p), len(f.values))
	if f.perRead > 0 {
		n = min(n, f.perRead)
	}
	n -= n % f.channels
	copy(p, f.values[:n])
	f.values = f.values[n:]
	return n, nil
}

func readAll(t *testing.T, s *source, size int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, size)
	for {
		n, err := s.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("OggS but not really")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeReader{rate: 48000, channels: 2}}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BitDepth() != 32 {
		t.Errorf("BitDepth() = %d, want 32", src.BitDepth())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	values := []float32{0, 0.5, -0.5, 1, -1, 0.25, 0.125, -0.125}

	tests := []struct {
		name     string
		channels int
		bufSize  int
		perRead  int
		stall    bool
	}{
		{name: "mono", channels: 1, bufSize: 16},
		{name: "stereo", channels: 2, bufSize: 16},
		{name: "stereo odd buffer", channels: 2, bufSize: 5},
		{name: "four channels in pieces", channels: 4, bufSize: 8, perRead: 4},
		{name: "stalled first page", channels: 2, bufSize: 4, stall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &source{dec: &fakeReader{
				rate:     8000,
				channels: tt.channels,
				values:   slices.Clone(values),
				perRead:  tt.perRead,
				stall:    tt.stall,
			}}

			if got := readAll(t, src, tt.bufSize); !slices.Equal(got, values) {
				t.Errorf("read %v, want %v", got, values)
			}
		})
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeReader{rate: 8000, channels: 1, err: io.ErrUnexpectedEOF}}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSource_BufferSmallerThanFrame(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeReader{rate: 8000, channels: 6, values: make([]float32, 12)}}
	n, err := src.ReadSamples(make([]float32, 5))
	if n != 0 || err != nil {
		t.Errorf("ReadSamples() = %d, %v, want 0, nil", n, err)
	}
}
