// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/txac/internal/audiotest"
)

func drain(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufSize)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n == 0 {
			return out
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 1000)
	r := NewResampler(src, 8000)

	if r.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
	if r.BufSize() != src.BufSize() {
		t.Errorf("BufSize() = %d, want %d", r.BufSize(), src.BufSize())
	}
}

func TestResampler_ConstantLevel(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{8000, 22050, 44100, 96000} {
		src := audiotest.NewConstantSource(44100, 1, 4410, 0.5)
		out := drain(t, NewResampler(src, rate), 512)

		if len(out) == 0 {
			t.Fatalf("rate %d: no output", rate)
		}
		for i, v := range out {
			if math.Abs(float64(v-0.5)) > 0.01 {
				t.Fatalf("rate %d: out[%d] = %v, want ≈0.5", rate, i, v)
			}
		}
	}
}

func TestResampler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
	}{
		{name: "downsample", srcRate: 44100, dstRate: 8000},
		{name: "upsample", srcRate: 8000, dstRate: 48000},
		{name: "same rate", srcRate: 16000, dstRate: 16000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.srcRate, 1, tt.srcRate, 440)
			out := drain(t, NewResampler(src, tt.dstRate), 1024)

			want := tt.dstRate
			tolerance := tt.dstRate / 50
			if len(out) < want-tolerance || len(out) > want+tolerance {
				t.Errorf("got %d samples, want ≈%d (±%d)", len(out), want, tolerance)
			}
		})
	}
}

func TestResampler_StereoChannelsStayApart(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(44100, 2, 4410, func(_ int, ch int) float32 {
		if ch == 0 {
			return 0.25
		}
		return -0.75
	})
	out := drain(t, NewResampler(src, 22050), 256)

	if len(out)%2 != 0 {
		t.Fatalf("len(out) = %d, not a whole number of frames", len(out))
	}
	for f := 0; f < len(out); f += 2 {
		if math.Abs(float64(out[f]-0.25)) > 0.01 || math.Abs(float64(out[f+1]+0.75)) > 0.01 {
			t.Fatalf("frame %d = (%v, %v), want (0.25, -0.75)", f/2, out[f], out[f+1])
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 2, 100), 16000)
	_, err := r.ReadSamples(make([]float32, 3))
	if !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 1, 0), 16000)
	n, err := r.ReadSamples(make([]float32, 16))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v, want 0, EOF", n, err)
	}
}

func TestResampler_SingleFrame(t *testing.T) {
	t.Parallel()

	out := drain(t, NewResampler(audiotest.NewConstantSource(8000, 1, 1, 0.5), 16000), 16)
	if len(out) == 0 {
		t.Fatal("a single frame produced no output")
	}
}

func TestResampler_SourceError(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 1000, 0.1).FailAfter(50)
	r := NewResampler(src, 4000)

	buf := make([]float32, 64)
	var err error
	for range 10 {
		if _, err = r.ReadSamples(buf); err != nil {
			break
		}
	}
	if !errors.Is(err, audiotest.ErrMockFailure) {
		t.Errorf("ReadSamples() error = %v, want ErrMockFailure", err)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 10)
	if err := NewResampler(src, 16000).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the wrapped source")
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for range b.N {
		r := NewResampler(audiotest.NewSineSource(44100, 2, 44100, 440), 8000)
		for {
			if _, err := r.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
