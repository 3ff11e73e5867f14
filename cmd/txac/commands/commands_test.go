// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/txac/audio"
	"github.com/ik5/txac/formats/wav"
	"github.com/ik5/txac/internal/audiotest"
	"github.com/ik5/txac/internal/config"
)

func TestStreamParams(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	tests := []struct {
		name     string
		args     []string
		rate, ch int
		wantErr  bool
	}{
		{"defaults", nil, config.DefaultSampleRate, config.DefaultChannels, false},
		{"rate only", []string{"8000"}, 8000, config.DefaultChannels, false},
		{"rate and channels", []string{"22050", "1"}, 22050, 1, false},
		{"not a number", []string{"fast"}, 0, 0, true},
		{"zero rate", []string{"0"}, 0, 0, true},
		{"negative channels", []string{"8000", "-2"}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rate, ch, err := streamParams(tt.args, cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if rate != tt.rate || ch != tt.ch {
				t.Errorf("got %d Hz x%d, want %d Hz x%d", rate, ch, tt.rate, tt.ch)
			}
		})
	}
}

func TestCRLFWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := crlfWriter{&buf}.Write([]byte("a\nb\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
	if got := buf.String(); got != "a\r\nb\r\n" {
		t.Errorf("got %q", got)
	}
}

func writeInputWAV(t *testing.T, path string, pcm *audio.PCM) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := wav.Write(f, pcm, 16); err != nil {
		t.Fatal(err)
	}
}

// The root command keeps flag state between runs, so the whole pipeline is
// exercised in one sequential test.
func TestEncodeInfoDecode(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	in := filepath.Join(dir, "in.wav")
	enc := filepath.Join(dir, "out.txac")
	out := filepath.Join(dir, "out.wav")

	src := &audio.PCM{
		SampleRate: 8000,
		Channels:   1,
		BitDepth:   16,
		Samples:    audiotest.Sine16(800, 8000, 440, 8000),
	}
	writeInputWAV(t, in, src)

	run := func(args ...string) string {
		t.Helper()
		var stdout bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
		if err := Execute(); err != nil {
			t.Fatalf("txac %s: %v", strings.Join(args, " "), err)
		}
		return stdout.String()
	}

	run("encode", in, enc)
	data, err := os.ReadFile(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("TXAC")) {
		t.Fatalf("encoded file has no header: % x", data[:min(len(data), 8)])
	}

	info := run("info", enc)
	for _, want := range []string{"8000 Hz, 1 channel(s)", "Samples:     800", "Header:      v1"} {
		if !strings.Contains(info, want) {
			t.Errorf("info output missing %q:\n%s", want, info)
		}
	}

	run("decode", "--bits", "16", enc, out)
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := wav.ReadPCM(f)
	if err != nil {
		t.Fatalf("ReadPCM: %v", err)
	}
	if got.SampleRate != 8000 || got.Channels != 1 || len(got.Samples) != len(src.Samples) {
		t.Errorf("decoded %d Hz x%d, %d samples", got.SampleRate, got.Channels, len(got.Samples))
	}
}

func TestDecodeRejectsBitDepth(t *testing.T) {
	prevCfg, prevErr, prevBits := globalConfig, configErr, decodeBits
	globalConfig, configErr, decodeBits = config.Default(), nil, 24
	defer func() { globalConfig, configErr, decodeBits = prevCfg, prevErr, prevBits }()

	err := runDecode(decodeCmd, []string{"missing.txac", "out.wav"})
	if !errors.Is(err, wav.ErrUnsupportedBitDepth) {
		t.Errorf("err = %v, want ErrUnsupportedBitDepth", err)
	}
}
