// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files.
//
// ReadPCM loads a whole file into an audio.PCM. The canonical 44-byte
// layout (RIFF, 16-byte fmt, data) is parsed directly; seekable inputs with
// additional chunks go through github.com/go-audio/wav. Only 16 and 32-bit
// integer PCM are accepted:
//
//	f, err := os.Open("voice.wav")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//	pcm, err := wav.ReadPCM(f)
//
// 16-bit samples are shifted left by 16 bits so every buffer in the module
// uses the full int32 range.
//
// Write encodes an audio.PCM with go-audio/wav at 16 or 32 bits. The
// encoder patches the RIFF and data sizes on Close, so the destination has
// to be an io.WriteSeeker such as an *os.File.
//
// Decoder exposes canonical files as an audio.Source for streaming
// pipelines.
package wav
