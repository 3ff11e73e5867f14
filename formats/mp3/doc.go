// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into an audio.Source using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo; mono files are duplicated across
// both channels by the library. Samples are normalized as v/32768, so
// collecting them back to int32 yields exactly v<<16, the same layout the
// WAV reader uses for 16-bit input.
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	pcm, err := audio.Collect(src, mp3.BitDepth, 0)
package mp3
