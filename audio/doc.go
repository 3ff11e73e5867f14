// SPDX-License-Identifier: EPL-2.0

// Package audio holds the PCM plumbing shared by the TXAC tools.
//
// # Sources
//
// A Source streams interleaved float32 samples in [-1,1]. Input decoders
// produce Sources, and the Resampler and MonoMixer wrap one Source in
// another:
//
//	src, _ := decoder.Decode(file)
//	src = audio.NewResampler(src, 22050)
//	src = audio.NewMonoMixer(src)
//
// # PCM Buffers
//
// The codec works on whole buffers of int32 samples. Collect drains a Source
// into a PCM value and PCM.Source turns one back into a stream:
//
//	pcm, err := audio.Collect(src, 16, 4096)
//	// pcm.Samples holds interleaved int32 samples; 16-bit input is <<16
//
// Conform chains both directions to resample and down-mix a buffer before it
// is encoded:
//
//	pcm, err = audio.Conform(pcm, 22050, true)
//
// # Registry
//
// A Registry maps file extensions to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("mp3", mp3Decoder)
//	dec, ok := reg.ForPath("song.MP3")
package audio
