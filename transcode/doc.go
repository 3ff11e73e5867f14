// SPDX-License-Identifier: EPL-2.0

// Package transcode loads audio files of any format into an audio.PCM
// buffer ready for encoding.
//
// WAV input is read with formats/wav. MP3, Ogg Vorbis and AIFF are decoded
// natively through an audio.Registry. Every other extension is handed to
// ffmpeg, which writes a temporary 16-bit WAV that is read back and then
// removed:
//
//	pcm, err := transcode.Load(ctx, "speech.flac", transcode.Options{})
//
// A missing ffmpeg binary or a non-zero exit status is reported as
// ErrTranscodeFailed.
package transcode
