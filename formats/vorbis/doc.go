// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into an audio.Source using
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 already normalized to [-1,1], which is passed
// through unchanged. The channel count and sample rate come from the
// identification header.
package vorbis
