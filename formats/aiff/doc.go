// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files into an audio.Source using
// github.com/go-audio/aiff.
//
// 8, 16, 24 and 32-bit samples are accepted and normalized by their own
// full scale, so 16 and 24-bit material collects back to int32 without
// loss. Inputs that are not seekable are buffered in memory first.
package aiff
