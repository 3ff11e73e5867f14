// SPDX-License-Identifier: EPL-2.0

// Package txac encodes and decodes TXAC files, a lossy run-length audio
// container.
//
// Encoding attenuates 32-bit samples by a fixed gain (110 dB by default),
// writes every sample as a decimal token with run-length and near-repeat
// compression, and packs the token text two symbols per byte:
//
//	samples ──gain.Attenuator──▶ rle.Encode ──symbol.Pack──▶ file
//	file ──symbol.Unpack──▶ rle.Decoder (gain.Booster) ──▶ samples
//
// # File layout
//
// A raw file is nothing but packed symbols and carries neither the sample
// rate nor the channel count; callers have to supply them. An odd symbol
// count leaves a '0' pad symbol that decodes to one extra zero sample.
//
// Files written with WithHeader (or EncodePCM) start with a 24-byte
// versioned header recording the stream parameters, the gain and the exact
// symbol count, which removes the pad symbol on decode:
//
//	offset size field
//	0      4    magic "TXAC"
//	4      1    version (1)
//	5      1    flags (reserved, 0)
//	6      4    sample rate, uint32 little-endian
//	10     2    channels, uint16 little-endian
//	12     4    gain in dB, float32 little-endian
//	16     8    symbol count, uint64 little-endian
//
// Decode detects the header by its magic; WithRaw forces raw decoding for
// the rare raw file whose first symbols happen to pack to "TXAC".
//
// # Quick start
//
//	data, err := txac.EncodePCM(pcm)
//	if err != nil {
//		return err
//	}
//	stream, err := txac.Decode(data)
//	if err != nil {
//		return err
//	}
//	fmt.Println(len(stream.Samples), stream.Stats.Dropped)
//
// See the playback package for real-time output of a decoded stream.
package txac
