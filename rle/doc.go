// SPDX-License-Identifier: EPL-2.0

// Package rle converts sample sequences to and from the comma delimited token
// text stored inside TXAC files.
//
// # Token Forms
//
// Every token ends with a comma:
//
//	-812,        literal: one sample
//	5^4,         exact run: four samples equal to 5
//	7~2,1,2,     near repeat: 7, the next 2 literals, then 7 again
//	(1,2)^3,     block repeat: "1,2," three times (decoder only)
//
// # Encoding
//
// Encode scans left to right. A run of two or more equal samples always
// becomes an exact run. Otherwise the encoder looks up to MaxSniperDistance
// samples ahead for the same value; the nearest match becomes a near repeat
// whose second occurrence is elided. Everything else is a literal.
//
//	text := rle.Encode([]int32{7, 1, 2, 7, 5, 5, 5, 5})
//	// "7~2,1,2,5^4,"
//
// # Decoding
//
// A Decoder parses the text in a single pass and applies its gain stage to
// every value it produces. Malformed tokens are dropped and reported through
// the logger; decoding itself never fails:
//
//	dec := rle.NewDecoder(gain.Booster(gain.DefaultDB))
//	samples, stats := dec.Decode(text)
//	if stats.Dropped > 0 {
//	    // some tokens were unusable
//	}
package rle
