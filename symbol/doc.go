// SPDX-License-Identifier: EPL-2.0

// Package symbol implements the 16-symbol alphabet used by TXAC files and the
// nibble packing that stores two symbols per byte.
//
// # Alphabet
//
// Every symbol maps to a 4-bit index:
//
//	index:  0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15
//	symbol: 0 1 2 3 4 5 6 7 8 9 ,  ^  ~  (  )  -
//
// The mapping is total in both directions, so any byte unpacks to exactly two
// symbols (high nibble first).
//
// # Packing
//
// Pack skips every byte that is not part of the alphabet and writes pairs of
// indices as (first<<4)|second. When the number of valid symbols is odd the
// last byte carries a zero low nibble, which Unpack turns into a trailing '0'
// symbol:
//
//	packed := symbol.Pack([]byte("5,"))  // 1 byte: 0x5a
//	text := symbol.Unpack(packed)       // "5,"
//
//	packed = symbol.Pack([]byte("12,"))  // 2 bytes: 0x12 0xa0
//	text = symbol.Unpack(packed)        // "12,0"
//
// Unpack keeps that pad symbol on purpose: raw TXAC files carry no symbol
// count, so the reader cannot tell a pad nibble from a real '0'. UnpackN drops
// it when the count is known.
package symbol
