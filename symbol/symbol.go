// SPDX-License-Identifier: EPL-2.0

package symbol

// Alphabet lists the symbols in index order.
const Alphabet = "0123456789,^~()-"

// Size is the number of symbols in the alphabet.
const Size = len(Alphabet)

// invalid marks bytes outside the alphabet in the reverse table.
const invalid = 0xff

var indexOf = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for i := range Size {
		t[Alphabet[i]] = byte(i)
	}
	return t
}()

// Index returns the 4-bit index of c and whether c belongs to the alphabet.
func Index(c byte) (int, bool) {
	v := indexOf[c]
	if v == invalid {
		return 0, false
	}
	return int(v), true
}

// Symbol returns the symbol for the low nibble of i.
func Symbol(i int) byte {
	return Alphabet[i&0x0f]
}

// Valid reports whether c belongs to the alphabet.
func Valid(c byte) bool {
	return indexOf[c] != invalid
}

// Count returns how many bytes of text belong to the alphabet.
func Count(text []byte) int {
	n := 0
	for _, c := range text {
		if indexOf[c] != invalid {
			n++
		}
	}
	return n
}

// PackedLen returns the packed size in bytes of n valid symbols.
func PackedLen(n int) int {
	return (n + 1) / 2
}

// Pack packs the valid symbols of text two per byte. Bytes outside the
// alphabet are skipped. An odd symbol count leaves the last low nibble zero.
func Pack(text []byte) []byte {
	return AppendPack(make([]byte, 0, PackedLen(len(text))), text)
}

// AppendPack appends the packed form of text to dst and returns the extended
// slice.
func AppendPack(dst, text []byte) []byte {
	high := -1
	for _, c := range text {
		v := indexOf[c]
		if v == invalid {
			continue
		}
		if high < 0 {
			high = int(v)
			continue
		}
		dst = append(dst, byte(high<<4)|v)
		high = -1
	}
	if high >= 0 {
		dst = append(dst, byte(high<<4))
	}
	return dst
}

// Unpack expands every byte into two symbols, high nibble first. The result
// is always twice as long as data.
func Unpack(data []byte) []byte {
	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[2*i] = Alphabet[b>>4]
		out[2*i+1] = Alphabet[b&0x0f]
	}
	return out
}

// UnpackN unpacks data and keeps at most n symbols. It is used when the
// symbol count is recorded out of band, which removes the pad symbol left by
// an odd count.
func UnpackN(data []byte, n int) []byte {
	out := Unpack(data)
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
