// SPDX-License-Identifier: EPL-2.0

package symbol

import (
	"bytes"
	"testing"
)

func TestIndex_Bijection(t *testing.T) {
	t.Parallel()

	for i := range Size {
		c := Symbol(i)
		got, ok := Index(c)
		if !ok {
			t.Fatalf("Index(%q) reported invalid", c)
		}
		if got != i {
			t.Errorf("Index(Symbol(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestIndex_Invalid(t *testing.T) {
	t.Parallel()

	for _, c := range []byte("abc +.\n\x00\xff") {
		if _, ok := Index(c); ok {
			t.Errorf("Index(%q) reported valid", c)
		}
		if Valid(c) {
			t.Errorf("Valid(%q) = true, want false", c)
		}
	}
}

func TestPack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []byte
	}{
		{
			name: "empty",
			text: "",
			want: []byte{},
		},
		{
			name: "even count",
			text: "5,",
			want: []byte{0x5a},
		},
		{
			name: "odd count pads low nibble",
			text: "12,",
			want: []byte{0x12, 0xa0},
		},
		{
			name: "all operators",
			text: "^~()-,",
			want: []byte{0xbc, 0xde, 0xfa},
		},
		{
			name: "invalid bytes skipped",
			text: "1 2\n3,x",
			want: []byte{0x12, 0x3a},
		},
		{
			name: "only invalid bytes",
			text: "abc",
			want: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Pack([]byte(tt.text))
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Pack(%q) = %x, want %x", tt.text, got, tt.want)
			}
		})
	}
}

func TestUnpack_EvenRoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{
		"5,",
		"5^4,",
		"7~2,1,2,",
		"-123,-4^123,",
		"(1,2)^3,",
	}

	for _, text := range texts {
		if len(text)%2 != 0 {
			t.Fatalf("fixture %q has odd length", text)
		}
		got := Unpack(Pack([]byte(text)))
		if string(got) != text {
			t.Errorf("Unpack(Pack(%q)) = %q, want identity", text, got)
		}
	}
}

func TestUnpack_OddCountAddsTrailingZero(t *testing.T) {
	t.Parallel()

	texts := []string{"1,", "12,", "-5,", "100^3,"}
	for _, text := range texts {
		if len(text)%2 == 0 {
			continue
		}
		got := Unpack(Pack([]byte(text)))
		want := text + "0"
		if string(got) != want {
			t.Errorf("Unpack(Pack(%q)) = %q, want %q", text, got, want)
		}
	}
}

func TestUnpack_TotalMapping(t *testing.T) {
	t.Parallel()

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	text := Unpack(data)
	if len(text) != 512 {
		t.Fatalf("len(Unpack) = %d, want 512", len(text))
	}
	for i, c := range text {
		if !Valid(c) {
			t.Fatalf("Unpack produced invalid symbol %q at %d", c, i)
		}
	}
	if !bytes.Equal(Pack(text), data) {
		t.Error("Pack(Unpack(all bytes)) is not the identity")
	}
}

func TestUnpackN(t *testing.T) {
	t.Parallel()

	text := []byte("12,")
	packed := Pack(text)

	got := UnpackN(packed, Count(text))
	if !bytes.Equal(got, text) {
		t.Errorf("UnpackN() = %q, want %q", got, text)
	}

	// n beyond the unpacked length keeps everything
	got = UnpackN(packed, 10)
	if string(got) != "12,0" {
		t.Errorf("UnpackN(n=10) = %q, want %q", got, "12,0")
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	if got := Count([]byte("1 2,x^")); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	if got := PackedLen(3); got != 2 {
		t.Errorf("PackedLen(3) = %d, want 2", got)
	}
}

func TestAppendPack_ZeroAllocsWithCapacity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	text := []byte("12345^8,-9~2,1,2,")
	dst := make([]byte, 0, PackedLen(len(text)))
	allocs := testing.AllocsPerRun(100, func() {
		_ = AppendPack(dst[:0], text)
	})
	if allocs > 0 {
		t.Errorf("AppendPack allocated %v times, want 0", allocs)
	}
}

func BenchmarkPack(b *testing.B) {
	text := bytes.Repeat([]byte("1234,-56^7,8~1,9,"), 4096)

	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	for range b.N {
		_ = Pack(text)
	}
}

func BenchmarkUnpack(b *testing.B) {
	data := Pack(bytes.Repeat([]byte("1234,-56^7,8~1,9,"), 4096))

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for range b.N {
		_ = Unpack(data)
	}
}
