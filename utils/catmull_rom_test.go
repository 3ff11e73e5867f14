// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCatmullRom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		t              float32
		want           float32
	}{
		{"start returns y1", 0, 1, 2, 3, 0, 1},
		{"end returns y2", 0, 1, 2, 3, 1, 2},
		{"linear midpoint", 0, 1, 2, 3, 0.5, 1.5},
		{"linear quarter", 1, 2, 3, 4, 0.25, 2.25},
		{"constant", 0.7, 0.7, 0.7, 0.7, 0.3, 0.7},
		{"symmetric peak", 0, 1, 1, 0, 0.5, 1.125},
		{"negative ramp", 0, -1, -2, -3, 0.5, -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CatmullRom(tt.y0, tt.y1, tt.y2, tt.y3, tt.t)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("CatmullRom(%v, %v, %v, %v, %v) = %v, want %v",
					tt.y0, tt.y1, tt.y2, tt.y3, tt.t, got, tt.want)
			}
		})
	}
}

func TestCatmullRom_Continuous(t *testing.T) {
	t.Parallel()

	// adjacent segments meet at the shared sample
	ys := []float32{0.1, -0.4, 0.9, 0.2, -0.6}
	left := CatmullRom(ys[0], ys[1], ys[2], ys[3], 1)
	right := CatmullRom(ys[1], ys[2], ys[3], ys[4], 0)
	if math.Abs(float64(left-right)) > 1e-6 {
		t.Errorf("segments disagree at the joint: %v vs %v", left, right)
	}
}

func TestCatmullRom_NoAllocs(t *testing.T) {
	var sink float32
	allocs := testing.AllocsPerRun(100, func() {
		sink = CatmullRom(0.1, 0.2, 0.3, 0.4, 0.5)
	})
	if allocs != 0 {
		t.Errorf("CatmullRom allocated %.0f times", allocs)
	}
	_ = sink
}

func BenchmarkCatmullRom(b *testing.B) {
	b.ReportAllocs()
	var sink float32
	for i := 0; b.Loop(); i++ {
		sink = CatmullRom(0.1, 0.2, 0.3, 0.4, float32(i&1023)/1024)
	}
	_ = sink
}
