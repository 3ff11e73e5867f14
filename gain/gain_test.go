// SPDX-License-Identifier: EPL-2.0

package gain

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestFactors(t *testing.T) {
	t.Parallel()

	att := Attenuator(DefaultDB)
	boost := Booster(DefaultDB)

	wantAtt := float32(math.Pow(10, -DefaultDB/20))
	wantBoost := float32(math.Pow(10, DefaultDB/20))

	if att.Factor() != wantAtt {
		t.Errorf("Attenuator factor = %v, want %v", att.Factor(), wantAtt)
	}
	if boost.Factor() != wantBoost {
		t.Errorf("Booster factor = %v, want %v", boost.Factor(), wantBoost)
	}
	if att.DB() != -DefaultDB || boost.DB() != DefaultDB {
		t.Errorf("DB() = %v/%v, want %v/%v", att.DB(), boost.DB(), -DefaultDB, DefaultDB)
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int32
	}{
		{name: "zero", in: 0, want: 0},
		{name: "truncates positive", in: 1.99, want: 1},
		{name: "truncates negative toward zero", in: -1.99, want: -1},
		{name: "largest in range", in: 2147483520, want: 2147483520},
		{name: "exactly 2^31 saturates", in: 2147483648, want: math.MaxInt32},
		{name: "far above", in: 1e12, want: math.MaxInt32},
		{name: "exactly -2^31", in: -2147483648, want: math.MinInt32},
		{name: "far below", in: -1e12, want: math.MinInt32},
		{name: "positive infinity", in: float32(math.Inf(1)), want: math.MaxInt32},
		{name: "negative infinity", in: float32(math.Inf(-1)), want: math.MinInt32},
		{name: "nan", in: float32(math.NaN()), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clamp(tt.in); got != tt.want {
				t.Errorf("Clamp(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestBooster_Clipping(t *testing.T) {
	t.Parallel()

	boost := Booster(DefaultDB)

	if got := boost.Sample(7000); got != math.MaxInt32 {
		t.Errorf("Sample(7000) = %d, want %d", got, int32(math.MaxInt32))
	}
	if got := boost.Sample(-7000); got != math.MinInt32 {
		t.Errorf("Sample(-7000) = %d, want %d", got, int32(math.MinInt32))
	}
	if got := boost.Int(math.MaxInt32); got != math.MaxInt32 {
		t.Errorf("Int(MaxInt32) = %d, want saturation", got)
	}
}

func TestAttenuator_Truncates(t *testing.T) {
	t.Parallel()

	att := Attenuator(DefaultDB)

	// 16-bit full scale shifted into 32 bits
	in := int32(32767) << 16
	want := int32(float32(in) * att.Factor())
	if got := att.Int(in); got != want {
		t.Errorf("Int(%d) = %d, want %d", in, got, want)
	}

	// values below 1/factor vanish
	if got := att.Int(300000); got != 0 {
		t.Errorf("Int(300000) = %d, want 0", got)
	}
	if got := att.Int(-300000); got != 0 {
		t.Errorf("Int(-300000) = %d, want 0", got)
	}
}

func TestApply_BatchMatchesScalar(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))

	for _, stage := range []Stage{Attenuator(DefaultDB), Booster(DefaultDB), Booster(6)} {
		for _, n := range []int{0, 1, 7, 8, 9, 15, 16, 17, 1000, 1003} {
			src := make([]int32, n)
			for i := range src {
				src[i] = rng.Int32() - math.MaxInt32/2
			}
			// mix in edge values
			if n > 3 {
				src[0] = math.MaxInt32
				src[1] = math.MinInt32
				src[2] = 0
			}

			dst := make([]int32, n)
			stage.Apply(dst, src)

			for i, v := range src {
				if want := stage.Int(v); dst[i] != want {
					t.Fatalf("factor %v n=%d: Apply()[%d] = %d, scalar = %d",
						stage.Factor(), n, i, dst[i], want)
				}
			}
		}
	}
}

func TestApplyInPlace(t *testing.T) {
	t.Parallel()

	stage := Booster(20)
	samples := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, -10}
	want := make([]int32, len(samples))
	for i, v := range samples {
		want[i] = stage.Int(v)
	}

	stage.ApplyInPlace(samples)
	for i := range samples {
		if samples[i] != want[i] {
			t.Errorf("samples[%d] = %d, want %d", i, samples[i], want[i])
		}
	}
}

func TestFill(t *testing.T) {
	t.Parallel()

	stage := Booster(DefaultDB)
	want := stage.Sample(5)

	for _, n := range []int{0, 1, 8, 13, 64} {
		dst := make([]int32, n)
		stage.Fill(dst, 5)
		for i, v := range dst {
			if v != want {
				t.Fatalf("n=%d: dst[%d] = %d, want %d", n, i, v, want)
			}
		}
	}
}

func TestRoundTrip_BoundedError(t *testing.T) {
	t.Parallel()

	att := Attenuator(DefaultDB)
	boost := Booster(DefaultDB)
	// one attenuated step is worth 1/att.Factor() in the original domain
	step := int64(boost.Factor()) + 1

	rng := rand.New(rand.NewPCG(3, 4))
	for range 10000 {
		s := rng.Int32N(math.MaxInt32/2) - math.MaxInt32/4
		got := boost.Int(att.Int(s))

		diff := int64(got) - int64(s)
		if diff < 0 {
			diff = -diff
		}
		limit := step + int64(math.Abs(float64(s)))>>18
		if diff > limit {
			t.Fatalf("round trip of %d = %d, error %d exceeds %d", s, got, diff, limit)
		}
	}
}

func TestApply_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	stage := Booster(DefaultDB)
	src := make([]int32, 1027)
	dst := make([]int32, 1027)
	allocs := testing.AllocsPerRun(100, func() {
		stage.Apply(dst, src)
	})
	if allocs > 0 {
		t.Errorf("Apply allocated %v times, want 0", allocs)
	}
}

func BenchmarkApply(b *testing.B) {
	stage := Attenuator(DefaultDB)
	src := make([]int32, 44100)
	for i := range src {
		src[i] = int32(math.Sin(float64(i)*0.01) * math.MaxInt32)
	}
	dst := make([]int32, len(src))

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		stage.Apply(dst, src)
	}
}

func BenchmarkApplyScalar(b *testing.B) {
	stage := Attenuator(DefaultDB)
	src := make([]int32, 44100)
	for i := range src {
		src[i] = int32(math.Sin(float64(i)*0.01) * math.MaxInt32)
	}
	dst := make([]int32, len(src))

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		for j, v := range src {
			dst[j] = stage.Int(v)
		}
	}
}
