// SPDX-License-Identifier: EPL-2.0

// Package gain applies the fixed decibel scale used by TXAC files.
//
// Encoding attenuates samples by DefaultDB and decoding boosts them back by
// the same amount. Both directions multiply in float32, truncate toward zero
// and clamp to the int32 range; no rounding to nearest takes place, so the
// round trip is lossy for small amplitudes in a reproducible way.
package gain

import (
	"math"
)

// DefaultDB is the scale applied by the reference encoder and decoder.
const DefaultDB = 110.0

// BatchSize is the number of samples processed per block by Apply.
const BatchSize = 8

const (
	// upper bound (exclusive) of values that fit in an int32, as float32
	maxExclusive float32 = 2147483648.0
	minInclusive float32 = -2147483648.0
)

// Stage multiplies samples by a fixed factor.
type Stage struct {
	factor float32
	db     float64
}

// Attenuator returns a stage that lowers the level by db decibels.
func Attenuator(db float64) Stage {
	return Stage{factor: float32(math.Pow(10, -db/20)), db: -db}
}

// Booster returns a stage that raises the level by db decibels.
func Booster(db float64) Stage {
	return Stage{factor: float32(math.Pow(10, db/20)), db: db}
}

// Factor returns the linear multiplier of the stage.
func (s Stage) Factor() float32 { return s.factor }

// DB returns the signed decibel change of the stage.
func (s Stage) DB() float64 { return s.db }

// Sample scales a single value, truncates it toward zero and clamps the
// result to the int32 range. NaN maps to 0.
func (s Stage) Sample(v float32) int32 {
	return Clamp(v * s.factor)
}

// Int scales an int32 sample.
func (s Stage) Int(v int32) int32 {
	return Clamp(float32(v) * s.factor)
}

// Clamp truncates p toward zero and saturates it to the int32 range.
func Clamp(p float32) int32 {
	switch {
	case math.IsNaN(float64(p)):
		return 0
	case p >= maxExclusive:
		return math.MaxInt32
	case p < minInclusive:
		return math.MinInt32
	}
	return int32(p)
}

// Apply scales src into dst. Full blocks of BatchSize samples go through the
// block path and the remainder through the scalar path; both produce
// identical results. dst must be at least as long as src.
func (s Stage) Apply(dst, src []int32) {
	n := len(src) - len(src)%BatchSize
	for i := 0; i < n; i += BatchSize {
		s.block((*[BatchSize]int32)(dst[i:i+BatchSize]), (*[BatchSize]int32)(src[i:i+BatchSize]))
	}
	for i := n; i < len(src); i++ {
		dst[i] = s.Int(src[i])
	}
}

// ApplyInPlace scales samples in place.
func (s Stage) ApplyInPlace(samples []int32) {
	s.Apply(samples, samples)
}

// Fill writes Sample(v) into every element of dst.
func (s Stage) Fill(dst []int32, v float32) {
	fillValue(dst, s.Sample(v))
}

// block converts, multiplies and clamps one block lane by lane.
func (s Stage) block(dst, src *[BatchSize]int32) {
	var f [BatchSize]float32
	for i := range BatchSize {
		f[i] = float32(src[i])
	}
	for i := range BatchSize {
		f[i] *= s.factor
	}
	for i := range BatchSize {
		dst[i] = Clamp(f[i])
	}
}

func fillValue(dst []int32, v int32) {
	var lane [BatchSize]int32
	for i := range lane {
		lane[i] = v
	}
	n := len(dst) - len(dst)%BatchSize
	for i := 0; i < n; i += BatchSize {
		copy(dst[i:i+BatchSize], lane[:])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = v
	}
}
