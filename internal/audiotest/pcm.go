// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Sine16 returns n samples of a 16-bit sine wave shifted into the int32
// range, the way 16-bit WAV input is loaded.
func Sine16(n, sampleRate int, frequency, amplitude float64) []int32 {
	out := make([]int32, n)
	for i := range out {
		v := amplitude * math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate))
		out[i] = int32(int16(v*math.MaxInt16)) << 16
	}
	return out
}

// Steps returns a staircase: each value in levels repeated hold times.
func Steps(hold int, levels ...int32) []int32 {
	out := make([]int32, 0, hold*len(levels))
	for _, v := range levels {
		for range hold {
			out = append(out, v)
		}
	}
	return out
}

// Ramp returns n samples counting up from start by step.
func Ramp(n int, start, step int32) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = start + int32(i)*step
	}
	return out
}
