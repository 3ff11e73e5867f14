// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt32 scales x from [-1,1] to the int32 range, truncating toward
// zero. Values outside [-1,1] saturate. A sample decoded from 16-bit PCM
// (v/32768) maps exactly to v<<16.
func Float32ToInt32(x float32) int32 {
	if x >= 1 {
		return math.MaxInt32
	}
	if x <= -1 {
		return math.MinInt32
	}
	if math.IsNaN(float64(x)) {
		return 0
	}
	return int32(x * 2147483648.0)
}

// Int32ToInt16 keeps the upper 16 bits of a 32-bit sample.
func Int32ToInt16(v int32) int16 {
	return int16(v >> 16)
}
