// SPDX-License-Identifier: EPL-2.0

package rle

import "strconv"

// MaxSniperDistance is the farthest a near repeat may reach ahead.
const MaxSniperDistance = 99

// minSniperDistance is the nearest useful match; distance 1 is an exact run.
const minSniperDistance = 2

// Encode returns the token text for samples.
func Encode(samples []int32) []byte {
	// about 5 bytes per token for attenuated 16-bit material
	return AppendEncode(make([]byte, 0, len(samples)*5+16), samples)
}

// AppendEncode appends the token text for samples to dst.
func AppendEncode(dst []byte, samples []int32) []byte {
	n := len(samples)
	i := 0

	for i < n {
		v := samples[i]

		k := 1
		for i+k < n && samples[i+k] == v {
			k++
		}
		if k >= 2 {
			dst = appendRun(dst, v, k)
			i += k
			continue
		}

		if dist := sniperDistance(samples, i); dist > 0 {
			dst = strconv.AppendInt(dst, int64(v), 10)
			dst = append(dst, '~')
			dst = strconv.AppendInt(dst, int64(dist-1), 10)
			dst = append(dst, ',')
			for _, s := range samples[i+1 : i+dist] {
				dst = appendLiteral(dst, s)
			}
			i += dist + 1
			continue
		}

		dst = appendLiteral(dst, v)
		i++
	}

	return dst
}

// sniperDistance returns the distance to the nearest later copy of
// samples[i] within reach, or 0 when there is none.
func sniperDistance(samples []int32, i int) int {
	v := samples[i]
	for dist := minSniperDistance; dist <= MaxSniperDistance && i+dist < len(samples); dist++ {
		if samples[i+dist] == v {
			return dist
		}
	}
	return 0
}

func appendLiteral(dst []byte, v int32) []byte {
	dst = strconv.AppendInt(dst, int64(v), 10)
	return append(dst, ',')
}

func appendRun(dst []byte, v int32, count int) []byte {
	dst = strconv.AppendInt(dst, int64(v), 10)
	dst = append(dst, '^')
	dst = strconv.AppendInt(dst, int64(count), 10)
	return append(dst, ',')
}
