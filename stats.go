// SPDX-License-Identifier: EPL-2.0

package txac

import "math"

// ClipThreshold is the peak amplitude above which a signal is reported as
// close to clipping, about 93% of full scale.
const ClipThreshold = 2_000_000_000

// Stats summarizes the amplitude of a sample buffer.
type Stats struct {
	Samples int
	// Peak and Mean are absolute amplitudes. Mean is truncated.
	Peak int64
	Mean int64
	// PeakPercent and MeanPercent are relative to math.MaxInt32.
	PeakPercent  float64
	MeanPercent  float64
	NearClipping bool
}

// Analyze computes amplitude statistics for samples.
func Analyze(samples []int32) Stats {
	var sum, peak int64
	for _, v := range samples {
		a := int64(v)
		if a < 0 {
			a = -a
		}
		sum += a
		peak = max(peak, a)
	}

	st := Stats{Samples: len(samples), Peak: peak}
	if len(samples) > 0 {
		st.Mean = sum / int64(len(samples))
	}
	st.PeakPercent = float64(st.Peak) * 100 / math.MaxInt32
	st.MeanPercent = float64(st.Mean) * 100 / math.MaxInt32
	st.NearClipping = st.Peak > ClipThreshold
	return st
}
