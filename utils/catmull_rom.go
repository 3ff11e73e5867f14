// SPDX-License-Identifier: EPL-2.0

package utils

// CatmullRom evaluates the Catmull-Rom spline through y0..y3 at t in [0,1],
// where t=0 yields y1 and t=1 yields y2.
func CatmullRom(y0, y1, y2, y3, t float32) float32 {
	c3 := 0.5 * (y3 - y0 + 3*(y1-y2))
	c2 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c1 := 0.5 * (y2 - y0)
	return ((c3*t+c2)*t+c1)*t + y1
}
