// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToPCM quantizes x to a signed integer sample of the given bit depth.
// x is clamped to [-1, 1] and scaled by the largest positive value of the
// depth, so 1 maps to 2^(bits-1)-1 and -1 to its negation.
func FloatToPCM(x float64, bitsPerSample int) int32 {
	x = Clamp(x, -1, 1)
	full := float64(int64(1)<<(bitsPerSample-1) - 1)

	return int32(math.Round(x * full))
}
