// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale returns 2^(bits-1), the magnitude that maps to 1.0 for a signed
// integer sample of the given width.
func FullScale(bits int) float64 {
	return math.Ldexp(1, bits-1)
}

// FromFloat converts a normalized sample to a signed integer of the given
// width. Values are scaled by FullScale, floored and clamped, so every
// integer of that width survives ToFloat followed by FromFloat unchanged.
// NaN converts to 0.
func FromFloat(x float64, bits int) int64 {
	if math.IsNaN(x) {
		return 0
	}

	scale := FullScale(bits)
	v := math.Floor(x * scale)
	if v >= scale {
		return int64(scale) - 1
	}
	if v < -scale {
		return -int64(scale)
	}
	return int64(v)
}

// ToFloat converts a signed integer sample of the given width to [-1, 1).
func ToFloat(v int64, bits int) float64 {
	return float64(v) / FullScale(bits)
}

func Float64ToInt16(x float64) int16 { return int16(FromFloat(x, 16)) }
func Float64ToInt32(x float64) int32 { return int32(FromFloat(x, 32)) }

func Int16ToFloat64(v int16) float64 { return ToFloat(int64(v), 16) }
func Int32ToFloat64(v int32) float64 { return ToFloat(int64(v), 32) }
