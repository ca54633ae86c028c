// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/sndstream/audio"
)

// SampleSize returns the stored size in bytes of one sample of a linear
// subtype, or 0 when st is not linear.
func SampleSize(st audio.Subtype) int {
	return st.BitDepth() / 8
}

func isBig(order binary.ByteOrder) bool {
	return order.Uint16([]byte{0, 1}) == 1
}

// DecodePCM converts stored samples in src to normalized values in dst and
// returns the number of samples converted, bounded by both lengths.
func DecodePCM(dst []float64, src []byte, st audio.Subtype, order binary.ByteOrder) (int, error) {
	size := SampleSize(st)
	if size == 0 {
		return 0, fmt.Errorf("%w: %s is not linear pcm", audio.ErrUnsupportedEncoding, st)
	}

	n := min(len(dst), len(src)/size)
	big := isBig(order)

	for i := range n {
		b := src[i*size : (i+1)*size]
		switch st {
		case audio.SubtypePCMS8:
			dst[i] = ToFloat(int64(int8(b[0])), 8)
		case audio.SubtypePCMU8:
			dst[i] = ToFloat(int64(b[0])-128, 8)
		case audio.SubtypePCM16:
			dst[i] = ToFloat(int64(int16(order.Uint16(b))), 16)
		case audio.SubtypePCM24:
			var u uint32
			if big {
				u = uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
			} else {
				u = uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
			}
			// sign-extend from bit 23
			dst[i] = ToFloat(int64(int32(u<<8)>>8), 24)
		case audio.SubtypePCM32:
			dst[i] = ToFloat(int64(int32(order.Uint32(b))), 32)
		case audio.SubtypeFloat:
			dst[i] = float64(math.Float32frombits(order.Uint32(b)))
		case audio.SubtypeDouble:
			dst[i] = math.Float64frombits(order.Uint64(b))
		}
	}
	return n, nil
}

// EncodePCM converts normalized values in src to stored samples in dst and
// returns the number of samples converted, bounded by both lengths.
func EncodePCM(dst []byte, src []float64, st audio.Subtype, order binary.ByteOrder) (int, error) {
	size := SampleSize(st)
	if size == 0 {
		return 0, fmt.Errorf("%w: %s is not linear pcm", audio.ErrUnsupportedEncoding, st)
	}

	n := min(len(src), len(dst)/size)
	big := isBig(order)

	for i := range n {
		b := dst[i*size : (i+1)*size]
		x := src[i]
		switch st {
		case audio.SubtypePCMS8:
			b[0] = byte(int8(FromFloat(x, 8)))
		case audio.SubtypePCMU8:
			b[0] = byte(FromFloat(x, 8) + 128)
		case audio.SubtypePCM16:
			order.PutUint16(b, uint16(FromFloat(x, 16)))
		case audio.SubtypePCM24:
			u := uint32(FromFloat(x, 24))
			if big {
				b[0], b[1], b[2] = byte(u>>16), byte(u>>8), byte(u)
			} else {
				b[0], b[1], b[2] = byte(u), byte(u>>8), byte(u>>16)
			}
		case audio.SubtypePCM32:
			order.PutUint32(b, uint32(FromFloat(x, 32)))
		case audio.SubtypeFloat:
			order.PutUint32(b, math.Float32bits(float32(x)))
		case audio.SubtypeDouble:
			order.PutUint64(b, math.Float64bits(x))
		}
	}
	return n, nil
}
