// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// PCM16WAV builds a canonical 44-byte-header WAV file holding samples.
func PCM16WAV(sampleRate, channels int, samples []int16) []byte {
	dataSize := len(samples) * 2
	blockAlign := channels * 2

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// Ramp16 returns frames×channels samples counting up from 0.
func Ramp16(frames, channels int) []int16 {
	out := make([]int16, frames*channels)
	for i := range out {
		out[i] = int16(i)
	}
	return out
}

// Int16Bytes lays samples out in native byte order.
func Int16Bytes(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.NativeEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}

// Int32Bytes lays samples out in native byte order.
func Int32Bytes(samples []int32) []byte {
	out := make([]byte, 4*len(samples))
	for i, v := range samples {
		binary.NativeEndian.PutUint32(out[4*i:], uint32(v))
	}
	return out
}

// Float32Bytes lays samples out in native byte order.
func Float32Bytes(samples []float32) []byte {
	out := make([]byte, 4*len(samples))
	for i, v := range samples {
		binary.NativeEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}
	return out
}

// Float64Bytes lays samples out in native byte order.
func Float64Bytes(samples []float64) []byte {
	out := make([]byte, 8*len(samples))
	for i, v := range samples {
		binary.NativeEndian.PutUint64(out[8*i:], math.Float64bits(v))
	}
	return out
}
