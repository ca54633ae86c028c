// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// SampleKind is the in-memory sample representation a stream exchanges with
// its caller.
type SampleKind int

const (
	Int16 SampleKind = iota + 1
	Int32
	Float32
	Float64
)

// Width returns the size of one sample in bytes, or 0 for an unknown kind.
func (k SampleKind) Width() int {
	switch k {
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether k is one of the four supported kinds.
func (k SampleKind) Valid() bool {
	return k.Width() != 0
}

func (k SampleKind) String() string {
	switch k {
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("SampleKind(%d)", int(k))
	}
}

// ParseSampleKind parses the names returned by SampleKind.String. "short",
// "int", "float" and "double" are accepted as aliases.
func ParseSampleKind(s string) (SampleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int16", "short":
		return Int16, nil
	case "int32", "int":
		return Int32, nil
	case "float32", "float":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	}
	return 0, fmt.Errorf("%w: sample kind %q", ErrInvalidOperation, s)
}
