package services

import (
	"bytes"
	"math"
)

// floatClose reports whether two float64 values are within a cent-level
// tolerance of each other.
func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 0.011
}

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}
