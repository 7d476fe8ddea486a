// Package text measures and hashes strings by UTF-16 code units, so lengths
// and hashes match what the sample programs have always printed for any input,
// including characters outside the Basic Multilingual Plane.
package text

import "unicode/utf16"

// Length is the number of UTF-16 code units in s
func Length(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// HashCode is the 31-multiplier string hash over UTF-16 code units with
// int32 wraparound
func HashCode(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(u)
	}
	return h
}
