package utils

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"
)

// ChecksumFunc computes a content checksum of a JSON-serializable value.
// Two values with equal checksums are treated as unchanged copies.
type ChecksumFunc func(v any) (string, error)

// Checksum serializes v to JSON and returns [ChecksumString] of the result.
// It is a cheap change detector, not an integrity check.
func Checksum(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error marshaling value for checksum: %w", err)
	}

	return ChecksumString(string(data)), nil
}

// ChecksumString folds the UTF-16 code units of s into a 32-bit hash with
// hash = hash*31 + unit, wrapping on overflow, and formats it as signed hex
// (a negative hash keeps its "-" sign).
//
//	ChecksumString("")   == "0"
//	ChecksumString("a")  == "61"
//	ChecksumString("ab") == "c21"
func ChecksumString(s string) string {
	var hash int32
	for _, unit := range utf16.Encode([]rune(s)) {
		hash = (hash << 5) - hash + int32(unit)
	}

	return strconv.FormatInt(int64(hash), 16)
}

// Blake2bChecksum is a collision-resistant drop-in for [Checksum]: the
// hex-encoded BLAKE2b-256 digest of the JSON form of v.
func Blake2bChecksum(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error marshaling value for checksum: %w", err)
	}

	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// EstimateSize approximates the in-memory size of v as two bytes per UTF-16
// code unit of its JSON form. Values that cannot be serialized count as 0.
func EstimateSize(v any) int64 {
	data, err := json.Marshal(v)
	if err != nil {
		return 0
	}

	return int64(UTF16Len(string(data))) * 2
}

// UTF16Len returns the number of UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if utf16.RuneLen(r) == 2 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
