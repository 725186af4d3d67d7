// Package entropy computes Shannon entropy over a string's character
// distribution, in bits per character. It also knows the restricted
// alphabets (base64, hex) that encoded secrets are commonly drawn from.
package entropy

import (
	"math"
	"strings"
)

// Common secret alphabets.
const (
	Base64Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="
	HexCharset    = "0123456789abcdefABCDEF"
)

// Maximum achievable bits per character for each alphabet. Scores for
// restricted charsets are rescaled against these so one threshold scale
// works across modes (see Normalize).
const (
	Base64Bits = 6.0 // log2(64)
	HexBits    = 4.0 // log2(16)
)

// Shannon returns the entropy of s in bits per character: the sum of
// -p*log2(p) over every distinct rune. It is 0 for the empty string and for
// strings of a single repeated character, and grows toward log2(len(s)) as
// characters become distinct. Deterministic and allocation-light.
func Shannon(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	n := 0
	for _, r := range s {
		count[r]++
		n++
	}
	h := 0.0
	total := float64(n)
	for _, c := range count {
		p := float64(c) / total
		h += -p * math.Log2(p)
	}
	return h
}

// InCharset reports whether every character of s belongs to charset.
// An empty string is vacuously in any charset.
func InCharset(s, charset string) bool {
	for _, r := range s {
		if !strings.ContainsRune(charset, r) {
			return false
		}
	}
	return true
}

// Normalize rescales a raw entropy score measured over an alphabet with
// maxBits achievable bits per character onto the base64 scale. A hex-encoded
// key can never exceed 4 bits/char no matter how random it is; without
// rescaling it would slip under thresholds calibrated for base64-ish text.
func Normalize(score, maxBits float64) float64 {
	if maxBits <= 0 || maxBits >= Base64Bits {
		return score
	}
	return score * (Base64Bits / maxBits)
}
