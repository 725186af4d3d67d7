// Package classify applies a Policy to a single candidate value and decides
// whether it looks like a plaintext secret. It is pure: no I/O, no state
// between calls.
package classify

import (
	"fmt"
	"strings"

	"github.com/entrocheck/entrocheck/internal/confignode"
	"github.com/entrocheck/entrocheck/internal/entropy"
	"github.com/entrocheck/entrocheck/internal/policy"
	"github.com/entrocheck/entrocheck/internal/types"
)

// Verdict is the classifier's decision for one value.
type Verdict struct {
	Score    float64 // score the decision was made on (charset-normalized)
	Severity types.Severity
	Reason   string
}

// Classify runs the decision pipeline for one candidate string. The value
// is trimmed of surrounding whitespace and nothing else. The path supplies
// only the key name for ignore_keys and key-hint checks. The second return
// is false when the value produced no finding.
//
// Exclusion filters short-circuit in a fixed order: length, ignored key,
// ignored value. Only then is entropy computed.
func Classify(value string, p confignode.Path, pol *policy.Policy) (Verdict, bool) {
	v := strings.TrimSpace(value)
	if len(v) < pol.MinLength {
		return Verdict{}, false
	}
	key := p.LastKey()
	if pol.IgnoredKey(key) {
		return Verdict{}, false
	}
	if pol.IgnoredValue(v) {
		return Verdict{}, false
	}

	score := entropy.Shannon(v)
	normalized := false
	if pol.CharsetMode == policy.CharsetHex && entropy.InCharset(v, entropy.HexCharset) {
		score = entropy.Normalize(score, entropy.HexBits)
		normalized = true
	}

	threshold := pol.EntropyThreshold
	hinted := pol.HintedKey(key)
	if hinted {
		threshold -= pol.KeyHintBoost
	}
	if score < threshold {
		return Verdict{}, false
	}

	var sev types.Severity
	var reason string
	if score >= pol.StrongThreshold {
		sev = types.SevWeak
		reason = fmt.Sprintf("entropy %.2f bits/char at or above strong threshold %.2f; value is likely a real secret in plaintext", score, pol.StrongThreshold)
	} else {
		sev = types.SevSuspicious
		reason = fmt.Sprintf("entropy %.2f bits/char in suspicious band [%.2f, %.2f)", score, threshold, pol.StrongThreshold)
	}
	if normalized {
		reason += " (hex-normalized)"
	}
	if hinted {
		reason += fmt.Sprintf(" (key %q lowered threshold by %.2f)", key, pol.KeyHintBoost)
	}
	return Verdict{Score: score, Severity: sev, Reason: reason}, true
}
