// Package policy holds the tunable thresholds and filters that control
// classification sensitivity. A Policy is validated once at construction
// and immutable for the duration of a scan; per-value code never has to
// re-check it.
package policy

import (
	"errors"
	"fmt"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidPolicy is returned for threshold or pattern misconfiguration.
// It is reported once, before any scanning begins. Check with errors.Is.
var ErrInvalidPolicy = errors.New("invalid policy")

// CharsetMode selects the alphabet entropy scores are normalized against.
type CharsetMode string

const (
	CharsetAny    CharsetMode = "any"
	CharsetBase64 CharsetMode = "base64"
	CharsetHex    CharsetMode = "hex"
)

// Defaults, all overridable via flags and config files. 3.5 bits/char
// catches most base64 and hex material while letting ordinary prose through.
const (
	DefaultMinLength        = 8
	DefaultEntropyThreshold = 3.5
	DefaultStrongThreshold  = 4.5
	DefaultKeyHintBoost     = 0.5
)

// defaultKeyHints are lowercase substrings of key names that suggest the
// value is meant to be a secret, lowering the effective threshold.
var defaultKeyHints = []string{
	"password", "passwd", "secret", "token", "credential",
	"api_key", "apikey", "private", "auth",
}

// Options is the caller-facing configuration surface. Zero values fall
// back to defaults; slices are copied on construction.
type Options struct {
	MinLength        int
	EntropyThreshold float64
	StrongThreshold  float64
	CharsetMode      string
	IgnoreKeys       []string // glob patterns matched case-insensitively against the last key
	IgnoreValues     []string // glob patterns matched against the trimmed value
	KeyHintBoost     float64  // threshold reduction for hinted keys; 0 uses default, negative disables
	KeyHints         []string // override the built-in hint list
}

// Policy is the validated, immutable form consumed by the classifier.
type Policy struct {
	MinLength        int
	EntropyThreshold float64
	StrongThreshold  float64
	CharsetMode      CharsetMode
	KeyHintBoost     float64

	ignoreKeys   []string
	ignoreValues []string
	keyHints     []string
}

// New validates opts and builds a Policy. All misconfiguration (inverted
// thresholds, unknown charset modes, unparseable glob patterns) surfaces
// here as ErrInvalidPolicy so a scan never starts against a bad policy.
func New(opts Options) (*Policy, error) {
	p := &Policy{
		MinLength:        opts.MinLength,
		EntropyThreshold: opts.EntropyThreshold,
		StrongThreshold:  opts.StrongThreshold,
		KeyHintBoost:     opts.KeyHintBoost,
	}
	if p.MinLength == 0 {
		p.MinLength = DefaultMinLength
	}
	if p.EntropyThreshold == 0 {
		p.EntropyThreshold = DefaultEntropyThreshold
	}
	if p.StrongThreshold == 0 {
		p.StrongThreshold = DefaultStrongThreshold
	}
	if p.KeyHintBoost == 0 {
		p.KeyHintBoost = DefaultKeyHintBoost
	} else if p.KeyHintBoost < 0 {
		p.KeyHintBoost = 0
	}

	if p.MinLength < 1 {
		return nil, fmt.Errorf("%w: min_length must be >= 1, got %d", ErrInvalidPolicy, p.MinLength)
	}
	if p.EntropyThreshold <= 0 {
		return nil, fmt.Errorf("%w: entropy_threshold must be > 0, got %g", ErrInvalidPolicy, p.EntropyThreshold)
	}
	if p.StrongThreshold <= p.EntropyThreshold {
		return nil, fmt.Errorf("%w: strong_threshold %g must exceed entropy_threshold %g",
			ErrInvalidPolicy, p.StrongThreshold, p.EntropyThreshold)
	}

	mode, err := ParseCharsetMode(opts.CharsetMode)
	if err != nil {
		return nil, err
	}
	p.CharsetMode = mode

	for _, pat := range opts.IgnoreKeys {
		pat = strings.ToLower(strings.TrimSpace(pat))
		if pat == "" {
			continue
		}
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("%w: bad ignore_keys pattern %q", ErrInvalidPolicy, pat)
		}
		p.ignoreKeys = append(p.ignoreKeys, pat)
	}
	for _, pat := range opts.IgnoreValues {
		pat = strings.TrimSpace(pat)
		if pat == "" {
			continue
		}
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("%w: bad ignore_values pattern %q", ErrInvalidPolicy, pat)
		}
		p.ignoreValues = append(p.ignoreValues, pat)
	}

	if opts.KeyHints != nil {
		for _, h := range opts.KeyHints {
			h = strings.ToLower(strings.TrimSpace(h))
			if h != "" {
				p.keyHints = append(p.keyHints, h)
			}
		}
	} else {
		p.keyHints = defaultKeyHints
	}
	return p, nil
}

// Default returns the policy built from all-default Options.
func Default() *Policy {
	p, err := New(Options{})
	if err != nil {
		panic(err) // defaults are statically valid
	}
	return p
}

// ParseCharsetMode canonicalizes a user-supplied mode name. The longer
// spellings "base64-like" and "hex-like" are accepted as aliases.
func ParseCharsetMode(s string) (CharsetMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return CharsetAny, nil
	case "base64", "base64-like":
		return CharsetBase64, nil
	case "hex", "hex-like":
		return CharsetHex, nil
	}
	return "", fmt.Errorf("%w: unknown charset_mode %q (want any, base64 or hex)", ErrInvalidPolicy, s)
}

// IgnoredKey reports whether the last path segment's key name matches any
// ignore_keys pattern. Matching is case-insensitive.
func (p *Policy) IgnoredKey(key string) bool {
	key = strings.ToLower(key)
	for _, pat := range p.ignoreKeys {
		if ok, _ := doublestar.Match(pat, key); ok {
			return true
		}
	}
	return false
}

// IgnoredValue reports whether the trimmed candidate value matches any
// ignore_values pattern.
func (p *Policy) IgnoredValue(value string) bool {
	for _, pat := range p.ignoreValues {
		if ok, _ := doublestar.Match(pat, value); ok {
			return true
		}
	}
	return false
}

// HintedKey reports whether the key name contains a secret-suggestive word.
func (p *Policy) HintedKey(key string) bool {
	if p.KeyHintBoost == 0 {
		return false
	}
	key = strings.ToLower(key)
	for _, h := range p.keyHints {
		if strings.Contains(key, h) {
			return true
		}
	}
	return false
}
