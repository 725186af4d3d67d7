package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMinLength, p.MinLength)
	assert.Equal(t, DefaultEntropyThreshold, p.EntropyThreshold)
	assert.Equal(t, DefaultStrongThreshold, p.StrongThreshold)
	assert.Equal(t, CharsetAny, p.CharsetMode)
	assert.Equal(t, DefaultKeyHintBoost, p.KeyHintBoost)
}

func TestNew_InvalidThresholds(t *testing.T) {
	cases := []Options{
		{MinLength: -1},
		{EntropyThreshold: -2},
		{EntropyThreshold: 4.0, StrongThreshold: 4.0}, // must be strictly greater
		{EntropyThreshold: 4.0, StrongThreshold: 3.0},
	}
	for _, opts := range cases {
		_, err := New(opts)
		require.ErrorIs(t, err, ErrInvalidPolicy, "opts: %+v", opts)
	}
}

func TestNew_BadPatterns(t *testing.T) {
	_, err := New(Options{IgnoreKeys: []string{"[unclosed"}})
	require.ErrorIs(t, err, ErrInvalidPolicy)
	_, err = New(Options{IgnoreValues: []string{"[unclosed"}})
	require.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestParseCharsetMode(t *testing.T) {
	for in, want := range map[string]CharsetMode{
		"":            CharsetAny,
		"any":         CharsetAny,
		"base64":      CharsetBase64,
		"base64-like": CharsetBase64,
		"HEX":         CharsetHex,
		"hex-like":    CharsetHex,
	} {
		got, err := ParseCharsetMode(in)
		require.NoError(t, err, "mode %q", in)
		assert.Equal(t, want, got, "mode %q", in)
	}
	_, err := ParseCharsetMode("rot13")
	require.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestIgnoredKey_CaseInsensitiveGlobs(t *testing.T) {
	p, err := New(Options{IgnoreKeys: []string{"*_example", "Placeholder*"}})
	require.NoError(t, err)
	assert.True(t, p.IgnoredKey("api_key_example"))
	assert.True(t, p.IgnoredKey("PLACEHOLDER_TOKEN"))
	assert.False(t, p.IgnoredKey("api_key"))
}

func TestIgnoredValue(t *testing.T) {
	p, err := New(Options{IgnoreValues: []string{"CHANGE_ME*", "${*}"}})
	require.NoError(t, err)
	assert.True(t, p.IgnoredValue("CHANGE_ME_BEFORE_DEPLOY"))
	assert.True(t, p.IgnoredValue("${VAULT_TOKEN}"))
	assert.False(t, p.IgnoredValue("s3cRetV4lue"))
}

func TestHintedKey(t *testing.T) {
	p := Default()
	assert.True(t, p.HintedKey("db_password"))
	assert.True(t, p.HintedKey("API_KEY"))
	assert.False(t, p.HintedKey("comment"))

	off, err := New(Options{KeyHintBoost: -1})
	require.NoError(t, err)
	assert.Zero(t, off.KeyHintBoost)
	assert.False(t, off.HintedKey("db_password"))

	custom, err := New(Options{KeyHints: []string{"geheim"}})
	require.NoError(t, err)
	assert.True(t, custom.HintedKey("geheimnis"))
	assert.False(t, custom.HintedKey("password"))
}
