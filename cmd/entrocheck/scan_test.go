package entrocheck

import (
	"errors"
	"testing"

	"github.com/entrocheck/entrocheck/internal/config"
	"github.com/entrocheck/entrocheck/internal/policy"
)

func resetFlags() {
	flagInclude, flagExclude = "", ""
	flagMaxBytes = 0
	flagThreads = 0
	flagMinLength = 0
	flagThreshold, flagStrongThreshold = 0, 0
	flagCharset = ""
	flagIgnoreKeys, flagIgnoreValues = nil, nil
	flagKeyHintBoost = 0
	flagNoDefaultExcl = false
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func TestBuildEngineConfig_Defaults(t *testing.T) {
	resetFlags()
	cfg, err := buildEngineConfig("/tmp/x", config.FileConfig{}, config.FileConfig{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if cfg.Policy.MinLength != policy.DefaultMinLength {
		t.Fatalf("want default min length, got %d", cfg.Policy.MinLength)
	}
	if !cfg.DefaultExcludes {
		t.Fatal("default excludes should be on")
	}
	if cfg.MaxBytes != defaultMaxBytes {
		t.Fatalf("want default max bytes, got %d", cfg.MaxBytes)
	}
}

func TestBuildEngineConfig_PrecedenceCLIOverLocalOverGlobal(t *testing.T) {
	resetFlags()
	local := config.FileConfig{
		EntropyThreshold: fptr(4.0),
		MinLength:        iptr(10),
		Include:          sptr("**/*.yaml"),
	}
	global := config.FileConfig{
		EntropyThreshold: fptr(2.5),
		StrongThreshold:  fptr(5.0),
		MinLength:        iptr(20),
	}
	flagThreshold = 4.2 // CLI wins over both

	cfg, err := buildEngineConfig("/tmp/x", local, global)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if cfg.Policy.EntropyThreshold != 4.2 {
		t.Fatalf("CLI threshold should win, got %v", cfg.Policy.EntropyThreshold)
	}
	if cfg.Policy.MinLength != 10 {
		t.Fatalf("local min_length should beat global, got %d", cfg.Policy.MinLength)
	}
	if cfg.Policy.StrongThreshold != 5.0 {
		t.Fatalf("global strong_threshold should apply when unset elsewhere, got %v", cfg.Policy.StrongThreshold)
	}
	if cfg.IncludeGlobs != "**/*.yaml" {
		t.Fatalf("local include should apply, got %q", cfg.IncludeGlobs)
	}
}

func TestBuildEngineConfig_InvalidPolicySurfaces(t *testing.T) {
	resetFlags()
	flagThreshold = 5.0
	flagStrongThreshold = 4.0
	_, err := buildEngineConfig("/tmp/x", config.FileConfig{}, config.FileConfig{})
	if !errors.Is(err, policy.ErrInvalidPolicy) {
		t.Fatalf("want ErrInvalidPolicy before any scanning, got %v", err)
	}
}

func TestPickHelpers(t *testing.T) {
	if got := pickString("cli", sptr("local"), sptr("global")); got != "cli" {
		t.Fatalf("pickString: %q", got)
	}
	if got := pickString("", sptr("local"), sptr("global")); got != "local" {
		t.Fatalf("pickString: %q", got)
	}
	if got := pickString("", nil, sptr("global")); got != "global" {
		t.Fatalf("pickString: %q", got)
	}
	if got := pickSlice(nil, []string{"l"}, []string{"g"}); len(got) != 1 || got[0] != "l" {
		t.Fatalf("pickSlice: %v", got)
	}
	f := false
	tr := true
	if !pickBool(false, &tr, &f) {
		t.Fatal("pickBool should take local true")
	}
	if pickBool(false, nil, &f) {
		t.Fatal("pickBool should take global false")
	}
}
