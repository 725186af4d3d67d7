// Package report renders findings for humans and CI: columnar text,
// indented JSON, and SARIF 2.1.0. It also owns the severity-based
// fail/pass decision for exit codes.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/entrocheck/entrocheck/internal/types"
)

// PrintOptions carries presentation toggles and scan stats for the footer.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	FilesSkipped int
	FileErrors   int
}

// PrintText writes findings in columnar form, one line per finding, in the
// order the scan produced them, followed by a summary footer.
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No suspicious values found ✅")
	} else {
		maxPath := 8
		for _, f := range findings {
			if l := len(location(f)); l > maxPath {
				maxPath = l
			}
		}
		fmt.Fprintf(w, "Findings: %d\n", len(findings))
		for _, f := range findings {
			fmt.Fprintf(w, "%-10s %-*s %5.2f  %s\n",
				severityLabel(f.Severity, opts.NoColor), maxPath, location(f), f.Score, f.Excerpt)
		}
	}

	weak, suspicious := 0, 0
	for _, f := range findings {
		switch f.Severity {
		case types.SevWeak:
			weak++
		default:
			suspicious++
		}
	}
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Findings: %d (weak: %d, suspicious: %d)\n", len(findings), weak, suspicious)
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
		if opts.FilesSkipped > 0 {
			fmt.Fprintf(w, "Files skipped: %d\n", opts.FilesSkipped)
		}
		if opts.FileErrors > 0 {
			fmt.Fprintf(w, "Files with errors: %d\n", opts.FileErrors)
		}
	}
}

// WriteJSON writes findings as an indented JSON array. A nil slice becomes
// an empty array, never null, for downstream tooling.
func WriteJSON(w io.Writer, findings []types.Finding) error {
	if findings == nil {
		findings = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// location joins the file path and key path for display.
func location(f types.Finding) string {
	if f.File == "" {
		return f.KeyPath
	}
	return f.File + ":" + f.KeyPath
}

func severityLabel(s types.Severity, noColor bool) string {
	if noColor {
		return string(s)
	}
	switch s {
	case types.SevWeak:
		return color.RedString(string(s))
	default:
		return color.YellowString(string(s))
	}
}

// ShouldFail reports whether findings warrant a failing exit code. failOn
// names the minimum severity that fails: "weak" (default), "suspicious",
// or "never".
func ShouldFail(findings []types.Finding, failOn string) bool {
	var threshold int
	switch failOn {
	case "never":
		return false
	case "suspicious":
		threshold = types.SevSuspicious.Rank()
	default:
		threshold = types.SevWeak.Rank()
	}
	for _, f := range findings {
		if f.Severity.Rank() >= threshold {
			return true
		}
	}
	return false
}
