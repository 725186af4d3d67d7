// Package scan drives the tree walker and the classifier to turn one
// configuration tree into an ordered list of findings. It is the masking
// boundary: full candidate values never leave this package.
package scan

import (
	"strings"

	"github.com/entrocheck/entrocheck/internal/classify"
	"github.com/entrocheck/entrocheck/internal/confignode"
	"github.com/entrocheck/entrocheck/internal/policy"
	"github.com/entrocheck/entrocheck/internal/types"
)

// Scan walks root depth-first and classifies every string scalar against
// pol. Findings come back in traversal order, so repeated scans of the
// same tree yield identical lists. On a malformed tree the scan aborts and
// returns the error with no partial findings; a silently truncated result
// would be misleading for a security tool.
func Scan(root *confignode.Node, pol *policy.Policy) ([]types.Finding, error) {
	var out []types.Finding
	err := confignode.WalkStrings(root, func(p confignode.Path, value string) error {
		v, ok := classify.Classify(value, p, pol)
		if !ok {
			return nil
		}
		out = append(out, types.Finding{
			KeyPath:  p.String(),
			Excerpt:  Mask(strings.TrimSpace(value)),
			Score:    v.Score,
			Severity: v.Severity,
			Reason:   v.Reason,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// maskWindow is how many characters survive at each end of an excerpt.
const maskWindow = 4

// Mask reduces a value to a non-reversible excerpt: first and last four
// characters around an ellipsis, or all asterisks when the value is too
// short to show anything safely. The excerpt is never longer than the
// original and never contains the full original.
func Mask(s string) string {
	r := []rune(s)
	if len(r) <= 2*maskWindow {
		return strings.Repeat("*", len(r))
	}
	return string(r[:maskWindow]) + "…" + string(r[len(r)-maskWindow:])
}
