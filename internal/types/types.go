package types

// Severity is the risk level assigned to a flagged configuration value.
//
// The names read from the defender's side: a "weak" finding is a value so
// random it is almost certainly a real secret sitting in plaintext, while
// "suspicious" covers the band where randomness alone is not conclusive.
type Severity string

const (
	SevSuspicious Severity = "suspicious"
	SevWeak       Severity = "weak"
)

// Rank orders severities for exit-code decisions. Higher is worse.
func (s Severity) Rank() int {
	switch s {
	case SevWeak:
		return 2
	case SevSuspicious:
		return 1
	}
	return 0
}

// Finding describes one flagged configuration value: where it lives, how
// random it looked, and why it was flagged. Excerpt is always masked before
// a Finding is handed out; the full value never appears here.
type Finding struct {
	File     string   `json:"file,omitempty"` // source file, empty for in-memory trees
	KeyPath  string   `json:"key_path"`       // dotted path inside the config tree, e.g. db.password
	Excerpt  string   `json:"excerpt"`        // masked value excerpt
	Score    float64  `json:"score"`          // entropy score used for the decision, bits/char
	Severity Severity `json:"severity"`
	Reason   string   `json:"reason"`
}
