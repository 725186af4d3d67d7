package core

import (
	"context"

	"github.com/entrocheck/entrocheck/internal/confignode"
	"github.com/entrocheck/entrocheck/internal/engine"
	"github.com/entrocheck/entrocheck/internal/policy"
	"github.com/entrocheck/entrocheck/internal/scan"
	"github.com/entrocheck/entrocheck/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Result = engine.Result
type Finding = types.Finding
type Policy = policy.Policy
type PolicyOptions = policy.Options
type Node = confignode.Node

// Node constructors, re-exported so callers can assemble trees from their
// own parsers without importing internal packages.
func Mapping() *Node                { return confignode.Mapping() }
func Sequence(items ...*Node) *Node { return confignode.Sequence(items...) }
func StringNode(v string) *Node     { return confignode.String(v) }
func NumberNode(text string) *Node  { return confignode.Number(text) }
func BoolNode(v bool) *Node         { return confignode.Bool(v) }
func NullNode() *Node               { return confignode.Null() }

// NewPolicy validates opts and builds a classification policy.
func NewPolicy(opts PolicyOptions) (*Policy, error) {
	return policy.New(opts)
}

// DefaultPolicy returns the policy built from all-default options.
func DefaultPolicy() *Policy { return policy.Default() }

// Scan walks an already-parsed configuration tree and classifies every
// string value against pol. Use ScanPath to scan files on disk instead.
func Scan(root *Node, pol *Policy) ([]Finding, error) {
	return scan.Scan(root, pol)
}

// ScanPath runs the full engine against a file or directory.
func ScanPath(ctx context.Context, cfg Config) (Result, error) {
	return engine.Run(ctx, cfg)
}
