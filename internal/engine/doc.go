// Package engine drives multi-file scans. It discovers configuration files
// under a target, loads each into a tree, runs the entropy scan per file,
// and assembles findings in deterministic order. This package is internal;
// external consumers should use the stable facade in pkg/core.
package engine
