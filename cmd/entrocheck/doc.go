// Package entrocheck provides the command-line interface for the
// entrocheck tool. It configures the scan subcommand, parses flags, merges
// on-disk configuration, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/entrocheck/entrocheck/cmd/entrocheck"
//	func main() { entrocheck.Execute() }
package entrocheck
