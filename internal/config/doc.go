// Package config loads the on-disk YAML configuration for entrocheck.
// Fields are pointers so the CLI layer can tell "unset" from "zero" when
// merging flag, repo-local and global values.
package config
