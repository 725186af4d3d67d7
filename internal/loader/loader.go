// Package loader turns raw configuration file bytes into confignode trees.
// Each loader preserves key insertion order and source scalar typing, which
// is all the scan core asks of it.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/entrocheck/entrocheck/internal/confignode"
)

// ErrUnsupportedFormat marks files no loader understands. During directory
// scans such files are skipped; for an explicitly named file it is an
// operational error. Check with errors.Is.
var ErrUnsupportedFormat = errors.New("unsupported config format")

type parseFunc func(data []byte) (*confignode.Node, error)

// forPath picks the loader by extension or well-known filename.
func forPath(path string) parseFunc {
	base := strings.ToLower(filepath.Base(path))
	if base == ".env" || strings.HasPrefix(base, ".env.") || strings.HasSuffix(base, ".env") {
		return DotEnv
	}
	switch filepath.Ext(base) {
	case ".yaml", ".yml":
		return YAML
	case ".json":
		return JSON
	case ".ini", ".cfg", ".conf", ".toml", ".properties":
		return INI
	}
	return nil
}

// Supported reports whether a loader exists for the given file path.
func Supported(path string) bool {
	return forPath(path) != nil
}

// Parse builds a tree from data, choosing the format from name.
func Parse(name string, data []byte) (*confignode.Node, error) {
	fn := forPath(name)
	if fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return fn(data)
}

// Load reads the file at path and parses it.
func Load(path string) (*confignode.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}
