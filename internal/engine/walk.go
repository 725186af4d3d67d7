package engine

import (
	"io/fs"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/entrocheck/entrocheck/internal/loader"
)

// collectTargets walks the directory rooted at cfg.Target and returns the
// scannable files, as root-relative forward-slash paths, in walk order.
// Walk order is lexical per filepath.WalkDir, which makes multi-file output
// ordering deterministic.
func collectTargets(cfg Config) ([]string, int, error) {
	var targets []string
	skipped := 0
	err := filepath.WalkDir(cfg.Target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Target, p)
		rel = filepath.ToSlash(rel)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(d.Name())) {
			return nil
		}
		if !loader.Supported(rel) {
			skipped++
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, ierr := d.Info(); ierr == nil && info.Size() > cfg.MaxBytes {
				skipped++
				return nil
			}
		}
		targets = append(targets, rel)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return targets, skipped, nil
}

// allowedByGlobs applies include globs as a positive filter when present,
// then subtracts exclude globs. Globs are comma-separated and matched with
// forward-slash semantics against both the relative path and its basename.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
