package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/entrocheck/entrocheck/internal/confignode"
)

// DotEnv parses flat KEY=VALUE files (.env and friends) into a one-level
// mapping. Env values have no type system; every value is a string scalar.
func DotEnv(data []byte) (*confignode.Node, error) {
	root := confignode.Mapping()
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		txt := strings.TrimSpace(sc.Text())
		if txt == "" || strings.HasPrefix(txt, "#") {
			continue
		}
		txt = strings.TrimPrefix(txt, "export ")
		key, val, ok := strings.Cut(txt, "=")
		if !ok {
			return nil, fmt.Errorf("parse env: line %d: missing '='", line)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("parse env: line %d: empty key", line)
		}
		root.Put(key, confignode.String(unquote(strings.TrimSpace(val))))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return root, nil
}

// INI parses INI-style files ([section] headers, key=value entries) into a
// nested mapping. It also covers the flat key/string-value subset of TOML;
// INI itself has no scalar type system, so values stay strings.
func INI(data []byte) (*confignode.Node, error) {
	root := confignode.Mapping()
	section := root
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		txt := strings.TrimSpace(sc.Text())
		if txt == "" || strings.HasPrefix(txt, "#") || strings.HasPrefix(txt, ";") {
			continue
		}
		if strings.HasPrefix(txt, "[") {
			if !strings.HasSuffix(txt, "]") {
				return nil, fmt.Errorf("parse ini: line %d: unterminated section header", line)
			}
			name := strings.TrimSpace(txt[1 : len(txt)-1])
			if name == "" {
				return nil, fmt.Errorf("parse ini: line %d: empty section name", line)
			}
			section = sectionNode(root, name)
			continue
		}
		key, val, ok := strings.Cut(txt, "=")
		if !ok {
			return nil, fmt.Errorf("parse ini: line %d: missing '='", line)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("parse ini: line %d: empty key", line)
		}
		section.Put(key, confignode.String(unquote(strings.TrimSpace(val))))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}
	return root, nil
}

// sectionNode finds or creates the mapping for a dotted section name like
// "database.primary", nesting one mapping per segment.
func sectionNode(root *confignode.Node, name string) *confignode.Node {
	cur := root
	for _, part := range strings.Split(name, ".") {
		var next *confignode.Node
		for _, pair := range cur.Pairs {
			if pair.Key == part && pair.Value.Kind == confignode.KindMapping {
				next = pair.Value
				break
			}
		}
		if next == nil {
			next = confignode.Mapping()
			cur.Put(part, next)
		}
		cur = next
	}
	return cur
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
