package confignode

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: either a mapping key or a sequence index.
type Segment struct {
	Key   string
	Index int
	IsIdx bool
}

// Path addresses one scalar inside a tree. Paths handed to visitors are
// fresh copies; callers may retain them.
type Path []Segment

// Child extends the path with a mapping key, returning a new slice.
func (p Path) Child(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Segment{Key: key})
}

// At extends the path with a sequence index, returning a new slice.
func (p Path) At(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Segment{Index: i, IsIdx: true})
}

// LastKey returns the innermost mapping key, skipping trailing sequence
// indices, so list elements inherit the key naming their list. Empty when
// the path contains no key at all.
func (p Path) LastKey() string {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsIdx {
			return p[i].Key
		}
	}
	return ""
}

// String renders the path in dotted form with bracketed indices,
// e.g. "services[0].db.password".
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if seg.IsIdx {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Key)
	}
	return b.String()
}
