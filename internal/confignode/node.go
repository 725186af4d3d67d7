// Package confignode defines the in-memory representation of a parsed
// configuration file: a tree of mappings, sequences and typed scalars, plus
// the path type that addresses a scalar inside it and a depth-bounded
// walker. Loaders build these trees; the scan core only reads them.
package confignode

// Kind discriminates the three structural node shapes.
type Kind int

const (
	KindMapping Kind = iota
	KindSequence
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	}
	return "invalid"
}

// ScalarType distinguishes the scalar leaves. Only string scalars are
// candidates for entropy classification; the rest exist so loaders can
// preserve source typing and the walker can skip them.
type ScalarType int

const (
	StringScalar ScalarType = iota
	NumberScalar
	BoolScalar
	NullScalar
)

// Pair is one mapping entry. Mappings keep entries as a slice so key
// insertion order survives the round trip from the source file.
type Pair struct {
	Key   string
	Value *Node
}

// Node is one vertex of a configuration tree. Exactly one of the shape
// fields is meaningful, selected by Kind: Pairs for mappings, Items for
// sequences, Scalar/Value for scalar leaves. Value holds the source text of
// the scalar regardless of its type.
type Node struct {
	Kind   Kind
	Pairs  []Pair
	Items  []*Node
	Scalar ScalarType
	Value  string
}

// String builds a string scalar leaf.
func String(v string) *Node {
	return &Node{Kind: KindScalar, Scalar: StringScalar, Value: v}
}

// Number builds a number scalar leaf from its source text.
func Number(text string) *Node {
	return &Node{Kind: KindScalar, Scalar: NumberScalar, Value: text}
}

// Bool builds a boolean scalar leaf.
func Bool(v bool) *Node {
	text := "false"
	if v {
		text = "true"
	}
	return &Node{Kind: KindScalar, Scalar: BoolScalar, Value: text}
}

// Null builds a null scalar leaf.
func Null() *Node {
	return &Node{Kind: KindScalar, Scalar: NullScalar}
}

// Mapping builds a mapping node from ordered pairs.
func Mapping(pairs ...Pair) *Node {
	return &Node{Kind: KindMapping, Pairs: pairs}
}

// Sequence builds a sequence node from ordered items.
func Sequence(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// Put appends a key/value pair to a mapping node and returns it, for
// loader and test convenience.
func (n *Node) Put(key string, v *Node) *Node {
	n.Pairs = append(n.Pairs, Pair{Key: key, Value: v})
	return n
}
