package loader

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/entrocheck/entrocheck/internal/confignode"
)

// YAML parses a YAML document into a confignode tree. yaml.v3's node API
// keeps mapping entries in document order and carries resolved tags, so
// scalar typing comes straight from the parser.
func YAML(data []byte) (*confignode.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return fromYAMLNode(&root)
}

func fromYAMLNode(n *yaml.Node) (*confignode.Node, error) {
	switch n.Kind {
	case 0:
		// Empty document.
		return confignode.Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return confignode.Null(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return confignode.Null(), nil
		}
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		m := confignode.Mapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			child, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Put(n.Content[i].Value, child)
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]*confignode.Node, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		}
		return confignode.Sequence(items...), nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n), nil
	}
	return nil, fmt.Errorf("parse yaml: unexpected node kind %d at line %d", n.Kind, n.Line)
}

func fromYAMLScalar(n *yaml.Node) *confignode.Node {
	switch n.Tag {
	case "!!null":
		return confignode.Null()
	case "!!bool":
		return confignode.Bool(strings.EqualFold(n.Value, "true") || strings.EqualFold(n.Value, "yes") || strings.EqualFold(n.Value, "on"))
	case "!!int", "!!float":
		return confignode.Number(n.Value)
	default:
		return confignode.String(n.Value)
	}
}
