package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/entrocheck/entrocheck/internal/confignode"
)

// JSON parses a JSON document into a confignode tree. It walks the token
// stream instead of unmarshaling into map[string]any, because Go maps would
// destroy the key insertion order the walker's traversal contract depends
// on.
func JSON(data []byte) (*confignode.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	root, err := jsonValue(dec)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("parse json: trailing content after document")
	}
	return root, nil
}

func jsonValue(dec *json.Decoder) (*confignode.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonFromToken(dec, tok)
}

func jsonFromToken(dec *json.Decoder, tok json.Token) (*confignode.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := confignode.Mapping()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, want string", keyTok)
				}
				val, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				m.Put(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return m, nil
		case '[':
			seq := confignode.Sequence()
			for dec.More() {
				val, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				seq.Items = append(seq.Items, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return seq, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return confignode.String(t), nil
	case json.Number:
		return confignode.Number(t.String()), nil
	case bool:
		return confignode.Bool(t), nil
	case nil:
		return confignode.Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}
