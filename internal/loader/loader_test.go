package loader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrocheck/entrocheck/internal/confignode"
)

// keysOf returns the top-level mapping keys in stored order.
func keysOf(t *testing.T, n *confignode.Node) []string {
	t.Helper()
	require.Equal(t, confignode.KindMapping, n.Kind)
	var keys []string
	for _, p := range n.Pairs {
		keys = append(keys, p.Key)
	}
	return keys
}

func lookup(t *testing.T, n *confignode.Node, key string) *confignode.Node {
	t.Helper()
	for _, p := range n.Pairs {
		if p.Key == key {
			return p.Value
		}
	}
	t.Fatalf("key %q not found", key)
	return nil
}

func TestYAML_OrderAndTypes(t *testing.T) {
	src := []byte(`
zulu: last? no, first
password: hunter2
count: 42
ratio: 0.5
enabled: true
nothing: null
nested:
  inner: value
list:
  - one
  - 2
`)
	root, err := YAML(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "password", "count", "ratio", "enabled", "nothing", "nested", "list"}, keysOf(t, root))

	assert.Equal(t, confignode.StringScalar, lookup(t, root, "password").Scalar)
	assert.Equal(t, confignode.NumberScalar, lookup(t, root, "count").Scalar)
	assert.Equal(t, confignode.NumberScalar, lookup(t, root, "ratio").Scalar)
	assert.Equal(t, confignode.BoolScalar, lookup(t, root, "enabled").Scalar)
	assert.Equal(t, confignode.NullScalar, lookup(t, root, "nothing").Scalar)

	list := lookup(t, root, "list")
	require.Equal(t, confignode.KindSequence, list.Kind)
	require.Len(t, list.Items, 2)
	assert.Equal(t, confignode.StringScalar, list.Items[0].Scalar)
	assert.Equal(t, confignode.NumberScalar, list.Items[1].Scalar)
}

func TestYAML_AnchorsAndEmpty(t *testing.T) {
	src := []byte(`
base: &b secretvalue
copy: *b
`)
	root, err := YAML(src)
	require.NoError(t, err)
	assert.Equal(t, "secretvalue", lookup(t, root, "copy").Value)

	empty, err := YAML(nil)
	require.NoError(t, err)
	assert.Equal(t, confignode.NullScalar, empty.Scalar)
}

func TestYAML_ParseError(t *testing.T) {
	_, err := YAML([]byte("a: [unterminated"))
	require.Error(t, err)
}

func TestJSON_OrderAndTypes(t *testing.T) {
	src := []byte(`{"z": "one", "a": 3.14, "flag": false, "gone": null, "arr": ["x", 1], "obj": {"k": "v"}}`)
	root, err := JSON(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "flag", "gone", "arr", "obj"}, keysOf(t, root))
	assert.Equal(t, confignode.NumberScalar, lookup(t, root, "a").Scalar)
	assert.Equal(t, "3.14", lookup(t, root, "a").Value)
	assert.Equal(t, confignode.BoolScalar, lookup(t, root, "flag").Scalar)
	assert.Equal(t, confignode.NullScalar, lookup(t, root, "gone").Scalar)
}

func TestJSON_Errors(t *testing.T) {
	_, err := JSON([]byte(`{"a":`))
	require.Error(t, err)
	_, err = JSON([]byte(`{"a": 1} trailing`))
	require.Error(t, err)
}

func TestDotEnv(t *testing.T) {
	src := []byte(`
# comment
export DB_PASSWORD="hunter2"
API_TOKEN=xK9#mQ2$vL8@nR5!
EMPTY=
QUOTED='single'
`)
	root, err := DotEnv(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"DB_PASSWORD", "API_TOKEN", "EMPTY", "QUOTED"}, keysOf(t, root))
	assert.Equal(t, "hunter2", lookup(t, root, "DB_PASSWORD").Value)
	assert.Equal(t, "xK9#mQ2$vL8@nR5!", lookup(t, root, "API_TOKEN").Value)
	assert.Equal(t, "single", lookup(t, root, "QUOTED").Value)

	_, err = DotEnv([]byte("NOEQUALS"))
	require.Error(t, err)
}

func TestINI_SectionsAndNesting(t *testing.T) {
	src := []byte(`
; top comment
global_key = top
[database]
password = "hunter2"
[database.primary]
host = db1.internal
`)
	root, err := INI(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"global_key", "database"}, keysOf(t, root))

	db := lookup(t, root, "database")
	assert.Equal(t, "hunter2", lookup(t, db, "password").Value)
	primary := lookup(t, db, "primary")
	assert.Equal(t, "db1.internal", lookup(t, primary, "host").Value)

	_, err = INI([]byte("[unterminated"))
	require.Error(t, err)
}

func TestParse_Dispatch(t *testing.T) {
	for name, ok := range map[string]bool{
		"config.yaml":  true,
		"config.yml":   true,
		"config.json":  true,
		"settings.ini": true,
		"app.toml":     true,
		".env":         true,
		".env.local":   true,
		"dev.env":      true,
		"readme.md":    false,
		"binary.png":   false,
		"Makefile":     false,
	} {
		assert.Equal(t, ok, Supported(name), "path %q", name)
	}

	_, err := Parse("notes.txt", []byte("whatever"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	root, err := Parse("c.json", []byte(`{"k": "v"}`))
	require.NoError(t, err)
	assert.Equal(t, "v", lookup(t, root, "k").Value)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/entrocheck-test.yaml")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrUnsupportedFormat))
}
