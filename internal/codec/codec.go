// Package codec reads and writes document trees in the formats the CLI
// understands. It abstracts the serialization format away so commands
// can treat every input as a [treedict.Tree].
package codec

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"sigs.k8s.io/yaml"

	"github.com/dictkit-project/dictkit/pkg/treedict"
)

// Codec encodes and decodes a single document tree.
type Codec interface {
	// Name is the format name as used by the --format flag.
	Name() string
	// Marshal encodes the tree.
	Marshal(t treedict.Tree) ([]byte, error)
	// Unmarshal decodes data into a tree. Nested maps in the result are
	// always map[string]any.
	Unmarshal(data []byte) (treedict.Tree, error)
}

var codecs = map[string]Codec{
	"json":    jsonCodec{},
	"yaml":    yamlCodec{},
	"msgpack": msgpackCodec{},
}

// ByName returns the codec for a format name, or false when the format
// is unknown. Names are case-insensitive.
func ByName(name string) (Codec, bool) {
	c, ok := codecs[strings.ToLower(name)]
	return c, ok
}

// ForPath picks a codec from the file extension. JSON is the fallback
// for unknown extensions.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	case ".msgpack", ".mp", ".bin":
		return msgpackCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(t treedict.Tree) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

func (jsonCodec) Unmarshal(data []byte) (treedict.Tree, error) {
	var t treedict.Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return t, nil
}

// yamlCodec goes through sigs.k8s.io/yaml, which converts to JSON on
// the way in. That guarantees string keys on every nesting level, which
// plain YAML decoding does not.
type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Marshal(t treedict.Tree) ([]byte, error) {
	return yaml.Marshal(t)
}

func (yamlCodec) Unmarshal(data []byte) (treedict.Tree, error) {
	var t treedict.Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return t, nil
}

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Marshal(t treedict.Tree) ([]byte, error) {
	return msgpack.Marshal(t)
}

func (msgpackCodec) Unmarshal(data []byte) (treedict.Tree, error) {
	var t treedict.Tree
	if err := msgpack.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return normalize(t), nil
}

// normalize rewrites map[any]any values (which the msgpack decoder can
// produce) into string-keyed trees so the rest of the code sees uniform
// map[string]any nesting.
func normalize(t treedict.Tree) treedict.Tree {
	for k, v := range t {
		t[k] = normalizeValue(v)
	}
	return t
}

func normalizeValue(v any) any {
	switch m := v.(type) {
	case treedict.Tree:
		return normalize(m)
	case map[any]any:
		out := make(treedict.Tree, len(m))
		for k, mv := range m {
			ks, ok := k.(string)
			if !ok {
				// non-string key, leave the map as an opaque leaf
				return v
			}
			out[ks] = normalizeValue(mv)
		}
		return out
	case []any:
		for i, item := range m {
			m[i] = normalizeValue(item)
		}
		return m
	default:
		return v
	}
}
