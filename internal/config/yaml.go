package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagStr   = "!!str"
	tagNull  = "!!null"
	tagFloat = "!!float"
	tagMerge = "!!merge"
)

// yaml11Bools are the plain scalars YAML 1.1 loaders read as booleans.
// yaml.v3 resolves them as strings, so they are mapped here.
var yaml11Bools = map[string]bool{
	"yes": true, "Yes": true, "YES": true,
	"on": true, "On": true, "ON": true,
	"no": false, "No": false, "NO": false,
	"off": false, "Off": false, "OFF": false,
}

// loadDocument reads path and returns the root mapping node of its only
// YAML document. Streams with several documents and mappings with repeated
// keys are parse failures.
func loadDocument(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, parseError(path, "YAML file not found", err)
		}
		return nil, parseError(path, "failed to read YAML file", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, parseError(path, "YAML document is empty", nil)
		}
		return nil, parseError(path, "error reading YAML file", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, parseError(path, "YAML document is empty", nil)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, parseError(path, "expected a single document in the stream", err)
	}
	if err := checkDuplicateKeys(doc.Content[0]); err != nil {
		return nil, parseError(path, "error reading YAML file", err)
	}

	root := deref(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, parseError(path, "YAML document root must be a mapping", nil)
	}
	return root, nil
}

// deref follows alias nodes to the node they point at.
func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// checkDuplicateKeys rejects a mapping anywhere under n that defines the
// same key twice. Aliases are not followed; their targets are checked where
// they are anchored.
func checkDuplicateKeys(n *yaml.Node) error {
	if n == nil || n.Kind == yaml.AliasNode {
		return nil
	}
	if n.Kind == yaml.MappingNode {
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if isMergeKey(k) {
				continue
			}
			if seen[k.Value] {
				return fmt.Errorf("line %d: mapping key %q already defined", k.Line, k.Value)
			}
			seen[k.Value] = true
		}
	}
	for _, c := range n.Content {
		if err := checkDuplicateKeys(c); err != nil {
			return err
		}
	}
	return nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.Value == "<<" && (k.Tag == "" || k.ShortTag() == tagMerge)
}

// lookup finds key in a mapping node. Keys written in the mapping win over
// keys pulled in with "<<" merge entries, and earlier merge sources win over
// later ones.
func lookup(mapping *yaml.Node, key string) (*yaml.Node, bool) {
	return lookupDepth(deref(mapping), key, 0)
}

// maxMergeDepth bounds merge chains so self-referencing anchors terminate.
const maxMergeDepth = 32

func lookupDepth(mapping *yaml.Node, key string, depth int) (*yaml.Node, bool) {
	if mapping == nil || mapping.Kind != yaml.MappingNode || depth > maxMergeDepth {
		return nil, false
	}
	var merges []*yaml.Node
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		k := mapping.Content[i]
		if isMergeKey(k) {
			merges = append(merges, deref(mapping.Content[i+1]))
			continue
		}
		if k.Value == key {
			return deref(mapping.Content[i+1]), true
		}
	}
	for _, m := range merges {
		sources := []*yaml.Node{m}
		if m != nil && m.Kind == yaml.SequenceNode {
			sources = sources[:0]
			for _, item := range m.Content {
				sources = append(sources, deref(item))
			}
		}
		for _, src := range sources {
			if v, ok := lookupDepth(src, key, depth+1); ok {
				return v, true
			}
		}
	}
	return nil, false
}

// asBool reports whether n is a boolean scalar, accepting the YAML 1.1
// spellings (yes/no, on/off) for plain scalars. A YAML 1.1 boolean is
// rewritten to its canonical !!bool form so later decoding agrees.
func asBool(n *yaml.Node) bool {
	if isScalar(n, tagBool) {
		return true
	}
	if n == nil || n.Kind != yaml.ScalarNode || n.Style != 0 || n.ShortTag() != tagStr {
		return false
	}
	b, ok := yaml11Bools[n.Value]
	if !ok {
		return false
	}
	n.Tag = tagBool
	n.Value = fmt.Sprint(b)
	return true
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == tagNull)
}

func isScalar(n *yaml.Node, tag string) bool {
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == tag
}

func hasKind(n *yaml.Node, kind valueKind) bool {
	switch kind {
	case kindBool:
		return asBool(n)
	case kindInt:
		return isScalar(n, tagInt)
	case kindMapping:
		return n != nil && n.Kind == yaml.MappingNode
	case kindSequence:
		return n != nil && n.Kind == yaml.SequenceNode
	default:
		return false
	}
}

// allStrings reports whether n is a sequence whose every element is a string scalar.
func allStrings(n *yaml.Node) bool {
	if n == nil || n.Kind != yaml.SequenceNode {
		return false
	}
	for _, item := range n.Content {
		if !isScalar(deref(item), tagStr) {
			return false
		}
	}
	return true
}
