package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"econ-cdn/core/utils"

	"github.com/iancoleman/orderedmap"
)

// Tree is an order-preserving raw catalog or localization tree.
type Tree = *orderedmap.OrderedMap

// DecodeTree decodes a JSON object, keeping key order at every level.
func DecodeTree(data []byte) (Tree, error) {
	t := orderedmap.New()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to decode catalog tree: %w", err)
	}
	return t, nil
}

// asTree accepts both value and pointer forms produced by orderedmap decoding.
func asTree(v any) (Tree, bool) {
	switch t := v.(type) {
	case *orderedmap.OrderedMap:
		return t, t != nil
	case orderedmap.OrderedMap:
		return &t, true
	default:
		return nil, false
	}
}

// child returns the named subtree, or false when absent or not an object.
func child(t Tree, key string) (Tree, bool) {
	v, ok := t.Get(key)
	if !ok {
		return nil, false
	}
	return asTree(v)
}

// str returns the leaf value of key as a string, empty when absent or an object.
func str(t Tree, key string) string {
	v, ok := t.Get(key)
	if !ok || v == nil {
		return ""
	}
	if _, isTree := asTree(v); isTree {
		return ""
	}
	return strings.TrimSpace(utils.ToString(v))
}

// flag reads a KeyValues style boolean ("1", 1, true).
func flag(t Tree, key string) bool {
	v, ok := t.Get(key)
	if !ok {
		return false
	}
	return utils.ToBool(v)
}

// usedBy reads a used_by_classes block.
func usedBy(t Tree) UsedBy {
	classes, ok := child(t, "used_by_classes")
	if !ok {
		return UsedBy{}
	}
	return UsedBy{
		Terrorists:        flag(classes, "terrorists"),
		CounterTerrorists: flag(classes, "counter-terrorists"),
	}
}
