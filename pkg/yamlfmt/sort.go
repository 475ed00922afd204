// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// SortKeys reorders every mapping in the tree so its keys appear in
// ascending lexical order of the key's string form, recursing into mapping
// values and sequence elements. Comments are anchored on the key and value
// nodes themselves, so moving a pair relocates its comments with it.
// Scalar values, tags, anchors, aliases, and comment text are untouched.
// The sort is stable; keys without a scalar string form keep their
// relative order.
func SortKeys(node *yaml.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			SortKeys(child)
		}

	case yaml.MappingNode:
		pairs := make([]mapPair, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			pairs = append(pairs, mapPair{key: node.Content[i], value: node.Content[i+1]})
		}

		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].key.Value < pairs[j].key.Value
		})

		node.Content = node.Content[:0]
		for _, pair := range pairs {
			SortKeys(pair.value)
			node.Content = append(node.Content, pair.key, pair.value)
		}
	}
}

type mapPair struct {
	key   *yaml.Node
	value *yaml.Node
}
