// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import "gopkg.in/yaml.v3"

const nullTag = "!!null"

// normalize applies scalar-level rewrites ahead of encoding: quote styles
// are dropped unless PreserveQuotes is set (the emitter re-quotes scalars
// that need it), and null scalars get a uniform representation -- the empty
// form, or the literal 'null' under PreserveNull.
func (f *Formatter) normalize(node *yaml.Node) {
	if node == nil {
		return
	}

	if node.Kind == yaml.ScalarNode {
		if !f.opts.PreserveQuotes {
			node.Style &^= yaml.SingleQuotedStyle | yaml.DoubleQuotedStyle
		}

		if node.ShortTag() == nullTag {
			if f.opts.PreserveNull {
				node.Value = "null"
			} else {
				node.Value = ""
			}
			node.Style = 0
		}
	}

	for _, child := range node.Content {
		f.normalize(child)
	}
}
