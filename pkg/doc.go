// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
yamlfmt.

From top-down, the code is layered in this way:

# Entry Point

yamlfmt is built into a single command-line executable:

	./cmd/yamlfmt

# Command

There is exactly one command: the root command parses the formatting flags,
resolves the explicit/implicit document marker pairs, and drives the
formatter over the file arguments in order.

	pkg/cmd

# Formatting

The heart of yamlfmt is a comment-preserving reformat of a YAML stream:
load, optionally sort mapping keys, and write back in place.

yamlfmt delegates parsing and emitting YAML to the de facto standard
round-trip library (https://github.com/go-yaml/yaml/tree/v3), working
directly on its yaml.Node trees; those carry the comment, style, and anchor
metadata that must survive the rewrite.

	pkg/yamlfmt

# Utilities

The remainder are domain-agnostic utilities:

	pkg/cmd/ui
	pkg/version
*/
package pkg
