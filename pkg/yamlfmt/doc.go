// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlfmt reformats YAML documents (preserving comments) into a
canonical form: normalized indentation, optional key sorting, and
configurable document start/end markers.
*/
package yamlfmt
