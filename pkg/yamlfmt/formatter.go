// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"bytes"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Formatter rewrites YAML files in place according to its configuration.
// It holds no per-file state; one value can format any number of files.
type Formatter struct {
	opts FormatOpts
}

func NewFormatter(opts FormatOpts) *Formatter {
	return &Formatter{opts}
}

// Format loads the YAML stream at path, sorts mapping keys if configured,
// and writes the result back to the same path.
func (f *Formatter) Format(path string) error {
	docs, err := f.Load(path)
	if err != nil {
		return err
	}

	if f.opts.SortKeys {
		for _, doc := range docs {
			SortKeys(doc)
		}
	}

	return f.Write(path, docs)
}

// Load parses the file at path as a stream of one or more YAML documents,
// retaining comments, styles, and anchors.
func (f *Formatter) Load(path string) ([]*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	docs, err := parseStream(data)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return docs, nil
}

// Write serializes docs back to path, replacing the file's contents and
// keeping its permission bits.
func (f *Formatter) Write(path string, docs []*yaml.Node) error {
	out, err := f.encode(docs)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	mode := fs.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	err = os.WriteFile(path, out, mode)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

// FormatBytes formats a YAML stream held in memory. Parse and encode errors
// are returned unwrapped since there is no path to report.
func (f *Formatter) FormatBytes(data []byte) ([]byte, error) {
	docs, err := parseStream(data)
	if err != nil {
		return nil, err
	}

	if f.opts.SortKeys {
		for _, doc := range docs {
			SortKeys(doc)
		}
	}

	return f.encode(docs)
}

func parseStream(data []byte) ([]*yaml.Node, error) {
	var docs []*yaml.Node

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	return docs, nil
}

// encode serializes each document separately so that start/end markers stay
// under this package's control. A '---' separator is always written between
// stream documents; the leading one only when configured.
func (f *Formatter) encode(docs []*yaml.Node) ([]byte, error) {
	var buf bytes.Buffer

	for i, doc := range docs {
		f.normalize(doc)

		if f.opts.ExplicitStart || i > 0 {
			buf.WriteString("---\n")
		}

		enc := yaml.NewEncoder(&buf)
		if f.opts.MappingIndent > 0 {
			enc.SetIndent(f.opts.MappingIndent)
		}

		err := enc.Encode(doc)
		if err != nil {
			enc.Close()
			return nil, err
		}

		err = enc.Close()
		if err != nil {
			return nil, err
		}

		if f.opts.ExplicitEnd {
			buf.WriteString("...\n")
		}
	}

	return buf.Bytes(), nil
}
