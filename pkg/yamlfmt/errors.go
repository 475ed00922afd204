// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import "fmt"

// ReadError indicates the file at Path could not be opened, read, or parsed
// as a YAML stream. It is terminal for the run.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Reading file '%s': %s", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError indicates the formatted result could not be written back to
// Path. It is terminal for the run.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("Writing file '%s': %s", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
