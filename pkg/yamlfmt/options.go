// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

const (
	DefaultMappingIndent  = 4
	DefaultSequenceIndent = 6
	DefaultSequenceOffset = 4
	DefaultWidth          = 150
)

// FormatOpts carries the formatting configuration for a run. It is built
// once from resolved flags and read-only afterwards.
type FormatOpts struct {
	// MappingIndent is the number of spaces nested nodes are indented by.
	MappingIndent int

	// SequenceIndent, SequenceOffset, AlignColons and Width are carried for
	// flag compatibility; they are honored only as far as the emitter
	// exposes a matching control (it currently exposes a single indent).
	SequenceIndent int
	SequenceOffset int
	AlignColons    bool
	Width          int

	// PreserveQuotes keeps original quote characters around scalars instead
	// of letting the emitter apply its default quoting rules.
	PreserveQuotes bool

	// PreserveNull emits null scalars as the literal 'null' instead of the
	// empty form.
	PreserveNull bool

	// ExplicitStart/ExplicitEnd control the '---' and '...' document
	// markers.
	ExplicitStart bool
	ExplicitEnd   bool

	// SortKeys reorders every mapping's keys lexically, keeping comments
	// attached to their keys.
	SortKeys bool
}

// DefaultFormatOpts returns the configuration used when no flags are given.
func DefaultFormatOpts() FormatOpts {
	return FormatOpts{
		MappingIndent:  DefaultMappingIndent,
		SequenceIndent: DefaultSequenceIndent,
		SequenceOffset: DefaultSequenceOffset,
		Width:          DefaultWidth,
		ExplicitStart:  true,
	}
}
