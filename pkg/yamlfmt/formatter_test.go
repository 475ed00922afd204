// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"github.com/stretchr/testify/require"

	"carvel.dev/yamlfmt/pkg/yamlfmt"
)

func TestFormatDefaults(t *testing.T) {
	out := formatStr(t, yamlfmt.DefaultFormatOpts(), "a: 1\nb:\n  c: 2\n")
	expectEquals(t, out, "---\na: 1\nb:\n    c: 2\n")
}

func TestFormatKeyOrderPreservedWithoutSort(t *testing.T) {
	in := "---\nb: 1\nc: 3\na: 2\n"
	out := formatStr(t, yamlfmt.DefaultFormatOpts(), in)
	expectEquals(t, out, in)
}

func TestFormatDocumentMarkers(t *testing.T) {
	tests := []struct {
		name          string
		explicitStart bool
		explicitEnd   bool
		expected      string
	}{
		{"explicit start only (defaults)", true, false, "---\na: 1\n"},
		{"no markers", false, false, "a: 1\n"},
		{"both markers", true, true, "---\na: 1\n...\n"},
		{"explicit end only", false, true, "a: 1\n...\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			opts := yamlfmt.DefaultFormatOpts()
			opts.ExplicitStart = test.explicitStart
			opts.ExplicitEnd = test.explicitEnd

			expectEquals(t, formatStr(t, opts, "a: 1\n"), test.expected)
		})
	}
}

func TestFormatMultiDocumentStream(t *testing.T) {
	in := "---\na: 1\n---\nb: 2\n"
	out := formatStr(t, yamlfmt.DefaultFormatOpts(), in)
	expectEquals(t, out, in)

	opts := yamlfmt.DefaultFormatOpts()
	opts.ExplicitStart = false

	// stream documents past the first still need their separator
	expectEquals(t, formatStr(t, opts, in), "a: 1\n---\nb: 2\n")

	opts.ExplicitEnd = true
	expectEquals(t, formatStr(t, opts, in), "a: 1\n...\n---\nb: 2\n...\n")
}

func TestFormatNullRepresentation(t *testing.T) {
	in := "---\nempty:\ntilde: ~\nword: null\n"

	out := formatStr(t, yamlfmt.DefaultFormatOpts(), in)
	expectEquals(t, out, "---\nempty:\ntilde:\nword:\n")

	opts := yamlfmt.DefaultFormatOpts()
	opts.PreserveNull = true

	out = formatStr(t, opts, in)
	expectEquals(t, out, "---\nempty: null\ntilde: null\nword: null\n")
}

func TestFormatQuotePreservation(t *testing.T) {
	in := "---\nsingle: 'hello'\ndouble: \"world\"\nplain: value\n"

	out := formatStr(t, yamlfmt.DefaultFormatOpts(), in)
	expectEquals(t, out, "---\nsingle: hello\ndouble: world\nplain: value\n")

	opts := yamlfmt.DefaultFormatOpts()
	opts.PreserveQuotes = true

	expectEquals(t, formatStr(t, opts, in), in)
}

func TestFormatQuoteDroppingKeepsNecessaryQuotes(t *testing.T) {
	// '123' is a string; dropping the quotes outright would turn it into
	// an integer, so the emitter must re-quote it
	in := "---\nnum: '123'\n"
	out := formatStr(t, yamlfmt.DefaultFormatOpts(), in)
	expectEquals(t, out, "---\nnum: \"123\"\n")
}

func TestFormatMappingIndent(t *testing.T) {
	opts := yamlfmt.DefaultFormatOpts()
	opts.MappingIndent = 2

	out := formatStr(t, opts, "---\na:\n    b: 1\nitems:\n    - 1\n    - 2\n")
	expectEquals(t, out, "---\na:\n  b: 1\nitems:\n  - 1\n  - 2\n")
}

func TestFormatPreservesAnchorsAndLiterals(t *testing.T) {
	in := "---\nbase: &shared\n    x: 1\nref: *shared\ntext: |\n    line1\n    line2\n"
	out := formatStr(t, yamlfmt.DefaultFormatOpts(), in)
	expectEquals(t, out, in)
}

func TestFormatIdempotent(t *testing.T) {
	opts := yamlfmt.DefaultFormatOpts()
	opts.SortKeys = true
	opts.PreserveNull = true

	in := "b:   1 # keep\nempty:\na:\n  - 2\n  - x: 'q'\n    w: r\n"

	first := formatStr(t, opts, in)
	second := formatStr(t, opts, first)
	expectEquals(t, second, first)
}

func TestFormatEmptyStream(t *testing.T) {
	out := formatStr(t, yamlfmt.DefaultFormatOpts(), "")
	expectEquals(t, out, "")
}

func TestFormatRewritesFileInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("b:  1\na: 2\n"), 0600))

	err := yamlfmt.NewFormatter(yamlfmt.DefaultFormatOpts()).Format(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expectEquals(t, string(data), "---\nb: 1\na: 2\n")

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0600), fi.Mode().Perm())
}

func TestFormatMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yml")

	err := yamlfmt.NewFormatter(yamlfmt.DefaultFormatOpts()).Format(path)
	require.Error(t, err)

	var readErr *yamlfmt.ReadError
	require.ErrorAs(t, err, &readErr)
	require.Equal(t, path, readErr.Path)
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestFormatMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	original := []byte("a: [unclosed\n")
	require.NoError(t, os.WriteFile(path, original, 0644))

	err := yamlfmt.NewFormatter(yamlfmt.DefaultFormatOpts()).Format(path)
	require.Error(t, err)

	var readErr *yamlfmt.ReadError
	require.ErrorAs(t, err, &readErr)

	// the file must be left untouched
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, original, data)
}

func formatStr(t *testing.T, opts yamlfmt.FormatOpts, in string) string {
	out, err := yamlfmt.NewFormatter(opts).FormatBytes([]byte(in))
	require.NoError(t, err)
	return string(out)
}

func expectEquals(t *testing.T, resultStr, expectedStr string) {
	if resultStr != expectedStr {
		diff := difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n"))
		t.Fatalf("Not equal; diff expected...actual:\n%v", diff)
	}
}
