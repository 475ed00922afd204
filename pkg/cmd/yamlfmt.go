// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	cmdui "carvel.dev/yamlfmt/pkg/cmd/ui"
	"carvel.dev/yamlfmt/pkg/version"
	"carvel.dev/yamlfmt/pkg/yamlfmt"
)

type YamlfmtOptions struct {
	MappingIndent  int
	SequenceIndent int
	SequenceOffset int
	AlignColons    bool
	Width          int
	PreserveQuotes bool
	PreserveNull   bool
	SortKeys       bool

	ExplicitStart bool
	ImplicitStart bool
	ExplicitEnd   bool
	ImplicitEnd   bool

	Debug bool
}

func NewDefaultYamlfmtOptions() *YamlfmtOptions {
	return &YamlfmtOptions{
		MappingIndent:  yamlfmt.DefaultMappingIndent,
		SequenceIndent: yamlfmt.DefaultSequenceIndent,
		SequenceOffset: yamlfmt.DefaultSequenceOffset,
		Width:          yamlfmt.DefaultWidth,
		ExplicitStart:  true,
	}
}

func NewDefaultYamlfmtCmd() *cobra.Command {
	return NewYamlfmtCmd(NewDefaultYamlfmtOptions())
}

func NewYamlfmtCmd(o *YamlfmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "yamlfmt [FILE_NAME...]",
		Short:   "yamlfmt reformats YAML files in place",
		Long:    "yamlfmt reformats YAML files in place: normalizes indentation, optionally sorts mapping keys (comments stay attached to their keys), and manages document start/end markers.",
		Args:    cobra.ArbitraryArgs,
		Version: version.Version,
		RunE:    func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}

	cmd.Flags().IntVarP(&o.MappingIndent, "mapping", "m", o.MappingIndent, "Number of spaces nested mappings are indented by")
	cmd.Flags().IntVarP(&o.SequenceIndent, "sequence", "s", o.SequenceIndent, "Number of spaces sequences are indented by")
	cmd.Flags().IntVarP(&o.SequenceOffset, "offset", "o", o.SequenceOffset, "Number of spaces sequence dashes are offset by")
	cmd.Flags().BoolVarP(&o.AlignColons, "colons", "c", false, "Align top-level colons")
	cmd.Flags().IntVarP(&o.Width, "width", "w", o.Width, "Maximum line width")
	cmd.Flags().BoolVarP(&o.PreserveQuotes, "preserve-quotes", "p", false, "Keep original quote characters around scalars")
	cmd.Flags().BoolVarP(&o.PreserveNull, "preserve_null", "n", false, "Emit null scalars as the literal 'null'")
	cmd.Flags().BoolVarP(&o.SortKeys, "sort_keys", "k", false, "Sort mapping keys")

	cmd.Flags().BoolVar(&o.ExplicitStart, "explicit_start", true, "Begin each document with a '---' marker")
	cmd.Flags().BoolVarP(&o.ImplicitStart, "implicit_start", "e", false, "Omit the leading '---' marker")
	cmd.Flags().BoolVar(&o.ExplicitEnd, "explicit_end", false, "End each document with a '...' marker")
	cmd.Flags().BoolVar(&o.ImplicitEnd, "implicit_end", false, "Omit the trailing '...' marker")
	cmd.MarkFlagsMutuallyExclusive("explicit_start", "implicit_start")
	cmd.MarkFlagsMutuallyExclusive("explicit_end", "implicit_end")

	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cobrautil.VisitCommands(cmd, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

func (o *YamlfmtOptions) Run(paths []string) error {
	return o.RunWithUI(cmdui.NewTTY(o.Debug), paths)
}

// RunWithUI formats each path in order, printing the path and then
// '  Done' per file. The first failure aborts the run; later paths are
// not attempted.
func (o *YamlfmtOptions) RunWithUI(ui cmdui.UI, paths []string) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	formatter := yamlfmt.NewFormatter(o.FormatOpts())

	for _, path := range paths {
		ui.Printf("%s\n", path)

		err := formatter.Format(path)
		if err != nil {
			return err
		}

		ui.Printf("  Done\n")
	}

	return nil
}

// FormatOpts resolves the flag values into the formatter configuration.
// The implicit marker flags override their default-valued explicit
// counterparts; giving both flags of a pair is rejected during flag
// parsing.
func (o *YamlfmtOptions) FormatOpts() yamlfmt.FormatOpts {
	return yamlfmt.FormatOpts{
		MappingIndent:  o.MappingIndent,
		SequenceIndent: o.SequenceIndent,
		SequenceOffset: o.SequenceOffset,
		AlignColons:    o.AlignColons,
		Width:          o.Width,
		PreserveQuotes: o.PreserveQuotes,
		PreserveNull:   o.PreserveNull,
		ExplicitStart:  o.ExplicitStart && !o.ImplicitStart,
		ExplicitEnd:    o.ExplicitEnd && !o.ImplicitEnd,
		SortKeys:       o.SortKeys,
	}
}
