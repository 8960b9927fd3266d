// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paintquote/internal/history"
	"github.com/pdiddy/paintquote/internal/quote"
	"github.com/pdiddy/paintquote/pkg/types"
)

var quoteCmd = &cobra.Command{
	Use:   "quote [text...]",
	Short: "Parse a job description and print a priced quote",
	Long: `Quote reads a job description from the arguments, from --file, or from
standard input, extracts the job facts, fills gaps with configured defaults,
and prints the priced breakdown.

Example:
  paintquote quote "It's for Cici at 9090 Hillside Drive. 500 linear feet of
  interior painting. $50 a gallon eggshell. No primer."`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringP("file", "f", "", "read the description from a file")
	quoteCmd.Flags().String("format", "table", "output format: table, json or yaml")
	quoteCmd.Flags().Float64("area", 0, "paintable wall area in square feet, overriding the text")
	quoteCmd.Flags().Bool("save", false, "save the quote to the local history")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var opts []quote.Option
	if cmd.Flags().Changed("area") {
		area, _ := cmd.Flags().GetFloat64("area")
		opts = append(opts, quote.WithAreaOverride(area))
	}

	result, err := quote.NewEngine(engineConfig()).ParseAndPrice(text, opts...)
	if err != nil {
		return describeQuoteError(err)
	}

	format, _ := cmd.Flags().GetString("format")
	if err := writeResult(cmd.OutOrStdout(), result, format); err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		id, err := saveQuote(cmdContext(cmd), text, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved quote %s\n", id)
	}
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", eris.Wrapf(err, "quote: read %s", path)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", eris.Wrap(err, "quote: read stdin")
	}
	return string(data), nil
}

// describeQuoteError turns the structured pipeline errors into messages a
// contractor can act on.
func describeQuoteError(err error) error {
	var (
		insufficient *types.InsufficientDataError
		empty        types.EmptyInputError
	)
	switch {
	case errors.As(err, &insufficient):
		return fmt.Errorf("%w (say how many linear feet or square feet, or pass --area)", err)
	case errors.As(err, &empty):
		return fmt.Errorf("%w (describe the job as an argument, with --file, or on stdin)", err)
	}
	return err
}

func writeResult(w io.Writer, result types.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return eris.Wrap(err, "quote: marshal YAML")
		}
		return enc.Close()
	case "table", "":
		writeTable(w, result)
		return nil
	}
	return fmt.Errorf("unknown format %q: use table, json or yaml", format)
}

func writeTable(w io.Writer, r types.Result) {
	s, b := r.Specification, r.Breakdown

	if s.CustomerName != "" {
		fmt.Fprintf(w, "Customer:  %s\n", s.CustomerName)
	}
	if s.Address != "" {
		fmt.Fprintf(w, "Address:   %s\n", s.Address)
	}
	fmt.Fprintf(w, "Project:   %s\n", s.ProjectType)

	var in, out []string
	for _, surface := range types.AllSurfaces {
		if s.Surfaces[surface].Included {
			in = append(in, string(surface))
		} else {
			out = append(out, string(surface))
		}
	}
	fmt.Fprintf(w, "Painting:  %s\n", strings.Join(in, ", "))
	if len(out) > 0 {
		fmt.Fprintf(w, "Excluded:  %s\n", strings.Join(out, ", "))
	}

	paint := fmt.Sprintf("$%.2f/gal, %d coats, %g sqft/gal", s.Paint.CostPerGallon, s.Paint.Coats, s.Paint.SpreadRateSqftPerGallon)
	if s.Paint.Finish != "" {
		paint += ", " + s.Paint.Finish
	}
	if s.Paint.Brand != "" {
		paint += ", " + s.Paint.Brand
	}
	fmt.Fprintf(w, "Paint:     %s\n", paint)
	fmt.Fprintf(w, "Area:      %g sqft, %d gallons\n\n", b.TotalArea, b.Gallons)

	fmt.Fprintf(w, "%-8s  %10s  %-7s  %10s  %12s\n", "Item", "Qty", "Unit", "Unit Cost", "Subtotal")
	fmt.Fprintln(w, strings.Repeat("-", 55))
	for _, li := range b.LineItems {
		fmt.Fprintf(w, "%-8s  %10g  %-7s  %10.2f  %12.2f\n", li.Label, li.Quantity, li.Unit, li.UnitCost, li.Subtotal)
	}
	fmt.Fprintln(w, strings.Repeat("-", 55))
	fmt.Fprintf(w, "%-42s  %12.2f\n", "Materials", b.MaterialTotal)
	fmt.Fprintf(w, "%-42s  %12.2f\n", "Labor", b.LaborTotal)
	if b.MarkupAmount > 0 {
		fmt.Fprintf(w, "%-42s  %12.2f\n", "Markup", b.MarkupAmount)
	}
	fmt.Fprintf(w, "%-42s  %12.2f\n", "Total", b.GrandTotal)

	if s.Completeness.Incomplete() {
		fmt.Fprintf(w, "\nIncomplete: defaults used for %s\n", joinSlots(s.Completeness.MissingCriticalFields))
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}
}

func joinSlots(slots []types.SlotKind) string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func saveQuote(ctx context.Context, text string, result types.Result) (string, error) {
	store, err := history.NewStore(historyDir())
	if err != nil {
		return "", err
	}
	defer store.Close()

	id, err := store.Save(ctx, text, result)
	if err != nil {
		return "", err
	}
	zap.L().Info("quote: saved", zap.String("id", id), zap.Float64("grand_total", result.Breakdown.GrandTotal))
	return id, nil
}

func historyDir() string {
	if appConfig == nil || appConfig.History.Dir == "" {
		return "data/history"
	}
	return appConfig.History.Dir
}
