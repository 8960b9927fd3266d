// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paintquote/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved quotes (list, show, export)",
	Long: `History manages the local SQLite quote history written by
"paintquote quote --save".`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved quotes, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyDir())
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.List(cmdContext(cmd), listOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if recs == nil {
			recs = []history.Record{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	w := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(w, "No saved quotes.")
		return nil
	}

	fmt.Fprintf(w, "%-12s  %-20s  %-20s  %-30s  %10s\n", "ID", "Created", "Customer", "Address", "Total")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, r := range recs {
		fmt.Fprintf(w, "%-12s  %-20s  %-20s  %-30s  %10.2f\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), truncate(r.CustomerName, 20), truncate(r.Address, 30), r.GrandTotal)
	}
	fmt.Fprintf(w, "\n%d quotes\n", len(recs))
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved quote",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyDir())
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(cmdContext(cmd), args[0])
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	w := cmd.OutOrStdout()
	if format == "table" || format == "" {
		fmt.Fprintf(w, "Quote %s saved %s\n\n%s\n\n", rec.ID, rec.CreatedAt.Local().Format("2006-01-02 15:04"), strings.TrimSpace(rec.InputText))
	}
	return writeResult(w, rec.Result, format)
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved quotes as YAML or JSON",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyDir())
	if err != nil {
		return err
	}
	defer store.Close()

	w := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	opts := listOptsFromFlags(cmd)
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		return store.ExportYAML(cmdContext(cmd), w, opts)
	case "json":
		return store.ExportJSON(cmdContext(cmd), w, opts)
	}
	return fmt.Errorf("unknown export format %q: use yaml or json", format)
}

func listOptsFromFlags(cmd *cobra.Command) history.ListOptions {
	customer, _ := cmd.Flags().GetString("customer")
	query, _ := cmd.Flags().GetString("query")
	limit, _ := cmd.Flags().GetInt("limit")
	return history.ListOptions{Customer: customer, Query: query, Limit: limit}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	for _, c := range []*cobra.Command{historyListCmd, historyExportCmd} {
		c.Flags().String("customer", "", "filter by customer name (substring)")
		c.Flags().String("query", "", "filter by text in the original description")
	}
	historyListCmd.Flags().Int("limit", 20, "maximum number of quotes")
	historyListCmd.Flags().Bool("json", false, "output as JSON")

	historyShowCmd.Flags().String("format", "table", "output format: table, json or yaml")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
