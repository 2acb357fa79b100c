// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Query the run ledger of generated artifacts and analyses",
	Long: `History lists past generation runs from the local SQLite ledger,
newest first. Use --analyses to list analysis runs instead, and the export
subcommand to dump the whole ledger to YAML or JSON.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	showAnalyses, _ := cmd.Flags().GetBool("analyses")

	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()

	if showAnalyses {
		entries, err := s.Analyses(ctx, limit)
		if err != nil {
			return err
		}
		return formatAnalyses(entries, jsonOutput)
	}

	entries, err := s.History(ctx, limit)
	if err != nil {
		return err
	}
	return formatHistory(entries, jsonOutput)
}

func formatHistory(entries []store.HistoryEntry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-15s  %-12s  %-30s  %s\n",
		"Created", "Subject", "Grade", "Topic", "Path")
	for _, e := range entries {
		topic := e.Topic
		if len(topic) > 30 {
			topic = topic[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-15s  %-12s  %-30s  %s\n",
			e.CreatedAt, e.Subject, e.GradeLevel, topic, e.Path)
	}
	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(entries))
	return nil
}

func formatAnalyses(entries []store.AnalysisEntry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No analyses recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-40s  %s\n", "Analyzed", "File", "Flesch-Kincaid")
	for _, e := range entries {
		fk := "N/A"
		if e.Metrics.FleschKincaidGrade != nil {
			fk = fmt.Sprintf("%.2f", *e.Metrics.FleschKincaidGrade)
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-40s  %s\n", e.AnalyzedAt, e.Filename, fk)
	}
	fmt.Fprintf(os.Stdout, "\n%d analyses\n", len(entries))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run ledger to YAML or JSON",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := storeConfig(cmd)
	s, err := store.NewStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	switch format {
	case "yaml", "":
		if err := s.ExportYAML(ctx); err != nil {
			return err
		}
		fmt.Println("Exported to", filepath.Join(cfg.StoreDir, "export.yaml"))
	case "json":
		if err := s.ExportJSON(ctx); err != nil {
			return err
		}
		fmt.Println("Exported to", filepath.Join(cfg.StoreDir, "export.json"))
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	return nil
}

func init() {
	historyCmd.PersistentFlags().String("store-dir", "store", "directory for the run-history database")

	historyCmd.Flags().Int("limit", 20, "maximum rows to list (0 = all)")
	historyCmd.Flags().Bool("json", false, "output rows as JSON")
	historyCmd.Flags().Bool("analyses", false, "list analysis runs instead of generation runs")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
