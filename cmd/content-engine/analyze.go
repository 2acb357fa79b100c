// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/analyze"
	"github.com/pdiddy/content-engine/internal/store"
	"github.com/pdiddy/content-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score saved artifacts with readability formulas",
	Long: `Analyze scores saved content artifacts with six readability formulas
(Flesch-Kincaid, SMOG, Coleman-Liau, ARI, Linsear Write, Dale-Chall) and
prints a per-file report. By default every .json file in the artifacts
directory is analyzed; --file limits the run to one artifact.

Unreadable or malformed artifacts get their own error record without
failing the run.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	yamlOut, _ := cmd.Flags().GetString("yaml")

	opts := analyze.Options{}
	if boolOpt(cmd, "detect-language", "analysis.detect_language") {
		opts.Detector = analyze.NewLinguaDetector()
	}

	var metrics []types.AnalysisMetrics
	if file != "" {
		metrics = []types.AnalysisMetrics{analyze.AnalyzeFile(file, opts)}
	} else {
		dir := stringOpt(cmd, "dir", "analysis.artifacts_dir")
		var err error
		metrics, err = analyze.AnalyzeDir(dir, opts, os.Stdout)
		if err != nil {
			return err
		}
	}

	analyze.WriteReport(metrics, os.Stdout)

	if yamlOut != "" {
		if err := analyze.WriteYAML(metrics, yamlOut); err != nil {
			return err
		}
		fmt.Printf("\nExported metrics to %s\n", yamlOut)
	}

	if record, _ := cmd.Flags().GetBool("record"); record {
		if err := recordAnalyses(context.Background(), storeConfig(cmd), metrics); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
		}
	}

	return nil
}

func recordAnalyses(ctx context.Context, cfg types.StoreConfig, metrics []types.AnalysisMetrics) error {
	s, err := store.NewStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, m := range metrics {
		if err := s.RecordAnalysis(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	analyzeCmd.Flags().String("dir", "output_json", "directory of artifacts to analyze")
	analyzeCmd.Flags().String("file", "", "analyze a single artifact file instead of a directory")
	analyzeCmd.Flags().String("yaml", "", "also write the metrics to this YAML file")
	analyzeCmd.Flags().Bool("detect-language", false, "detect the language of each artifact's text")
	analyzeCmd.Flags().Bool("record", false, "record the metrics in the history database")
	analyzeCmd.Flags().String("store-dir", "store", "directory for the run-history database")

	rootCmd.AddCommand(analyzeCmd)
}
