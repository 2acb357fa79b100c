// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps a run ledger in a SQLite database: which artifacts
// were generated for which requests, and the metrics of each analysis run.
// The artifact JSON files remain the source of truth; the ledger exists for
// history queries and export.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-engine/pkg/types"
)

const dbFile = "content.db"

// Store manages the run-ledger SQLite database.
type Store struct {
	db       *sql.DB
	storeDir string
}

// NewStore opens or creates the ledger database at storeDir/content.db,
// creating the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.StoreDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dbPath := filepath.Join(cfg.StoreDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, storeDir: cfg.StoreDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS artifacts (
			path TEXT PRIMARY KEY,
			subject TEXT NOT NULL,
			grade_level TEXT NOT NULL,
			topic TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			filename TEXT NOT NULL,
			metrics TEXT NOT NULL,
			analyzed_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_filename ON analyses(filename)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordArtifact upserts the ledger row for a generated artifact. Rerunning
// a request overwrites the artifact file, so the ledger row follows suit.
func (s *Store) RecordArtifact(ctx context.Context, req types.ContentRequest, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO artifacts (path, subject, grade_level, topic, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			subject=excluded.subject, grade_level=excluded.grade_level,
			topic=excluded.topic, created_at=excluded.created_at`,
		path, req.Subject, req.GradeLevel, req.Topic,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording artifact %s: %w", path, err)
	}
	return nil
}

// RecordAnalysis appends one analysis record. The metrics are stored as the
// record's JSON encoding; every run appends rather than replacing, so score
// drift across reruns stays visible.
func (s *Store) RecordAnalysis(ctx context.Context, m types.AnalysisMetrics) error {
	metricsJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling metrics: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (filename, metrics, analyzed_at) VALUES (?, ?, ?)`,
		m.Filename, string(metricsJSON), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording analysis for %s: %w", m.Filename, err)
	}
	return nil
}

// HistoryEntry is one generated-artifact row from the ledger.
type HistoryEntry struct {
	Path       string `json:"path" yaml:"path"`
	Subject    string `json:"subject" yaml:"subject"`
	GradeLevel string `json:"grade_level" yaml:"grade_level"`
	Topic      string `json:"topic" yaml:"topic"`
	CreatedAt  string `json:"created_at" yaml:"created_at"`
}

// History returns the most recent artifact rows, newest first. A limit of
// zero or less returns everything.
func (s *Store) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	query := `SELECT path, subject, grade_level, topic, created_at
		FROM artifacts ORDER BY created_at DESC, path`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.Path, &e.Subject, &e.GradeLevel, &e.Topic, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AnalysisEntry is one analysis row from the ledger, with the stored metrics
// decoded back into their record form.
type AnalysisEntry struct {
	Filename   string                `json:"filename" yaml:"filename"`
	AnalyzedAt string                `json:"analyzed_at" yaml:"analyzed_at"`
	Metrics    types.AnalysisMetrics `json:"metrics" yaml:"metrics"`
}

// Analyses returns the most recent analysis rows, newest first. A limit of
// zero or less returns everything.
func (s *Store) Analyses(ctx context.Context, limit int) ([]AnalysisEntry, error) {
	query := `SELECT filename, metrics, analyzed_at FROM analyses ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	var entries []AnalysisEntry
	for rows.Next() {
		var e AnalysisEntry
		var metricsJSON string
		if err := rows.Scan(&e.Filename, &metricsJSON, &e.AnalyzedAt); err != nil {
			return nil, fmt.Errorf("scanning analysis row: %w", err)
		}
		if err := json.Unmarshal([]byte(metricsJSON), &e.Metrics); err != nil {
			return nil, fmt.Errorf("decoding stored metrics for %s: %w", e.Filename, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Export holds the full ledger contents for export.
type Export struct {
	Artifacts []HistoryEntry  `json:"artifacts" yaml:"artifacts"`
	Analyses  []AnalysisEntry `json:"analyses" yaml:"analyses"`
}

// ExportYAML writes the whole ledger to storeDir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) error {
	export, err := s.export(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(export)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.storeDir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the whole ledger to storeDir/export.json.
func (s *Store) ExportJSON(ctx context.Context) error {
	export, err := s.export(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.storeDir, "export.json"), data, 0o644)
}

func (s *Store) export(ctx context.Context) (Export, error) {
	artifacts, err := s.History(ctx, 0)
	if err != nil {
		return Export{}, err
	}
	analyses, err := s.Analyses(ctx, 0)
	if err != nil {
		return Export{}, err
	}
	return Export{Artifacts: artifacts, Analyses: analyses}, nil
}
