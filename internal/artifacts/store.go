// Package artifacts persists stage checkpoint files to the output directory.
// Each stage writes exactly one artifact; files are overwritten on every run
// and kept on disk for inspection and resume.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Checkpoint file names, one per stage. The names follow the stage numbering
// of the pipeline so a directory listing reads in execution order.
const (
	QueriesFile       = "step_1_suggested_job_search_queries.json"
	SearchResultsFile = "step_2_job_search_results.json"
	JobRecordsFile    = "step_3_extracted_jobs.json"
	ReportFile        = "step_4_recruitment_report.html"
)

// Store writes and reads checkpoint artifacts under one directory.
type Store struct {
	dir string
}

// NewStore creates the output directory if needed and returns a Store for it.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the output directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the absolute-or-relative path of a named artifact.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// WriteJSON marshals v with indentation and writes it to the named artifact,
// overwriting any previous run's file. The encoding is deterministic so
// repeated runs with identical inputs produce byte-identical files.
func (s *Store) WriteJSON(name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal artifact %s: %w", name, err)
	}
	data = append(data, '\n')

	path := s.Path(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", name, err)
	}
	return path, nil
}

// ReadJSON reads the named artifact and unmarshals it into v.
func (s *Store) ReadJSON(name string, v any) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return fmt.Errorf("failed to read artifact %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse artifact %s: %w", name, err)
	}
	return nil
}

// ReadBytes returns the raw contents of the named artifact.
func (s *Store) ReadBytes(name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", name, err)
	}
	return data, nil
}

// WriteText writes a text artifact (the HTML report), overwriting any
// previous run's file.
func (s *Store) WriteText(name, content string) (string, error) {
	path := s.Path(name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", name, err)
	}
	return path, nil
}
