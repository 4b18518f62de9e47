package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/demobank/fraudcall/internal/common"
	"github.com/demobank/fraudcall/internal/model"
)

// JSONStore implements service.CaseStore over a single flat JSON file
// holding the ordered case array. It is the default backend: the whole
// collection is read at call start and rewritten on each update.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSON-file case store at the given path,
// creating the parent directory if it does not exist.
func NewJSONStore(path string) (*JSONStore, error) {
	if err := validateString(path, "path"); err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	return &JSONStore{path: path}, nil
}

// Load reads the full case collection. A missing file is created and
// seeded with the sample cases. A file that cannot be read or parsed is
// left untouched: the failure is logged and the in-memory seed set is
// returned so a demo call can still proceed.
func (s *JSONStore) Load(ctx context.Context) ([]model.FraudCase, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s.seed(ctx)
	}
	if err != nil {
		common.LogError(err, "failed to read case store, using seed data", common.Fields{"path": s.path})
		return SeedCases(), nil
	}

	var cases []model.FraudCase
	if err := json.Unmarshal(data, &cases); err != nil {
		common.LogError(fmt.Errorf("%w: %v", common.ErrStoreCorrupted, err),
			"failed to parse case store, using seed data", common.Fields{"path": s.path})
		return SeedCases(), nil
	}

	if len(cases) == 0 {
		return s.seed(ctx)
	}

	return cases, nil
}

// Save rewrites the entire collection, replacing prior content.
func (s *JSONStore) Save(ctx context.Context, cases []model.FraudCase) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCases(cases); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize cases: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write case store: %w", err)
	}

	return nil
}

// Close is a no-op for the file-backed store.
func (s *JSONStore) Close() error {
	return nil
}

// seed populates an absent or empty store with the sample cases.
func (s *JSONStore) seed(ctx context.Context) ([]model.FraudCase, error) {
	cases := SeedCases()
	if err := s.Save(ctx, cases); err != nil {
		common.LogError(err, "failed to seed case store", common.Fields{"path": s.path})
	}
	return cases, nil
}
