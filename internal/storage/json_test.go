package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/demobank/fraudcall/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJSONStore(t *testing.T) (*JSONStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shared-data", "fraud_cases.json")
	store, err := NewJSONStore(path)
	require.NoError(t, err)

	return store, path
}

func TestNewJSONStore_EmptyPath(t *testing.T) {
	_, err := NewJSONStore("  ")
	assert.Error(t, err)
}

func TestJSONStore_LoadSeedsMissingFile(t *testing.T) {
	ctx := context.Background()
	store, path := newTestJSONStore(t)

	cases, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "John", cases[0].UserName)
	assert.Equal(t, "Sara", cases[1].UserName)
	assert.Equal(t, model.StatusPendingReview, cases[0].Status)

	// The seed set was persisted.
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var persisted []model.FraudCase
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, cases, persisted)
}

func TestJSONStore_LoadSeedsEmptyCollection(t *testing.T) {
	ctx := context.Background()
	store, path := newTestJSONStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0600))

	cases, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, cases, 2)
}

func TestJSONStore_CorruptFileFallsBackWithoutRewrite(t *testing.T) {
	ctx := context.Background()
	store, path := newTestJSONStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	cases, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, cases, 2)

	// The corrupt file is preserved for inspection, not overwritten.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestJSONStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestJSONStore(t)

	cases, err := store.Load(ctx)
	require.NoError(t, err)

	cases[0].Status = model.StatusConfirmedFraud
	cases[0].OutcomeNote = "disputed in test"
	require.NoError(t, store.Save(ctx, cases))

	reloaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
	assert.Equal(t, cases[0].ID, reloaded[0].ID)
	assert.Equal(t, model.StatusConfirmedFraud, reloaded[0].Status)
	assert.Equal(t, "disputed in test", reloaded[0].OutcomeNote)
	assert.Equal(t, cases[1], reloaded[1])
}

func TestJSONStore_SaveValidatesCases(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestJSONStore(t)

	assert.Error(t, store.Save(ctx, nil))
	assert.Error(t, store.Save(ctx, []model.FraudCase{{UserName: "NoID"}}))
	assert.Error(t, store.Save(ctx, []model.FraudCase{{ID: "a"}, {ID: "a"}}))
}

func TestSeedCases_FreshIDs(t *testing.T) {
	first := SeedCases()
	second := SeedCases()

	require.Len(t, first, 2)
	assert.NotEqual(t, first[0].ID, second[0].ID)
	assert.NotEqual(t, first[0].ID, first[1].ID)

	// Everything except the ids is deterministic.
	assert.Equal(t, first[0].UserName, second[0].UserName)
	assert.Equal(t, first[0].SecurityAnswer, second[0].SecurityAnswer)
	assert.Equal(t, first[1].CardEnding, second[1].CardEnding)
}
