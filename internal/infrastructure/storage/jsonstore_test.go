package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Refs []string `json:"refs"`
}

func TestLoadAllInitializesMissingSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	col := NewCollection[record](path)

	records, err := col.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	// The empty snapshot must now exist on disk.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	col := NewCollection[record](filepath.Join(t.TempDir(), "records.json"))
	ctx := context.Background()

	in := []record{
		{ID: "a", Name: "first", Refs: []string{"x", "y"}},
		{ID: "b", Name: "second", Refs: []string{}},
	}
	require.NoError(t, col.SaveAll(ctx, in))

	out, err := col.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// saveAll(loadAll()) is structurally a no-op.
	require.NoError(t, col.SaveAll(ctx, out))
	again, err := col.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestLoadAllCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	col := NewCollection[record](path)

	_, err := col.LoadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestMutateAppliesChanges(t *testing.T) {
	col := NewCollection[record](filepath.Join(t.TempDir(), "records.json"))
	ctx := context.Background()

	require.NoError(t, col.SaveAll(ctx, []record{{ID: "a", Name: "first"}}))

	err := col.Mutate(ctx, func(records []record) ([]record, error) {
		return append(records, record{ID: "b", Name: "second"}), nil
	})
	require.NoError(t, err)

	records, err := col.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[1].ID)
}

func TestMutateErrorLeavesSnapshotUntouched(t *testing.T) {
	col := NewCollection[record](filepath.Join(t.TempDir(), "records.json"))
	ctx := context.Background()

	require.NoError(t, col.SaveAll(ctx, []record{{ID: "a"}}))

	sentinel := errors.New("nope")
	err := col.Mutate(ctx, func(records []record) ([]record, error) {
		return nil, sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	records, err := col.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].ID)
}
