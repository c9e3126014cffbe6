// Package storage implements the record store: a durable mapping from a
// snapshot file to a whole collection of records. One Collection per entity
// kind, one JSON document per collection, rewritten in full on every save.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrStorageUnavailable signals that the snapshot file exists but cannot
// be read, parsed or rewritten. Never retried; surfaced to the caller.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Collection is a JSON-file backed collection of records of one kind.
//
// Mutations follow a full read-modify-write cycle: load everything,
// mutate in memory, overwrite the snapshot. The embedded lock is the
// per-collection single-writer gate: at most one mutation cycle runs at
// a time, reads may run concurrently with each other.
type Collection[T any] struct {
	path string
	mu   sync.RWMutex
}

func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// LoadAll returns the full contents of the collection. A missing
// snapshot file is initialized to an empty collection rather than
// treated as an error.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.read()
}

// SaveAll overwrites the snapshot with the given records.
func (c *Collection[T]) SaveAll(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.write(records)
}

// Mutate runs one read-modify-write cycle under the collection lock.
// fn receives the loaded records and returns the records to persist;
// returning an error aborts the cycle without touching the snapshot.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return c.write(updated)
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		// First access: initialize an empty durable snapshot.
		if err := c.write([]T{}); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, c.path, err)
	}

	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStorageUnavailable, c.path, err)
	}
	if records == nil {
		records = []T{}
	}

	return records, nil
}

// write serializes the records with indentation so the snapshot stays
// human-inspectable, then swaps it in with a rename. Atomicity holds at
// single-save granularity only; there is no multi-collection transaction.
func (c *Collection[T]) write(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStorageUnavailable, c.path, err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrStorageUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, c.path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, c.path, err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, c.path, err)
	}

	return nil
}
