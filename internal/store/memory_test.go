package store

import (
	"testing"
)

// initMemoryTestDB hands each test a fresh in-memory store
func initMemoryTestDB(_ *testing.T) Store {
	return NewMemoryStore()
}

// cleanupMemoryTestDB is a no-op since every test gets its own store
func cleanupMemoryTestDB(_ *testing.T) {}

// TestMemoryStore runs all store tests against the in-memory implementation
func TestMemoryStore(t *testing.T) {
	RunStoreTests(t, initMemoryTestDB, cleanupMemoryTestDB)
}
