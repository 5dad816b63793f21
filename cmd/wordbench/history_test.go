package main

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordbench/internal/benchmark"
	"wordbench/internal/db"
)

func setupHistoryTest(t *testing.T, store *mockStore) {
	t.Helper()

	origStore := newStoreFunc
	t.Cleanup(func() {
		newStoreFunc = origStore
		viper.Reset()
	})

	newStoreFunc = func(path string) (db.Store, error) { return store, nil }
	viper.Reset()
	viper.Set("history_db", "unused")
}

func TestHistoryCmd(t *testing.T) {
	store := &mockStore{
		runs: []db.Run{
			{ID: 2, Platform: benchmark.PlatformGolang, Version: "go1.25.0", RecordCount: 6,
				CreatedAt: time.Date(2026, 8, 24, 11, 0, 0, 0, time.UTC)},
			{ID: 1, Platform: benchmark.PlatformGolang, Version: "go1.25.0", RecordCount: 6,
				CreatedAt: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)},
		},
	}
	setupHistoryTest(t, store)

	out, err := executeCmd(newHistoryCmd())
	require.NoError(t, err)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "PLATFORM")
	assert.Contains(t, out, benchmark.PlatformGolang)
	assert.Contains(t, out, "2026-08-24 11:00:00")
	assert.True(t, store.closed)
}

func TestHistoryCmd_Empty(t *testing.T) {
	setupHistoryTest(t, &mockStore{})

	out, err := executeCmd(newHistoryCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "No stored runs.")
}

func TestHistoryCmd_Limit(t *testing.T) {
	store := &mockStore{
		runs: []db.Run{
			{ID: 3, Platform: benchmark.PlatformGolang},
			{ID: 2, Platform: benchmark.PlatformGolang},
			{ID: 1, Platform: benchmark.PlatformGolang},
		},
	}
	setupHistoryTest(t, store)

	out, err := executeCmd(newHistoryCmd(), "--limit", "2")
	require.NoError(t, err)

	// header plus two data rows
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
}
