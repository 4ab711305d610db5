package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Tree(t *testing.T) {
	root := newRootCommand()

	for _, path := range [][]string{
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "status"},
		{"codes", "sweep"},
	} {
		cmd, rest, err := root.Find(path)
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, path[len(path)-1], cmd.Name())
		assert.NotNil(t, cmd.RunE)
	}
}

func TestPrintStatus(t *testing.T) {
	applied := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	statuses := []*goose.MigrationStatus{
		{Source: &goose.Source{Path: "00001_init.sql", Version: 1}, State: goose.StateApplied, AppliedAt: applied},
		{Source: &goose.Source{Path: "00002_products.sql", Version: 2}, State: goose.StatePending},
	}

	var buf bytes.Buffer
	require.NoError(t, printStatus(&buf, statuses))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[1]), "2026-03-01T12:00:00Z")
	assert.Contains(t, string(lines[1]), "00001_init.sql")
	assert.Contains(t, string(lines[2]), "pending")
	assert.Contains(t, string(lines[2]), "-")
}
