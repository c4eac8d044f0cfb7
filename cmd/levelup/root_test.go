package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/levelup/pkg/seed"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func storeArgs(t *testing.T) []string {
	return []string{"--backend", "bbolt", "--store", filepath.Join(t.TempDir(), "data", "levelup.db")}
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "generate")
	assert.Contains(t, out, "inject")
}

func TestFamilies(t *testing.T) {
	out, err := run(t, "", "families")
	require.NoError(t, err)
	for _, name := range seed.List() {
		assert.Contains(t, out, name)
	}
}

func TestGenerateFamily(t *testing.T) {
	out, err := run(t, "", "generate", "--family", "receipt", "--count", "3", "--date", "2026-02-01")
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	assert.Len(t, docs, 3)
	for _, d := range docs {
		assert.Equal(t, "2026-02-01", d["date"])
	}

	_, err = run(t, "", "generate", "--family", "unicorn")
	assert.ErrorIs(t, err, seed.ErrUnknownFamily)
}

func TestGenerateSnapshotIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")
	_, err := run(t, "", "--seed", "7", "generate", "--receipts", "4", "--out", a)
	require.NoError(t, err)
	_, err = run(t, "", "--seed", "7", "generate", "--receipts", "4", "--out", b)
	require.NoError(t, err)

	read := func(path string) *seed.Snapshot {
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		s, err := seed.ReadSnapshot(f)
		require.NoError(t, err)
		return s
	}
	sa, sb := read(a), read(b)
	assert.Equal(t, int32(7), sa.Seed)
	assert.Len(t, sa.Dataset.Receipts, 4)
	assert.Equal(t, sa.Dataset, sb.Dataset)
	assert.NotEqual(t, sa.RunID, sb.RunID)
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	_, err := run(t, "", "generate", "--skip-rate", "2")
	assert.ErrorIs(t, err, seed.ErrInvalidOptions)

	opts := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, os.WriteFile(opts, []byte("startDate: 15-01-2026\n"), 0o600))
	_, err = run(t, "", "generate", "--options", opts)
	assert.ErrorIs(t, err, seed.ErrInvalidOptions)
}

func TestInjectSummaryAppendClear(t *testing.T) {
	st := storeArgs(t)

	out, err := run(t, "", append(st, "inject", "--yes", "--metrics")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Injected 193 documents")
	assert.Contains(t, out, `levelup_inject_documents_written_total{family="workouts",mode="overwrite"} 27`)

	out, err = run(t, "", append(st, "summary")...)
	require.NoError(t, err)
	assert.Contains(t, out, "27 days, 460,785 total volume")
	assert.Contains(t, out, "8 weeks, 24 games, avg 161")

	out, err = run(t, "", append(st, "append")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Appended 0 documents")

	out, err = run(t, "n\n", append(st, "clear")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	out, err = run(t, "yes\n", append(st, "clear")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed ")

	out, err = run(t, "", append(st, "summary")...)
	require.NoError(t, err)
	assert.Contains(t, out, "0 days, 0 total volume")
}

func TestInjectFromSnapshot(t *testing.T) {
	snap := filepath.Join(t.TempDir(), "snap.json")
	_, err := run(t, "", "generate", "--workout-days", "5", "--out", snap)
	require.NoError(t, err)

	st := storeArgs(t)
	out, err := run(t, "y\n", append(st, "inject", "--snapshot", snap)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Injected ")

	out, err = run(t, "", append(st, "summary")...)
	require.NoError(t, err)
	assert.Contains(t, out, "5 days")
}

func TestInjectDeclined(t *testing.T) {
	out, err := run(t, "", append(storeArgs(t), "inject")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
}

func TestUnknownBackend(t *testing.T) {
	_, err := run(t, "", "--backend", "redis", "summary")
	assert.Error(t, err)
}

func TestSuitesPass(t *testing.T) {
	out, err := run(t, "", "test")
	require.NoError(t, err, out)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "0 failed")
}
