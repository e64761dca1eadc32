package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiancaiamao/benchtrend"
)

func writeResult(t *testing.T, dir, name, body string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestArchive(t *testing.T) {
	from, to := t.TempDir(), filepath.Join(t.TempDir(), "data")
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	body := `{"Title":"IntSetBenchmarks","Benchmarks":[{"MethodTitle":"Add","Statistics":{"Mean":10}}]}`
	writeResult(t, from, "IntSetBenchmarks-report-brief.json", body, t1)
	writeResult(t, from, "broken.json", `{`, t1)

	copied, skipped, err := archive(from, to, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, copied)
	assert.Equal(t, 0, skipped)

	dst := filepath.Join(to, benchtrend.FileName(t1.Local(), "IntSetBenchmarks"))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))

	// A second run of the same results is a no-op.
	copied, skipped, err = archive(from, to, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, copied)
	assert.Equal(t, 1, skipped)

	// The archived copy charts at the original run date.
	final := benchtrend.LoadDataDir(to, nil)
	require.Len(t, final["Add"], 1)
	assert.True(t, final["Add"][0].Date.Equal(t1))
}

func TestArchiveCommand(t *testing.T) {
	from, to := t.TempDir(), t.TempDir()
	writeResult(t, from, "a.json", `{"Title":"A","Benchmarks":[]}`, time.Now())

	cmd := newCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--from", from, "--to", to})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Archived 1 result files into "+to+" (0 already present)\n", out.String())
}
