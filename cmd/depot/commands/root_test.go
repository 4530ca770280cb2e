package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	logger = zap.NewNop()

	root := newRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestDemo_OverwriteAndWidenedListing(t *testing.T) {
	out := runCLI(t, "demo", "--data", t.TempDir())

	// Karen was inserted twice under one id; exactly one record remains and
	// it reflects the second (plain employee) insert.
	assert.Equal(t, 1, strings.Count(out, "Karen"))
	assert.Contains(t, out, `{"name":"Karen"}`)
	assert.Contains(t, out, "3 record(s).")

	// The remote store's listing, widened to plain employees.
	assert.Contains(t, out, `{"name":"Priya"}`)
	assert.NotContains(t, out, "India")
}

func TestInsertGetList(t *testing.T) {
	dir := t.TempDir()

	out := runCLI(t, "insert", "Karen", "--country", "Usa", "--data", dir)
	assert.Contains(t, out, `Inserted "Karen".`)

	out = runCLI(t, "get", "Karen", "--data", dir)
	assert.Contains(t, out, `{"name":"Karen"}`)

	out = runCLI(t, "list", "--data", dir)
	assert.Contains(t, out, "1 record(s).")
}

func TestInsert_GeneratesNameWhenMissing(t *testing.T) {
	out := runCLI(t, "insert", "--data", t.TempDir())
	assert.Contains(t, out, "Inserted")
}

func TestGet_MissingID(t *testing.T) {
	logger = zap.NewNop()

	root := newRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"get", "nobody", "--data", t.TempDir()})
	require.Error(t, root.Execute())
}
