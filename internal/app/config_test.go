package app_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"depot/internal/app"
	"depot/internal/domain"
)

func TestConfigFromEnv_Default(t *testing.T) {
	cfg, err := app.ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
}

func TestConfigFromEnv_Override(t *testing.T) {
	t.Setenv("DEPOT_DATA_DIR", "/tmp/elsewhere")

	cfg, err := app.ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", cfg.DataDir)
}

func TestNew_WiresStoresUnderDataDir(t *testing.T) {
	root := t.TempDir()

	a, err := app.New(app.Config{DataDir: root}, zap.NewNop())
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(root, "FileStore", "Employee"))
	assert.DirExists(t, filepath.Join(root, "FileStore", "RemoteEmployee"))

	// The narrowed writer feeds the employee store.
	karen := domain.RemoteEmployee{Employee: domain.Employee{Name: "Karen"}, Country: "Usa"}
	require.NoError(t, a.RemoteWriter.Insert(karen))

	got, err := a.Employees.Get("Karen")
	require.NoError(t, err)
	assert.Equal(t, domain.Employee{Name: "Karen"}, got)
}
