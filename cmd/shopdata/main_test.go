package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"shopdata/pkg/logger"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeApp(t, args...)
	return out, err
}

func executeApp(t *testing.T, args ...string) (string, *app, error) {
	t.Helper()
	var out bytes.Buffer
	root, a := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), a, err
}

func testEnv(t *testing.T) (dataDir, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SEED_CUSTOMERS", "20")
	t.Setenv("SEED_PRODUCTS", "30")
	t.Setenv("SEED_ORDERS", "60")
	return filepath.Join(dir, "data"), filepath.Join(dir, "shop.db")
}

func TestSetup_EndToEnd(t *testing.T) {
	dataDir, dbPath := testEnv(t)
	xlsxPath := filepath.Join(t.TempDir(), "reports.xlsx")

	out, err := execute(t, "setup", "--data-dir", dataDir, "--sqlite-path", dbPath, "--seed", "42", "--xlsx", xlsxPath)
	require.NoError(t, err, out)

	assert.Contains(t, out, "Seeded 20 customers, 30 products, 60 orders")
	assert.Contains(t, out, "All integrity checks passed.")
	assert.Contains(t, out, "Customer Purchase Analysis Report (Top 20)")
	assert.Contains(t, out, "Category Performance Analysis")
	assert.Contains(t, out, "Wrote 3 reports to "+xlsxPath)
	assert.FileExists(t, xlsxPath)

	out, err = execute(t, "verify", "--sqlite-path", dbPath, "--data-dir", dataDir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "orders:      60")
}

func TestSeed_RefusesToOverwrite(t *testing.T) {
	dataDir, _ := testEnv(t)

	_, err := execute(t, "seed", "--data-dir", dataDir)
	require.NoError(t, err)

	_, err = execute(t, "seed", "--data-dir", dataDir)
	assert.ErrorContains(t, err, "--force")

	_, err = execute(t, "seed", "--data-dir", dataDir, "--force")
	assert.NoError(t, err)
}

func TestGenerate_WithoutSeed(t *testing.T) {
	dataDir, _ := testEnv(t)

	_, err := execute(t, "generate", "--data-dir", dataDir)
	assert.Error(t, err)
}

func TestReport_UnknownName(t *testing.T) {
	dataDir, dbPath := testEnv(t)

	_, err := execute(t, "setup", "--data-dir", dataDir, "--sqlite-path", dbPath, "--seed", "1")
	require.NoError(t, err)

	_, err = execute(t, "report", "--sqlite-path", dbPath, "--name", "top-suppliers")
	assert.ErrorContains(t, err, "unknown report")
}

func TestInvalidStoreFlag(t *testing.T) {
	testEnv(t)
	_, err := execute(t, "verify", "--store", "mysql")
	assert.Error(t, err)
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLog   bool
		wantPrint string
	}{
		{name: "after init goes to the logger", args: []string{"generate"}, wantLog: true},
		{name: "before init goes to the writer", args: []string{"verify", "--store", "mysql"}, wantPrint: "error: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataDir, _ := testEnv(t)
			_, a, err := executeApp(t, append(tt.args, "--data-dir", dataDir)...)
			require.Error(t, err)
			require.Equal(t, tt.wantLog, a.log != nil)

			core, logs := observer.New(zapcore.ErrorLevel)
			if tt.wantLog {
				a.log = logger.NewZapFromCore(core)
			}
			var stderr bytes.Buffer
			a.reportError(&stderr, err)

			if tt.wantLog {
				require.Equal(t, 1, logs.Len())
				entry := logs.All()[0]
				assert.Equal(t, "command failed", entry.Message)
				assert.Equal(t, err.Error(), entry.ContextMap()["error"])
				assert.Empty(t, stderr.String())
				return
			}
			assert.Zero(t, logs.Len())
			assert.Contains(t, stderr.String(), tt.wantPrint+err.Error())
		})
	}
}
