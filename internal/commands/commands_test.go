package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrgen-dev/afrgen/internal/mapping"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeTrialBalance(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "tb.csv")
	contents := "1990011100000000000,5000,0,0\n" +
		"1990021100000000000,-3000,0,0\n" +
		"1990039000000000000,-2000,0,0\n" +
		"1990057000000000000,-1000,0,0\n" +
		"1991161000000000000,1000,0,0\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestClassifyCommand(t *testing.T) {
	out, err := runCommand(t, "classify", "1990011100000000000")
	require.NoError(t, err)
	assert.Contains(t, out, "tea=Assets")
	assert.Contains(t, out, "gasb=current_assets")
	assert.Contains(t, out, "fund_category=general_fund")
}

func TestClassifyCommandRejectsShortCode(t *testing.T) {
	_, err := runCommand(t, "classify", "1990")
	assert.Error(t, err)
}

func TestAutomapThenValidate(t *testing.T) {
	dir := t.TempDir()
	tb := writeTrialBalance(t, dir)

	out, err := runCommand(t, "automap", tb, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Mapped 5 accounts")

	store, err := mapping.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 5, store.Len())

	out, err = runCommand(t, "validate", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Mapping is valid")
}

func TestAutomapPreservesExistingEntries(t *testing.T) {
	dir := t.TempDir()
	tb := writeTrialBalance(t, dir)

	_, err := runCommand(t, "automap", tb, "--dir", dir)
	require.NoError(t, err)

	store, err := mapping.Load(dir)
	require.NoError(t, err)
	entry, ok := store.Get("1990011100000000000")
	require.True(t, ok)
	entry.Notes = "manual note"
	store.Put(entry)
	require.NoError(t, store.Save(dir))

	out, err := runCommand(t, "automap", tb, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Mapped 0 accounts")

	store, err = mapping.Load(dir)
	require.NoError(t, err)
	entry, _ = store.Get("1990011100000000000")
	assert.Equal(t, "manual note", entry.Notes)
}

func TestValidateWithoutMappings(t *testing.T) {
	_, err := runCommand(t, "validate", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no mappings")
}

func TestGenerateCommandWritesJSON(t *testing.T) {
	dir := t.TempDir()
	tb := writeTrialBalance(t, dir)
	_, err := runCommand(t, "automap", tb, "--dir", dir)
	require.NoError(t, err)

	outPath := filepath.Join(dir, "statements.json")
	out, err := runCommand(t, "generate", tb, "--dir", dir, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "STATEMENT OF NET POSITION")
	assert.Contains(t, string(data), "cash_and_cash_equivalents")
}

func TestAuditCommandWritesCSV(t *testing.T) {
	dir := t.TempDir()
	tb := writeTrialBalance(t, dir)
	_, err := runCommand(t, "automap", tb, "--dir", dir)
	require.NoError(t, err)

	outPath := filepath.Join(dir, "audit.csv")
	out, err := runCommand(t, "audit", tb, "--dir", dir, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Records: 5 (5 mapped, 0 unmapped)")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "account_code,current_year_actual")
}

func TestExportCommandWritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	tb := writeTrialBalance(t, dir)
	_, err := runCommand(t, "automap", tb, "--dir", dir)
	require.NoError(t, err)

	outPath := filepath.Join(dir, "statements.xlsx")
	_, err = runCommand(t, "export", tb, "--dir", dir, "--out", outPath)
	require.NoError(t, err)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateWithoutMappings(t *testing.T) {
	dir := t.TempDir()
	tb := writeTrialBalance(t, dir)
	_, err := runCommand(t, "generate", tb, "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no mappings")
}
