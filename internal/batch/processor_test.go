package batch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/issuance-dash/internal/batch"
	"storeops/issuance-dash/internal/loader"
	"storeops/issuance-dash/internal/logging"
)

const exportHeader = "Issue Date,DEPARTMENT,Description,Issued Qty,Issued Value\n"

func writeExport(t *testing.T, dir, name, rows string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(exportHeader+rows), 0600))
	return path
}

func newProcessor(logger logging.Logger) *batch.Processor {
	return batch.NewProcessor(loader.New(logger, ',', ""), logger)
}

func TestProcessDir_MergesInNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "week2.csv", "12/03/2024,Production,Bearing 6204,2,80\n")
	writeExport(t, dir, "week1.csv", "05/03/2024,Maintenance,Hex Bolt 10MM,4,120.50\n")

	result, err := newProcessor(&logging.MockLogger{}).ProcessDir(dir)

	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "Maintenance", result.Records[0]["DEPARTMENT"], "week1 rows come first")
	assert.Equal(t, "Production", result.Records[1]["DEPARTMENT"])
	assert.Equal(t, "week1.csv+week2.csv", result.SourceLabel())
	assert.Empty(t, result.Failed)
}

func TestProcessDir_EmptyDir(t *testing.T) {
	_, err := newProcessor(&logging.MockLogger{}).ProcessDir(t.TempDir())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no issuance exports")
}

func TestProcessDir_MissingDir(t *testing.T) {
	_, err := newProcessor(&logging.MockLogger{}).ProcessDir(filepath.Join(t.TempDir(), "missing"))

	assert.Error(t, err)
}

func TestMergeFiles_SkipsUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	good := writeExport(t, dir, "good.csv", "05/03/2024,Maintenance,Hex Bolt 10MM,4,120.50\n")
	// Header-only files load with zero records, which the loader rejects
	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte(exportHeader), 0600))

	logger := &logging.MockLogger{}
	result, err := newProcessor(logger).MergeFiles([]string{bad, good})

	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, []string{good}, result.SourceFiles)
	assert.Equal(t, []string{bad}, result.Failed)
	assert.NotEmpty(t, logger.EntriesByLevel("ERROR"))
}

func TestMergeFiles_AllFail(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte(exportHeader), 0600))

	_, err := newProcessor(&logging.MockLogger{}).MergeFiles([]string{bad})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could be loaded")
}

func TestMergeFiles_WarnsOnOverlap(t *testing.T) {
	dir := t.TempDir()
	row := "05/03/2024,Maintenance,Hex Bolt 10MM,4,120.50\n"
	a := writeExport(t, dir, "a.csv", row)
	b := writeExport(t, dir, "b.csv", row)

	logger := &logging.MockLogger{}
	result, err := newProcessor(logger).MergeFiles([]string{a, b})

	require.NoError(t, err)
	assert.Len(t, result.Records, 2, "overlapping rows are kept")
	assert.True(t, logger.HasEntry("WARN", "Repeated rows found across merged exports"))
}
