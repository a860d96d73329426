package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EnsureDirectories(t *testing.T) {
	// given a manager pointing at directories that do not exist yet
	base := t.TempDir()
	fm := NewFileManager(filepath.Join(base, "out"), filepath.Join(base, "old"))

	// when ensuring directories
	err := fm.EnsureDirectories()

	// then both directories exist
	require.NoError(t, err)
	for _, dir := range []string{fm.OutputDir, fm.ArchiveDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func Test_ArchiveReport_MovesFileIntoArchive(t *testing.T) {
	// given a previous report in the output directory
	base := t.TempDir()
	fm := NewFileManager(base, filepath.Join(base, "archive"))
	reportPath := filepath.Join(base, "SalesResults.txt")
	require.NoError(t, os.WriteFile(reportPath, []byte("previous run\n"), 0644))

	// when archiving the report
	archivePath, err := fm.ArchiveReport(reportPath)

	// then the original is gone and the archived copy keeps the content
	require.NoError(t, err)
	assert.False(t, FileExists(reportPath))
	content, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	assert.Equal(t, "previous run\n", string(content))

	// and the archive name carries the original name and extension
	archiveName := filepath.Base(archivePath)
	assert.True(t, strings.HasPrefix(archiveName, "SalesResults_"))
	assert.True(t, strings.HasSuffix(archiveName, ".txt"))
	assert.Equal(t, fm.ArchiveDir, filepath.Dir(archivePath))
}

func Test_ArchiveReport_TimestampSubdirectories(t *testing.T) {
	// given date-based archive subdirectories
	base := t.TempDir()
	fm := NewFileManager(base, filepath.Join(base, "archive"))
	fm.UseTimestampSubdirs = true
	reportPath := filepath.Join(base, "SalesResults.txt")
	require.NoError(t, os.WriteFile(reportPath, []byte("previous run\n"), 0644))

	// when archiving the report
	archivePath, err := fm.ArchiveReport(reportPath)

	// then the archive path includes the current date
	require.NoError(t, err)
	now := time.Now()
	expectedDir := filepath.Join(
		fm.ArchiveDir,
		fmt.Sprintf("%d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		fmt.Sprintf("%02d", now.Day()),
	)
	assert.Equal(t, expectedDir, filepath.Dir(archivePath))
	assert.True(t, FileExists(archivePath))
}

func Test_ArchiveReport_MissingFile(t *testing.T) {
	// given no report to archive
	base := t.TempDir()
	fm := NewFileManager(base, filepath.Join(base, "archive"))

	// when archiving a path that does not exist
	_, err := fm.ArchiveReport(filepath.Join(base, "SalesResults.txt"))

	// then the failure is reported
	require.Error(t, err)
}

func Test_GenerateArchiveFileName_Placeholders(t *testing.T) {
	// given a format using the date and custom params
	name := GenerateArchiveFileName("{name}_{date}{ext}", map[string]string{
		"name": "SalesResults",
		"ext":  ".txt",
	})

	// then placeholders are replaced
	expected := fmt.Sprintf("SalesResults_%s.txt", time.Now().Format("20060102"))
	assert.Equal(t, expected, name)
}

func Test_GenerateArchiveFileName_UUIDIsValid(t *testing.T) {
	name := GenerateArchiveFileName("{uuid}", nil)

	assert.NoError(t, uuid.Validate(name))
}

func Test_GenerateArchiveFileName_UnknownPlaceholderLeftIntact(t *testing.T) {
	name := GenerateArchiveFileName("{name}_{unknown}", map[string]string{"name": "x"})

	assert.Equal(t, "x_{unknown}", name)
}

func Test_FileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	assert.True(t, FileExists(path))
}

func Test_GetFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0644))

	size, err := GetFileSize(path)

	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = GetFileSize(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
