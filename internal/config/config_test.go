package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempConfig writes a YAML config file into a temp directory and
// returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func Test_LoadMainConfig_MissingFileYieldsDefaults(t *testing.T) {
	// given a config path that does not exist
	path := filepath.Join(t.TempDir(), "config.yaml")

	// when loading the configuration
	config, err := LoadMainConfig(path)

	// then defaults apply and no error is reported
	require.NoError(t, err)
	assert.Equal(t, ".", config.OutputDir)
	assert.Equal(t, "SalesResults.txt", config.ReportFile)
	assert.False(t, config.XLSXReport)
	assert.Equal(t, "SalesResults.xlsx", config.XLSXFile)
	assert.False(t, config.ArchivePrevious)
	assert.Equal(t, "./archive", config.ArchiveDir)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "console", config.LogFormat)
	assert.Equal(t, "", config.LogFile)
	assert.Equal(t, 4, config.MaxConcurrency)
}

func Test_LoadMainConfig_PartialFileKeepsRemainingDefaults(t *testing.T) {
	// given a config file that only overrides two settings
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "output_dir: " + dir + "\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// when loading the configuration
	config, err := LoadMainConfig(path)

	// then the overrides are honored and everything else is defaulted
	require.NoError(t, err)
	assert.Equal(t, dir, config.OutputDir)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "SalesResults.txt", config.ReportFile)
	assert.Equal(t, "console", config.LogFormat)
	assert.Equal(t, 4, config.MaxConcurrency)
}

func Test_LoadMainConfig_FullFile(t *testing.T) {
	// given a config file overriding every setting
	dir := t.TempDir()
	outputDir := filepath.Join(dir, "out")
	archiveDir := filepath.Join(dir, "old")
	content := "output_dir: " + outputDir + "\n" +
		"report_file: resultados.txt\n" +
		"xlsx_report: true\n" +
		"xlsx_file: resultados.xlsx\n" +
		"archive_previous: true\n" +
		"archive_dir: " + archiveDir + "\n" +
		"log_level: warn\n" +
		"log_format: json\n" +
		"log_file: " + filepath.Join(dir, "diag.log") + "\n" +
		"max_concurrency: 2\n"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// when loading the configuration
	config, err := LoadMainConfig(path)

	// then every value comes from the file
	require.NoError(t, err)
	assert.Equal(t, outputDir, config.OutputDir)
	assert.Equal(t, "resultados.txt", config.ReportFile)
	assert.True(t, config.XLSXReport)
	assert.Equal(t, "resultados.xlsx", config.XLSXFile)
	assert.True(t, config.ArchivePrevious)
	assert.Equal(t, archiveDir, config.ArchiveDir)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, filepath.Join(dir, "diag.log"), config.LogFile)
	assert.Equal(t, 2, config.MaxConcurrency)
}

func Test_LoadMainConfig_MalformedYAML(t *testing.T) {
	// given a file that is not valid YAML
	path := writeTempConfig(t, "output_dir: [unbalanced")

	// when loading the configuration
	config, err := LoadMainConfig(path)

	// then the parse failure is reported
	require.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func Test_LoadMainConfig_CreatesOutputDirectory(t *testing.T) {
	// given a config pointing at an output directory that does not exist yet
	dir := t.TempDir()
	outputDir := filepath.Join(dir, "reports", "daily")
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: "+outputDir+"\n"), 0644))

	// when loading the configuration
	_, err := LoadMainConfig(path)

	// then the directory has been created
	require.NoError(t, err)
	info, err := os.Stat(outputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func Test_LoadMainConfig_ArchiveDirectoryOnlyWhenEnabled(t *testing.T) {
	// given archival disabled and a custom archive directory
	dir := t.TempDir()
	archiveDir := filepath.Join(dir, "old-reports")
	content := "output_dir: " + dir + "\narchive_dir: " + archiveDir + "\n"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// when loading the configuration
	_, err := LoadMainConfig(path)

	// then the archive directory is not created
	require.NoError(t, err)
	_, statErr := os.Stat(archiveDir)
	assert.True(t, os.IsNotExist(statErr))

	// and when archival is enabled
	content = "output_dir: " + dir + "\narchive_previous: true\narchive_dir: " + archiveDir + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	_, err = LoadMainConfig(path)

	// then the archive directory exists
	require.NoError(t, err)
	info, err := os.Stat(archiveDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func Test_LoadMainConfig_RejectsNegativeConcurrency(t *testing.T) {
	// given a config with a nonsensical concurrency limit
	path := writeTempConfig(t, "max_concurrency: -3\n")

	// when loading the configuration
	config, err := LoadMainConfig(path)

	// then the validation failure is reported
	require.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "max_concurrency must be at least 1")
}
