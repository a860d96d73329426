// =============================================================================
// Sales Cost Computation - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for report artifacts:
//   - Directory management
//   - Report archival (moving previous reports aside before a new run)
//   - Archive file naming
//
// ARCHIVAL STRATEGY:
//   - Before a run overwrites SalesResults.txt, the previous report can be
//     moved into the archive directory under a unique name.
//   - Archival is opt-in; by default previous reports are overwritten.
//   - A failed run leaves existing reports untouched.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultArchiveNameFormat is the template used for archived report names.
// "SalesResults.txt" becomes e.g.
// "SalesResults_20240115_143022_a1b2c3d4-e5f6-7890-abcd-ef1234567890.txt".
const DefaultArchiveNameFormat = "{name}_{timestamp}_{uuid}{ext}"

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for report artifacts.
type FileManager struct {
	// OutputDir is the directory where report artifacts are written.
	OutputDir string

	// ArchiveDir is the directory for archived report artifacts.
	ArchiveDir string

	// UseTimestampSubdirs creates date-based subdirectories in the archive.
	// Example: archive/2024/01/15/SalesResults_...txt
	UseTimestampSubdirs bool
}

// NewFileManager creates a new FileManager with the specified directories.
func NewFileManager(outputDir, archiveDir string) *FileManager {
	return &FileManager{
		OutputDir:           outputDir,
		ArchiveDir:          archiveDir,
		UseTimestampSubdirs: false,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates all required directories if they don't exist.
//
// RETURNS:
//   - An error if any directory cannot be created.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		fm.OutputDir,
		fm.ArchiveDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// REPORT ARCHIVAL
// =============================================================================

// ArchiveReport moves a report file into the archive directory under a
// unique name, making room for the next run's report.
//
// PARAMETERS:
//   - filePath: The path to the report to archive.
//
// RETURNS:
//   - The path to the archived file.
//   - An error if archival fails.
func (fm *FileManager) ArchiveReport(filePath string) (string, error) {
	fileName := filepath.Base(filePath)
	ext := filepath.Ext(fileName)
	name := strings.TrimSuffix(fileName, ext)

	archiveName := GenerateArchiveFileName(DefaultArchiveNameFormat, map[string]string{
		"name": name,
		"ext":  ext,
	})
	archivePath := fm.getArchivePath(archiveName)

	// Ensure the archive directory exists.
	archiveDir := filepath.Dir(archivePath)
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Move the file.
	if err := os.Rename(filePath, archivePath); err != nil {
		// If rename fails (e.g., cross-device), try copy and delete.
		if err := copyFile(filePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy file to archive: %w", err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("failed to remove original file: %w", err)
		}
	}

	return archivePath, nil
}

// getArchivePath constructs the archive path for a file name.
func (fm *FileManager) getArchivePath(fileName string) string {
	if fm.UseTimestampSubdirs {
		// Create date-based subdirectory structure.
		now := time.Now()
		subDir := filepath.Join(
			fm.ArchiveDir,
			fmt.Sprintf("%d", now.Year()),
			fmt.Sprintf("%02d", now.Month()),
			fmt.Sprintf("%02d", now.Day()),
		)
		return filepath.Join(subDir, fileName)
	}

	return filepath.Join(fm.ArchiveDir, fileName)
}

// =============================================================================
// ARCHIVE FILE NAMING
// =============================================================================

// GenerateArchiveFileName generates a unique archive file name.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//               {time}      - Current time (HHMMSS)
//               {name}      - Original file name (without extension)
//               {ext}       - Original file extension (with leading dot)
//   - params: A map of placeholder values.
//
// RETURNS:
//   - The generated file name.
//
// EXAMPLE:
//   format: "{name}_{date}_{uuid}{ext}"
//   params: {"name": "SalesResults", "ext": ".txt"}
//   output: "SalesResults_20240115_a1b2c3d4-e5f6-7890-abcd-ef1234567890.txt"
func GenerateArchiveFileName(format string, params map[string]string) string {
	now := time.Now()

	// Generate UUID.
	id := uuid.New().String()

	// Build replacements.
	replacements := map[string]string{
		"{uuid}":      id,
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}

	// Add custom params.
	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	// Apply replacements.
	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	return result
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return err
	}

	return destFile.Sync()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
