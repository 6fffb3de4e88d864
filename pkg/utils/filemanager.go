// =============================================================================
// Sales Analytics Report - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for report output:
//   - Directory management
//   - Report file naming
//   - Atomic artifact writes
//   - Retention cleanup of old reports
//
// NAMING:
//   report_<caller>_<suffix>_<YYYYMMDD_HHMMSS>.xlsx
//   comparison_report_<caller>_<YYYYMMDD_HHMMSS>.xlsx
//
// ATOMIC WRITES:
//   Artifacts are first written to a hidden, uniquely named file in the target
//   directory and renamed over the final name only after a successful flush.
//   A failed write never leaves a partial report behind.
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

// TimestampFormat is the layout of the timestamp embedded in report names.
const TimestampFormat = "20060102_150405"

// ReportExtension is the extension of every generated artifact.
const ReportExtension = ".xlsx"

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for generated reports.
type FileManager struct {
	// OutputDir is the directory where reports are placed.
	OutputDir string

	// Now returns the time embedded in report names.
	Now func() time.Time
}

// NewFileManager creates a new FileManager for the given output directory.
func NewFileManager(outputDir string) *FileManager {
	return &FileManager{
		OutputDir: outputDir,
		Now:       time.Now,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureOutputDir creates the output directory if it doesn't exist.
func (fm *FileManager) EnsureOutputDir() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// ReportPath returns the path of a period report.
//
// PARAMETERS:
//   - caller: The caller identifier embedded in the name.
//   - suffix: The period label ("single_report", "period_1", "period_2").
//
// EXAMPLE:
//   ReportPath("42", "period_1") -> "reports/report_42_period_1_20240115_143022.xlsx"
func (fm *FileManager) ReportPath(caller, suffix string) string {
	name := fmt.Sprintf("report_%s_%s_%s%s", sanitize(caller), suffix, fm.Now().Format(TimestampFormat), ReportExtension)
	return filepath.Join(fm.OutputDir, name)
}

// ComparisonPath returns the path of a period comparison report.
func (fm *FileManager) ComparisonPath(caller string) string {
	name := fmt.Sprintf("comparison_report_%s_%s%s", sanitize(caller), fm.Now().Format(TimestampFormat), ReportExtension)
	return filepath.Join(fm.OutputDir, name)
}

// sanitize keeps caller identifiers from escaping the output directory.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, s)
}

// =============================================================================
// ATOMIC WRITE
// =============================================================================

// WriteAtomic creates path by streaming write into a temporary sibling file
// and renaming it into place on success.
//
// PARAMETERS:
//   - path: The final artifact path.
//   - write: Produces the file contents.
//
// RETURNS:
//   - An error if any step fails; the temporary file is removed in that case.
func WriteAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, "."+uuid.NewString()+".part")

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = write(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err = file.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", filepath.Base(path), err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filepath.Base(path), err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}

	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// CleanOldReports removes report files older than maxAge from dir.
// Only files with ReportExtension are considered; subdirectories are ignored.
//
// RETURNS:
//   - The number of files removed.
//   - An error if cleaning fails.
func CleanOldReports(dir string, maxAge time.Duration, now time.Time) (int, error) {
	cutoff := now.Add(-maxAge)
	removed := 0

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read reports directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ReportExtension {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return removed, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return removed, fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
			}
			removed++
		}
	}

	return removed, nil
}
