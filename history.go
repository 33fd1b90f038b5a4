package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultHistoryFile is the log name, relative to the working directory
const DefaultHistoryFile = "bmi_history.txt"

const timestampLayout = "2006-01-02 15:04:05"

// HistoryStore appends saved results to a single plain-text log.
// Every call opens, uses and closes the file before returning; there is
// no locking, so concurrent instances race and the last writer wins.
type HistoryStore struct {
	path string
}

// NewHistoryStore creates a store backed by the file at path
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

// Path returns the log file location
func (h *HistoryStore) Path() string {
	return h.path
}

// ensureHistoryDir creates the log's parent directory if it doesn't exist
func ensureHistoryDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// Append writes one entry block to the end of the log, creating it if
// absent, and returns the full updated log.
func (h *HistoryStore) Append(entry Entry) (string, error) {
	if err := ensureHistoryDir(h.path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if _, err := file.WriteString(FormatEntry(entry)); err != nil {
		file.Close()
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return h.ReadAll()
}

// ReadAll returns the whole log, or "" if nothing has been saved yet
func (h *HistoryStore) ReadAll() (string, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	return string(data), nil
}

// Clear deletes the log. A log that does not exist is already clear.
func (h *HistoryStore) Clear() error {
	err := os.Remove(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	return nil
}

// Stat reports whether the log exists and its size in bytes
func (h *HistoryStore) Stat() (exists bool, size int64, err error) {
	info, err := os.Stat(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, 0, nil
		}
		return false, 0, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	return true, info.Size(), nil
}

// FormatEntry serializes an entry as its five lines plus a blank separator
func FormatEntry(entry Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s\n", entry.Timestamp.In(time.Local).Format(timestampLayout))
	fmt.Fprintf(&b, "Weight: %s kg\n", formatMeasurement(entry.WeightKg))
	fmt.Fprintf(&b, "Height: %s cm\n", formatMeasurement(entry.HeightCm))
	fmt.Fprintf(&b, "BMI: %.2f\n", entry.BMI)
	fmt.Fprintf(&b, "Category: %s\n\n", entry.Category)

	return b.String()
}

// CountEntries counts the entry blocks in a log
func CountEntries(log string) int {
	count := 0
	for _, line := range strings.Split(log, "\n") {
		if strings.HasPrefix(line, "Date: ") {
			count++
		}
	}
	return count
}

// formatMeasurement prints the shortest exact decimal, keeping ".0" on
// whole numbers so 70 is logged as "70.0".
func formatMeasurement(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
