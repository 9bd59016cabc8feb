package utils

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// SafeWriteFile writes data to a temp file and atomically renames it into place.
func SafeWriteFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// QuizFileName builds the export file name for a generated quiz:
// quiz_<chapter>_<timestamp>.txt with the chapter sanitized for filesystems.
func QuizFileName(chapter string, t time.Time) string {
	return fmt.Sprintf("quiz_%s_%s.txt", SanitizeName(chapter), t.Format("2006-01-02_150405"))
}

// SanitizeName replaces characters that are unsafe in file names.
func SanitizeName(s string) string {
	mapper := func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}
	out := strings.Map(mapper, strings.TrimSpace(s))
	if out == "" {
		return "untitled"
	}
	return out
}
