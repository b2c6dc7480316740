// Package fs provides file-based persistence for scraped course documents.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/coursedump"
)

// Slugify converts a course title to a filesystem-safe file name.
// Example: "Practical Go: From Zero!" → practical-go-from-zero
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Ensure Writer implements coursedump.DocumentWriter at compile time.
var _ coursedump.DocumentWriter = (*Writer)(nil)

// Writer writes result documents as JSON files to a directory. Writes are
// atomic: the document lands under a temporary name and is renamed into
// place, so a crash mid-write never leaves a truncated file behind.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes the document to disk and returns the path it was
// written to. The file name is derived from the course title.
func (w *Writer) WriteDocument(ctx context.Context, doc *coursedump.ResultDocument) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	slug := Slugify(doc.CourseTitle)
	if slug == "" {
		slug = "course"
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')

	fullPath := filepath.Join(w.baseDir, slug+".json")

	tmp, err := os.CreateTemp(w.baseDir, slug+".*.tmp")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return fullPath, nil
}
