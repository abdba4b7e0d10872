// Package document loads quiz source material from disk. The generation
// core only ever sees already-decoded text; this package is the boundary
// where file formats are accepted or refused.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MaxSize caps source documents. The pipeline is tuned for documents of
// tens of kilobytes; anything past this is almost certainly not study
// notes.
const MaxSize = 2 << 20 // 2 MiB

var (
	// ErrPDF is returned for .pdf paths: PDF text extraction is an
	// external concern, the wizard only consumes plain text.
	ErrPDF = errors.New("PDF files are not supported: extract the text to a .txt file first")

	// ErrBinary is returned when the file content does not look like text.
	ErrBinary = errors.New("file does not contain readable text")

	// ErrEmpty is returned for files with no usable content.
	ErrEmpty = errors.New("file is empty")
)

// Load reads a plain-text document and returns its content.
func Load(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", ErrPDF
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("open document: %s is a directory", path)
	}
	if info.Size() > MaxSize {
		return "", fmt.Errorf("document too large: %d bytes (limit %d)", info.Size(), MaxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return "", ErrBinary
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}
