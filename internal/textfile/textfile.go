package textfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNotText is returned when a file's contents cannot be used as text.
	ErrNotText = errors.New("file does not contain text")
	// ErrUnsupported is returned for extensions other than .txt and .pdf.
	ErrUnsupported = errors.New("unsupported file type")
)

var extraneousWhitespace = regexp.MustCompile(`[ \t]+`)

// Read loads path as summary input. Text files are returned verbatim; PDFs
// are flattened to plain text.
func Read(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsupported)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md":
		return readPlain(path)
	case ".pdf":
		return readPDF(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
}

func readPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrNotText, filepath.Base(path))
	}
	return string(data), nil
}

func readPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var builder strings.Builder
	if _, err := io.Copy(&builder, content); err != nil {
		return "", err
	}

	text := strings.TrimSpace(extraneousWhitespace.ReplaceAllString(builder.String(), " "))
	if text == "" {
		return "", fmt.Errorf("%w: %s has no extractable text", ErrNotText, filepath.Base(path))
	}
	return text, nil
}
