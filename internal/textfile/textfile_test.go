package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadTextVerbatim(t *testing.T) {
	want := "  Line one\n\nLine two with trailing space \n"
	path := writeFixture(t, "input.txt", []byte(want))

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != want {
		t.Fatalf("content altered: got %q want %q", got, want)
	}
}

func TestReadRejectsBinary(t *testing.T) {
	path := writeFixture(t, "blob.txt", []byte{0xff, 0xfe, 0x00, 0x81})
	if _, err := Read(path); !errors.Is(err, ErrNotText) {
		t.Fatalf("expected ErrNotText, got %v", err)
	}
}

func TestReadRejectsUnsupportedExtension(t *testing.T) {
	path := writeFixture(t, "image.png", []byte("png"))
	if _, err := Read(path); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if _, err := Read("   "); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported for blank path, got %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadCorruptPDF(t *testing.T) {
	path := writeFixture(t, "broken.pdf", []byte("%PDF-1.4\nnot really a pdf"))
	if _, err := Read(path); err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}
