package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPlainText(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("  Photosynthesis converts sunlight.  \n"))
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := "Photosynthesis converts sunlight."
	if got != want {
		t.Errorf("Load() = %q, want trimmed %q", got, want)
	}
}

func TestLoadRejectsPDF(t *testing.T) {
	for _, name := range []string{"doc.pdf", "DOC.PDF"} {
		if _, err := Load(name); !errors.Is(err, ErrPDF) {
			t.Errorf("Load(%q) error = %v, want ErrPDF", name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Load() ignored a missing file")
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load() accepted a directory")
	}
}

func TestLoadRejectsBinary(t *testing.T) {
	path := writeFile(t, "blob.bin", []byte{0x00, 0x01, 0x02, 0xFF})
	if _, err := Load(path); !errors.Is(err, ErrBinary) {
		t.Errorf("Load() error = %v, want ErrBinary", err)
	}
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	path := writeFile(t, "bad.txt", []byte{'a', 0xC3, 0x28, 'b'})
	if _, err := Load(path); !errors.Is(err, ErrBinary) {
		t.Errorf("Load() error = %v, want ErrBinary", err)
	}
}

func TestLoadRejectsEmpty(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty.txt":      {},
		"whitespace.txt": []byte("  \n\t  "),
	} {
		path := writeFile(t, name, data)
		if _, err := Load(path); !errors.Is(err, ErrEmpty) {
			t.Errorf("Load(%s) error = %v, want ErrEmpty", name, err)
		}
	}
}
