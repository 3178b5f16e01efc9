package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	name, path, n, err := s.Save(strings.NewReader("hello"), ".TXT")
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if n != 5 || !strings.HasSuffix(name, ".txt") {
		t.Errorf("Save() = %q, %d", name, n)
	}
	if data, _ := os.ReadFile(path); string(data) != "hello" {
		t.Errorf("stored %q", data)
	}

	if err := s.Remove(path); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := s.Remove(path); err != nil {
		t.Errorf("second Remove() error = %v", err)
	}
}

func TestRemoveOutsideDir(t *testing.T) {
	s, _ := NewLocalStorage(t.TempDir())
	if err := s.Remove(filepath.Join(os.TempDir(), "elsewhere")); err == nil {
		t.Error("expected refusal")
	}
}

func TestSanitizeExt(t *testing.T) {
	tests := []struct{ in, want string }{
		{".pdf", ".pdf"},
		{".tar.gz", ""},
		{"pdf", ""},
		{"./../x", ""},
		{".averyveryverylongext", ""},
	}
	for _, tt := range tests {
		if got := sanitizeExt(tt.in); got != tt.want {
			t.Errorf("sanitizeExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
