package local

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"profile-forge-backend/internal/shared/storage/object"
)

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := New(dir); err != nil {
		t.Fatalf("New: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", dir)
	}
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path, size, err := store.Save(context.Background(), "abc.py", strings.NewReader("print('hi')\n"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != 12 {
		t.Fatalf("expected 12 bytes, got %d", size)
	}
	if path != filepath.ToSlash(filepath.Join(dir, "abc.py")) {
		t.Fatalf("unexpected path: %s", path)
	}

	rc, err := store.Open(context.Background(), "abc.py")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "print('hi')\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestSaveRejectsExistingFile(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, _, err := store.Save(context.Background(), "dup.txt", strings.NewReader("a")); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, _, err := store.Save(context.Background(), "dup.txt", strings.NewReader("b")); err == nil {
		t.Fatalf("expected second Save to fail")
	}
}

func TestSaveRejectsTraversalKeys(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, key := range []string{"", "..", "../escape.txt", `..\escape.txt`, "a/b.txt"} {
		if _, _, err := store.Save(context.Background(), key, strings.NewReader("x")); !errors.Is(err, object.ErrInvalidKey) {
			t.Fatalf("key %q: expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestSaveHonorsCancelledContext(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := store.Save(ctx, "x.txt", strings.NewReader("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
