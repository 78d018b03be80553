package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestMediaStoreSaveAndPath(t *testing.T) {
	store, err := NewMediaStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	name, err := store.Save("slide_1_2", []byte("png bytes"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(name, "slide_1_2_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("unexpected file name %q", name)
	}

	data, err := os.ReadFile(store.Path(name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "png bytes" {
		t.Error("stored content does not match")
	}
}

func TestMediaStoreSaveNeverClobbers(t *testing.T) {
	store, err := NewMediaStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	first, err := store.Save("slide", []byte("a"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Save("slide", []byte("b"))
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("same prefix produced the same file name twice")
	}
}

func TestMediaStoreRemove(t *testing.T) {
	store, err := NewMediaStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	name, err := store.Save("slide", []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Remove(name); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := os.Stat(store.Path(name)); !os.IsNotExist(err) {
		t.Error("file still exists after remove")
	}

	// Removing again is not an error.
	if err := store.Remove(name); err != nil {
		t.Errorf("removing a missing file should be silent: %v", err)
	}
}

func TestMediaStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "media")
	if _, err := NewMediaStore(dir, zap.NewNop()); err != nil {
		t.Fatalf("constructor should create the directory: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Error("media directory was not created")
	}
}
