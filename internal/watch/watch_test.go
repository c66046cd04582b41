package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsPhotoChanges(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, []string{".jpg"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	// A non-photo file must not produce a change.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	photoPath := filepath.Join(dir, "a.jpg")
	if err := os.WriteFile(photoPath, []byte("photo"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-w.Changes:
		if change.Path != photoPath {
			t.Errorf("change for %q, want %q", change.Path, photoPath)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported within 5s")
	}

	// Drain: the notes.txt write must never surface.
	select {
	case change := <-w.Changes:
		t.Errorf("unexpected extra change: %q", change.Path)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestIsPhotoFile(t *testing.T) {
	t.Parallel()

	w := &Watcher{exts: map[string]bool{".jpg": true, ".png": true}}

	tests := []struct {
		name string
		want bool
	}{
		{"album/a.jpg", true},
		{"album/b.PNG", true},
		{"album/c.txt", false},
		{"album/noext", false},
	}
	for _, tt := range tests {
		if got := w.isPhotoFile(tt.name); got != tt.want {
			t.Errorf("isPhotoFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
