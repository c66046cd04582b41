package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "2025:05:01 12:30:45", want: "2025-05-01T12:30:45"},
		{input: "2025-05-01 12:30:45", want: "2025-05-01T12:30:45"},
		{input: "  2025:05:01 12:30:45 ", want: "2025-05-01T12:30:45"},
		{input: "not a date", wantErr: true},
		{input: "2025:05:01", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := parseDateTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDateTime(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDateTime(%q): %v", tt.input, err)
			}
			if formatted := got.Format("2006-01-02T15:04:05"); formatted != tt.want {
				t.Errorf("parseDateTime(%q) = %s, want %s", tt.input, formatted, tt.want)
			}
		})
	}
}

func TestListPhotos(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(rel string) {
		t.Helper()
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("not really a photo"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.jpg")
	write("nested/b.JPG")
	write("notes.txt")
	write(".Trashes/c.jpg")

	paths, err := listPhotos(dir, DefaultExtensions)
	if err != nil {
		t.Fatalf("listPhotos: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("listPhotos found %d files, want 2: %v", len(paths), paths)
	}
	for _, p := range paths {
		if filepath.Ext(p) == ".txt" {
			t.Errorf("non-photo file listed: %s", p)
		}
		if filepath.Base(filepath.Dir(p)) == ".Trashes" {
			t.Errorf("junk directory not skipped: %s", p)
		}
	}
}

// Files that are not EXIF carriers are a normal "no date" outcome, not an
// error: the scan returns an empty collection for a tree of undated files.
func TestDirectorySkipsUndatedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.jpg"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	collection, err := Directory(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}
	if len(collection) != 0 {
		t.Fatalf("expected no dated files, got %d", len(collection))
	}
}

func TestDirectoryRejectsNonDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.jpg")
	if err := os.WriteFile(file, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Directory(context.Background(), file, Options{}); err == nil {
		t.Fatal("scanning a plain file should fail")
	}
}
