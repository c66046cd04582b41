// Package scan walks a photo directory tree and extracts creation
// timestamps from EXIF metadata, producing the static collection the core
// packages operate on. Extraction runs on a bounded worker pool and is fully
// joined before the collection is returned.
package scan

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/sync/errgroup"

	"github.com/jvalecka/photospan/internal/photo"
)

// DefaultExtensions lists the photo file types probed for EXIF data.
var DefaultExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".heic", ".hif",
	".dng", ".arw", ".cr2", ".nef", ".raf", ".tif", ".tiff",
}

// skipDirs names directories that never hold user photos.
var skipDirs = map[string]bool{
	".stfolder":       true, // Syncthing
	".fseventsd":      true, // macOS filesystem events
	".Trashes":        true, // macOS trash
	".Spotlight-V100": true, // macOS Spotlight index
	"PRIVATE":         true, // camera system folder
	"AVF_INFO":        true, // Sony AVCHD info
	"THMBNL":          true, // Sony thumbnails
}

// exifLayouts are the accepted encodings of DateTimeOriginal. The colon
// form is what the EXIF standard prescribes; the dash form shows up in
// files rewritten by other tools.
var exifLayouts = []string{
	"2006:01:02 15:04:05",
	"2006-01-02 15:04:05",
}

// Options configures a directory scan. The zero value scans with the
// default extensions, one worker per CPU, and no debug logging.
type Options struct {
	Extensions  []string
	Parallelism int
	Logger      *slog.Logger
}

func (o *Options) applyDefaults() {
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions
	}
	if o.Parallelism <= 0 {
		o.Parallelism = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Directory recursively collects the dated photos under dir. Files without
// EXIF data or without a DateTimeOriginal tag are skipped as a normal "no
// date" outcome; a tag that is present but unparseable is a hard error,
// since the field exists but cannot be trusted.
func Directory(ctx context.Context, dir string, opts Options) (photo.Collection, error) {
	opts.applyDefaults()

	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", dir)
	}

	paths, err := listPhotos(dir, opts.Extensions)
	if err != nil {
		return nil, err
	}

	results := make([]*photo.File, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			created, ok, err := extractCreated(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if !ok {
				opts.Logger.Debug("no creation date", slog.String("path", path))
				return nil
			}
			results[i] = &photo.File{Path: path, Created: created}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	collection := make(photo.Collection, 0, len(results))
	for _, f := range results {
		if f != nil {
			collection = append(collection, *f)
		}
	}
	opts.Logger.Debug("scan complete",
		slog.String("dir", dir),
		slog.Int("candidates", len(paths)),
		slog.Int("dated", len(collection)))
	return collection, nil
}

// listPhotos walks the tree and returns every regular file with a photo
// extension, skipping junk directories.
func listPhotos(dir string, extensions []string) ([]string, error) {
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if exts[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// extractCreated reads the EXIF DateTimeOriginal tag. ok is false when the
// file carries no usable EXIF block or lacks the tag.
func extractCreated(path string) (created time.Time, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// Not an EXIF carrier, or the block is unreadable: no date.
		return time.Time{}, false, nil
	}
	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, false, nil
	}
	raw, err := tag.StringVal()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("reading DateTimeOriginal: %w", err)
	}
	created, err = parseDateTime(raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return created, true, nil
}

// parseDateTime parses a DateTimeOriginal value. A present but malformed
// value is an error, not a skip.
func parseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range exifLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("malformed DateTimeOriginal %q", s)
}
