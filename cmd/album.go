package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jvalecka/photospan/internal/album"
	"github.com/jvalecka/photospan/internal/config"
	"github.com/jvalecka/photospan/internal/photo"
	"github.com/jvalecka/photospan/internal/scan"
)

// loadConfig reads and validates the effective configuration.
func loadConfig() (config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// scanAlbum resolves the --directory flag and scans it into an Album.
func scanAlbum(cmd *cobra.Command, cfg config.Config) (*album.Album, error) {
	dir, err := cmd.Flags().GetString("directory")
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", dir, err)
	}

	files, err := scan.Directory(cmd.Context(), abs, scan.Options{
		Extensions:  cfg.Extensions,
		Parallelism: cfg.Parallelism,
		Logger:      scanLogger(cfg),
	})
	if err != nil {
		return nil, err
	}
	return &album.Album{Path: abs, Files: files}, nil
}

func scanLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// sortKey maps a configured sort name to the collection's sort key.
// config.Validate has already rejected anything else.
func sortKey(name string) photo.SortKey {
	if name == config.SortCreated {
		return photo.ByCreated
	}
	return photo.ByPath
}

// statusText renders a classification the way the status and watch commands
// report it.
func statusText(s album.Status) string {
	switch s {
	case album.StatusValid:
		return "Date is valid"
	case album.StatusInvalid:
		return "Date is set but is invalid"
	case album.StatusSuperSet:
		return "Date is set wider than the content"
	default:
		return "Date is not set"
	}
}

// rescan is used by the watch loop, which has no cobra command at hand by
// the time changes arrive.
func rescan(ctx context.Context, dir string, cfg config.Config) (*album.Album, error) {
	files, err := scan.Directory(ctx, dir, scan.Options{
		Extensions:  cfg.Extensions,
		Parallelism: cfg.Parallelism,
		Logger:      scanLogger(cfg),
	})
	if err != nil {
		return nil, err
	}
	return &album.Album{Path: dir, Files: files}, nil
}
