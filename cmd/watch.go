package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jvalecka/photospan/internal/album"
	"github.com/jvalecka/photospan/internal/config"
	"github.com/jvalecka/photospan/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-check the directory name whenever its photos change",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir, err := cmd.Flags().GetString("directory")
		if err != nil {
			return err
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", dir, err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w, err := watch.New(abs, cfg.Extensions)
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()

		printStatus(ctx, abs, cfg)
		for {
			select {
			case <-ctx.Done():
				return nil
			case change, ok := <-w.Changes:
				if !ok {
					return nil
				}
				fmt.Fprintf(os.Stderr, "changed: %s\n", change.Path)
				printStatus(ctx, abs, cfg)
			}
		}
	},
}

// printStatus rescans the directory and reports the current name status.
// Scan failures are reported but do not stop the watch loop.
func printStatus(ctx context.Context, dir string, cfg config.Config) {
	a, err := rescan(ctx, dir, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
		return
	}
	status, err := a.NameStatus()
	if errors.Is(err, album.ErrNoInterval) {
		fmt.Println("No dated files found")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "status failed: %v\n", err)
		return
	}
	fmt.Println(statusText(status))
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
