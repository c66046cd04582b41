package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jvalecka/photospan/internal/album"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename the directory so its name carries the content date range",
	Long: "Rename classifies the directory name against the dates of its photos " +
		"and, when the name carries no date range, prepends the canonical range. " +
		"A directory whose content spans more than --max-interval days is refused: " +
		"it likely has stray files mixed in.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := scanAlbum(cmd, cfg)
		if err != nil {
			return err
		}

		maxDays, _ := cmd.Flags().GetInt("max-interval")
		if !cmd.Flags().Changed("max-interval") {
			maxDays = cfg.MaxIntervalDays
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		status, newPath, err := a.ProposeRename(maxDays)
		if err != nil {
			return err
		}
		switch status {
		case album.StatusValid:
			fmt.Fprintln(os.Stderr, "Directory already has the right date")
		case album.StatusSuperSet:
			fmt.Fprintln(os.Stderr, "Directory date already covers the content")
		case album.StatusInvalid:
			fmt.Fprintln(os.Stderr, "Directory has a date, but it does not match the content")
			fmt.Printf("Proposed: %q\n", newPath)
		case album.StatusNone:
			if !dryRun {
				if err := os.Rename(a.Path, newPath); err != nil {
					return err
				}
			}
			fmt.Printf("Rename %q to %q\n", a.Path, newPath)
		}
		return nil
	},
}

func init() {
	renameCmd.Flags().Int("max-interval", 0, "maximal content interval in days")
	renameCmd.Flags().Bool("dry-run", false, "print the rename without performing it")
	rootCmd.AddCommand(renameCmd)
}
