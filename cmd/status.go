package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jvalecka/photospan/internal/album"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the directory name matches its content dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := scanAlbum(cmd, cfg)
		if err != nil {
			return err
		}

		status, err := a.NameStatus()
		if errors.Is(err, album.ErrNoInterval) {
			fmt.Fprintln(os.Stderr, "No dated files found; nothing to check the name against")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(statusText(status))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
