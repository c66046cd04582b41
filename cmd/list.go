package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvalecka/photospan/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List dated files in the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := scanAlbum(cmd, cfg)
		if err != nil {
			return err
		}

		sortName, _ := cmd.Flags().GetString("sort")
		if !validSort(sortName) {
			return fmt.Errorf("unknown sort key %q", sortName)
		}
		for _, f := range a.Files.Sorted(sortKey(sortName)) {
			fmt.Printf("%s: created %s\n", f.Path, f.Created.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func validSort(name string) bool {
	return name == config.SortPath || name == config.SortCreated
}

func init() {
	listCmd.Flags().String("sort", config.SortCreated, "sort key: path or created")
	rootCmd.AddCommand(listCmd)
}
