package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var intervalCmd = &cobra.Command{
	Use:   "interval",
	Short: "Print the date range spanned by the directory's photos",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := scanAlbum(cmd, cfg)
		if err != nil {
			return err
		}

		iv, ok := a.Interval()
		if !ok {
			fmt.Fprintln(os.Stderr, "No dated files found")
			return nil
		}
		fmt.Printf("from: %s, to: %s (%d days)\n",
			iv.From.Format("2006-01-02 15:04:05"),
			iv.To.Format("2006-01-02 15:04:05"),
			iv.Days())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(intervalCmd)
}
