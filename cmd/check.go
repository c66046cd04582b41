package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <max-interval>",
	Short: "Exit non-zero when the content spans more than the given days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxDays, err := strconv.Atoi(args[0])
		if err != nil || maxDays < 0 {
			return fmt.Errorf("max-interval must be a non-negative number of days, got %q", args[0])
		}

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
			fmt.Fprintln(os.Stderr, "No dated files to check")
			return nil
		}
		if days := iv.Days(); days > maxDays {
			fmt.Fprintf(os.Stderr, "Delta is: %d days\n", days)
			os.Exit(1)
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
