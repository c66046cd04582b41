package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvalecka/photospan/internal/planfile"
)

var moveByDaysCmd = &cobra.Command{
	Use:   "move-by-days",
	Short: "Move each dated file into a per-day subdirectory",
	Long: "Every dated file is moved into a sibling subdirectory named after " +
		"its creation date (YYYY-MM-DD), keeping the original file name.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := scanAlbum(cmd, cfg)
		if err != nil {
			return err
		}

		moves := a.Files.MoveByDays()
		for _, m := range moves {
			fmt.Printf("Move %q to %q\n", m.From, m.To)
		}

		plan := planfile.New(a.Path, moves)
		if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
			return planfile.Save(savePath, plan)
		}
		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			return nil
		}
		return planfile.Apply(plan)
	},
}

func init() {
	moveByDaysCmd.Flags().Bool("dry-run", false, "print the moves without performing them")
	moveByDaysCmd.Flags().String("save", "", "write the plan to this TOML file instead of applying it")
	rootCmd.AddCommand(moveByDaysCmd)
}
