package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvalecka/photospan/internal/planfile"
)

var filesRenameCmd = &cobra.Command{
	Use:   "files-rename <base-name>",
	Short: "Rename all dated files to a numbered sequence",
	Long: "Files are sorted by the selected key and renamed to " +
		"\"<base-name> <number>.<ext>\", numbering from 1. The number is " +
		"zero-padded to --digits, or to the minimum width that fits the count.",
	Args: cobra.ExactArgs(1),
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
		if !cmd.Flags().Changed("sort") {
			sortName = cfg.Sort
		}
		if !validSort(sortName) {
			return fmt.Errorf("unknown sort key %q", sortName)
		}
		digits, _ := cmd.Flags().GetInt("digits")
		if !cmd.Flags().Changed("digits") {
			digits = cfg.Digits
		}

		moves, err := a.Files.RenameSequence(args[0], sortKey(sortName), digits)
		if err != nil {
			return err
		}
		for _, m := range moves {
			fmt.Printf("Rename %q to %q\n", m.From, m.To)
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
	filesRenameCmd.Flags().Int("digits", 0, "zero-pad numbers to this width (0 = fit the count)")
	filesRenameCmd.Flags().String("sort", "", "sort key: path or created")
	filesRenameCmd.Flags().Bool("dry-run", false, "print the renames without performing them")
	filesRenameCmd.Flags().String("save", "", "write the plan to this TOML file instead of applying it")
	rootCmd.AddCommand(filesRenameCmd)
}
