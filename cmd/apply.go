package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvalecka/photospan/internal/planfile"
)

var applyCmd = &cobra.Command{
	Use:   "apply <plan.toml>",
	Short: "Execute a previously saved plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := planfile.Load(args[0])
		if err != nil {
			return err
		}
		if err := planfile.Apply(plan); err != nil {
			return err
		}
		for _, m := range plan.Moves {
			fmt.Printf("Moved %q to %q\n", m.From, m.To)
		}
		fmt.Printf("Applied %d moves from plan generated %s\n",
			len(plan.Moves), plan.Generated.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
