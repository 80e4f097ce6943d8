package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a student's training progress",
	Long: "Returns the student to the default theory stage with zero scores.\n" +
		"The interaction ledger is append-only and is not touched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		coord, err := newCoordinator(cmd, st, cfg)
		if err != nil {
			return err
		}
		if err := coord.Reset(cmd.Context()); err != nil {
			return err
		}

		id, _ := cmd.Flags().GetString("student")
		fmt.Printf("Training progress for %s reset to the theory stage.\n", id)
		return nil
	},
}
