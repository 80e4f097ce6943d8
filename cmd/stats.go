package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the student's learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := newLedger(cmd, st, cfg)
		if err != nil {
			return err
		}

		snapshot, _ := cmd.Flags().GetBool("snapshot")
		ctx := cmd.Context()

		stats, err := svc.Statistics(ctx)
		if err != nil {
			return err
		}
		if snapshot {
			if stats, err = svc.SnapshotStatistics(ctx); err != nil {
				return err
			}
		}

		fmt.Printf("Student:              %s\n", stats.StudentID)
		fmt.Printf("Total interactions:   %d\n", stats.TotalInteractions)
		fmt.Printf("Theory questions:     %d (%d correct, %.1f%%)\n",
			stats.TheoryQuestionsAsked, stats.TheoryQuestionsCorrect, stats.TheoryAccuracy)
		fmt.Printf("Theory tests taken:   %d\n", stats.TheoryTestsTaken)
		fmt.Printf("Practice operations:  %d (%d successful, %.1f%%)\n",
			stats.PracticeOperations, stats.PracticeOperationsSuccess, stats.PracticeSuccessRate)
		fmt.Printf("Expert consults:      %d (%.2f per interaction)\n",
			stats.ExpertConsults, stats.ExpertConsultRate)
		fmt.Printf("Stage switches:       %d\n", stats.StageSwitches)
		if stats.SkippedRecords > 0 {
			fmt.Printf("Skipped records:      %d (malformed)\n", stats.SkippedRecords)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("snapshot", false, "Persist a statistics snapshot after computing")
}
