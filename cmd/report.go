package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the full learning report",
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

		report, err := svc.Report(cmd.Context())
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Printf("Learning report for %s\n", report.StudentID)
		fmt.Printf("Study time: %.0f minutes\n\n", report.StudyTimeMinutes)

		stats := report.Statistics
		fmt.Printf("Interactions: %d total, theory accuracy %.1f%%, practice success %.1f%%\n",
			stats.TotalInteractions, stats.TheoryAccuracy, stats.PracticeSuccessRate)

		if len(report.Curve) > 0 {
			fmt.Println("\nLearning curve (moving average):")
			for _, p := range report.Curve {
				fmt.Printf("  %3d: %.1f\n", p.Index, p.Average)
			}
		}

		if len(report.Gaps) > 0 {
			fmt.Println("\nKnowledge gaps:")
			for _, g := range report.Gaps {
				fmt.Printf("  %-30s accuracy %.1f%% over %d attempts (%d errors)\n",
					g.Topic, g.Accuracy, g.Attempts, g.Errors)
			}
		}

		if len(report.Recommendations) > 0 {
			fmt.Println("\nAdvice:")
			for _, r := range report.Recommendations {
				fmt.Println("  -", r)
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("json", false, "Emit the report as JSON")
}
