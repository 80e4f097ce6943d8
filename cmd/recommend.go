package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yclin/fabtrainer/internal/ledger"
	"github.com/yclin/fabtrainer/internal/recommend"
)

// recentWindow is how many recent practice operations feed the
// automatic trigger check.
const recentWindow = 5

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend theory review topics from recent failures and gaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := studentID(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		recent, err := st.EventRepo().RecentInteractions(ctx, id,
			[]string{string(ledger.KindPracticeOperation)}, recentWindow)
		if err != nil {
			return err
		}
		failures := recommend.CountFailures(recent)

		force, _ := cmd.Flags().GetBool("force")
		if !force && !recommend.ShouldTriggerRecommendation(failures, cfg.FailureThreshold) {
			fmt.Printf("No recommendation needed: %d failures in the last %d practice operations (threshold %d).\n",
				failures, len(recent), cfg.FailureThreshold)
			return nil
		}

		svc, err := newLedger(cmd, st, cfg)
		if err != nil {
			return err
		}
		gaps, err := svc.KnowledgeGaps(ctx)
		if err != nil {
			return err
		}

		failedOps := recommend.FailuresFromRecords(recent)
		max, _ := cmd.Flags().GetInt("max")
		recs := recommend.RecommendTopics(failedOps, gaps, max)
		if len(recs) == 0 {
			fmt.Println("Nothing to recommend: no failures or knowledge gaps found.")
			return nil
		}

		fmt.Printf("Recommended review topics (%d):\n", len(recs))
		for i, r := range recs {
			fmt.Printf("%d. [%s] %s\n", i+1, r.Priority, r.Rationale)
		}

		path := recommend.GenerateLearningPath(recs)
		fmt.Printf("\nSuggested study order (%d topics, ~%d minutes):\n",
			len(path), recommend.TotalStudyMinutes(path))
		for i, step := range path {
			fmt.Printf("%d. %s (%d min, %s)\n", i+1, step.Topic, step.EstimatedMinutes, step.Priority)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().Int("max", recommend.MaxRecommendations, "Maximum number of recommended topics")
	recommendCmd.Flags().Bool("force", false, "Recommend even when the failure threshold has not been reached")
}
