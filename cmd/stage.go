package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yclin/fabtrainer/internal/coordinator"
	"github.com/yclin/fabtrainer/internal/ledger"
)

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Inspect and advance the training stage",
}

var stageStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show overall progress and per-stage status",
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
		ctx := cmd.Context()

		progress, err := coord.OverallProgress(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Current stage: %s\n", progress.StageLabel)
		fmt.Printf("Overall completion: %.1f%%\n", progress.Completion)
		fmt.Printf("Next step: %s\n\n", progress.NextStep)

		statuses, err := coord.StageStatuses(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			line := fmt.Sprintf("%-28s score %.1f", s.Label, s.Score)
			switch {
			case s.Completed:
				line += "  [completed]"
			case s.Locked:
				line += "  [locked: " + s.LockReason + "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var stageEnterCmd = &cobra.Command{
	Use:   "enter <stage>",
	Short: "Enter a training stage (theory, practice, or complete)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := coordinator.ParseStage(args[0])
		if err != nil {
			return err
		}

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		coord, err := newCoordinator(cmd, st, cfg)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if err := coord.EnterStage(ctx, target); err != nil {
			return err
		}

		// The switch itself is part of the interaction history.
		svc, err := newLedger(cmd, st, cfg)
		if err != nil {
			return err
		}
		if _, err := svc.Record(ctx, ledger.KindStageSwitch,
			map[string]any{"stage": string(target)}, ledger.RecordOpts{}); err != nil {
			return err
		}

		fmt.Println("Entered", target.Label())
		return nil
	},
}

var stageScoreCmd = &cobra.Command{
	Use:   "score <theory|practice> <value>",
	Short: "Record a stage score directly",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q", args[1])
		}
		if score < 0 || score > 100 {
			return fmt.Errorf("score must be between 0 and 100")
		}

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		coord, err := newCoordinator(cmd, st, cfg)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		switch args[0] {
		case "theory":
			err = coord.UpdateTheoryScore(ctx, score)
		case "practice":
			err = coord.UpdatePracticeScore(ctx, score)
		default:
			return fmt.Errorf("unknown stage %q: expected theory or practice", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s score %.1f\n", args[0], score)
		return nil
	},
}

func init() {
	stageCmd.AddCommand(stageStatusCmd)
	stageCmd.AddCommand(stageEnterCmd)
	stageCmd.AddCommand(stageScoreCmd)
}
