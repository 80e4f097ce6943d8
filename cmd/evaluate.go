package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yclin/fabtrainer/internal/evaluation"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score tests and practice sessions",
}

var evaluateTheoryCmd = &cobra.Command{
	Use:   "theory",
	Short: "Score a theory test and record the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		var results []evaluation.TestResult
		if err := readInput(cmd, &results); err != nil {
			return err
		}

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

		eval := evaluation.EvaluateTheoryTest(results)

		recorder := evaluation.NewRecorder(st.EventRepo())
		if err := recorder.RecordTheory(ctx, id, eval); err != nil {
			return err
		}
		coord, err := newCoordinator(cmd, st, cfg)
		if err != nil {
			return err
		}
		if err := coord.UpdateTheoryScore(ctx, eval.Score); err != nil {
			return err
		}

		fmt.Printf("Theory score: %.1f (%s), %d/%d correct\n",
			eval.Score, eval.Grade, eval.CorrectCount, eval.TotalCount)
		for _, s := range eval.Strengths {
			fmt.Println("  strength:", s)
		}
		for _, w := range eval.Weaknesses {
			fmt.Println("  weakness:", w)
		}
		return nil
	},
}

var evaluatePracticeCmd = &cobra.Command{
	Use:   "practice",
	Short: "Score a practice session and record the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		var session evaluation.PracticeSession
		if err := readInput(cmd, &session); err != nil {
			return err
		}

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

		eval := evaluation.EvaluatePracticeSession(session)

		recorder := evaluation.NewRecorder(st.EventRepo())
		if err := recorder.RecordPractice(ctx, id, eval); err != nil {
			return err
		}
		coord, err := newCoordinator(cmd, st, cfg)
		if err != nil {
			return err
		}
		if err := coord.UpdatePracticeScore(ctx, eval.Score); err != nil {
			return err
		}

		fmt.Printf("Practice score: %.1f (%s)\n", eval.Score, eval.Grade)
		fmt.Printf("  diagnosis %.1f, operations %.1f, time efficiency %.1f\n",
			eval.DiagnosisScore, eval.OperationScore, eval.TimeEfficiencyScore)
		fmt.Printf("  %d/%d operations correct in %.0f minutes, %d expert consults\n",
			eval.CorrectOperations, eval.TotalOperations, eval.CompletionMinutes, eval.ExpertConsults)
		return nil
	},
}

var evaluateOverallCmd = &cobra.Command{
	Use:   "overall",
	Short: "Combine the latest theory and practice scores",
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

		coord, err := newCoordinator(cmd, st, cfg)
		if err != nil {
			return err
		}
		state, err := coord.State(ctx)
		if err != nil {
			return err
		}

		var theory, practice float64
		if state.TheoryScore != nil {
			theory = *state.TheoryScore
		}
		if state.PracticeScore != nil {
			practice = *state.PracticeScore
		}

		eval := evaluation.EvaluateOverall(theory, practice, evaluation.ReadinessConfig{
			MinOverall:    cfg.PracticeGateScore,
			TheoryFloor:   cfg.ReadinessTheoryFloor,
			PracticeFloor: cfg.ReadinessPracticeFloor,
		})

		recorder := evaluation.NewRecorder(st.EventRepo())
		if err := recorder.RecordOverall(ctx, id, eval); err != nil {
			return err
		}

		fmt.Printf("Overall score: %.1f (%s)\n", eval.OverallScore, eval.Grade)
		fmt.Printf("  theory %.1f, practice %.1f\n", eval.TheoryScore, eval.PracticeScore)
		if eval.ReadyForRealPractice {
			fmt.Println("  ready for supervised work on the real tool")
		}
		for _, c := range eval.Comments {
			fmt.Println("  -", c)
		}
		for _, s := range evaluation.GenerateImprovementSuggestions(eval, nil, nil) {
			fmt.Println("  suggestion:", s)
		}

		trend, err := recorder.OverallTrend(ctx, id)
		if err != nil {
			return err
		}
		fmt.Println("Trend:", trend)
		return nil
	},
}

// readInput decodes JSON from --input (a file path, or "-" for stdin).
func readInput(cmd *cobra.Command, v any) error {
	path, _ := cmd.Flags().GetString("input")
	if path == "" {
		return fmt.Errorf("--input is required")
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func init() {
	evaluateTheoryCmd.Flags().String("input", "", "JSON file with the answered test items (- for stdin)")
	evaluatePracticeCmd.Flags().String("input", "", "JSON file with the practice session payload (- for stdin)")

	evaluateCmd.AddCommand(evaluateTheoryCmd)
	evaluateCmd.AddCommand(evaluatePracticeCmd)
	evaluateCmd.AddCommand(evaluateOverallCmd)
}
