package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yclin/fabtrainer/internal/ledger"
)

var recordCmd = &cobra.Command{
	Use:   "record <kind>",
	Short: "Append one interaction record to the student's ledger",
	Long: "Appends an immutable interaction record. Kind is one of: theory_question,\n" +
		"theory_test, practice_operation, expert_consult, stage_switch.",
	Args: cobra.ExactArgs(1),
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

		payload := map[string]any{}
		if raw, _ := cmd.Flags().GetString("payload"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &payload); err != nil {
				return fmt.Errorf("parse --payload: %w", err)
			}
		}
		if topic, _ := cmd.Flags().GetString("topic"); topic != "" {
			payload["topic"] = topic
		}

		var opts ledger.RecordOpts
		if cmd.Flags().Changed("success") {
			v, _ := cmd.Flags().GetBool("success")
			opts.Success = &v
		}
		if cmd.Flags().Changed("score") {
			v, _ := cmd.Flags().GetFloat64("score")
			opts.Score = &v
		}

		id, err := svc.Record(cmd.Context(), ledger.Kind(args[0]), payload, opts)
		if err != nil {
			return err
		}
		fmt.Println("recorded", id)
		return nil
	},
}

func init() {
	recordCmd.Flags().String("payload", "", "Interaction payload as a JSON object")
	recordCmd.Flags().String("topic", "", "Shorthand for setting the payload topic")
	recordCmd.Flags().Bool("success", false, "Outcome of the interaction (omit if not applicable)")
	recordCmd.Flags().Float64("score", 0, "Numeric score for the interaction (omit if not applicable)")
}
