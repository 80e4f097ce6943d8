package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yclin/fabtrainer/internal/config"
	"github.com/yclin/fabtrainer/internal/coordinator"
	"github.com/yclin/fabtrainer/internal/ledger"
	"github.com/yclin/fabtrainer/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "fabtrainer",
	Short: "Two-stage maintenance training tracker for CVD equipment",
	Long: "Fabtrainer tracks a technician trainee's progression through theory study\n" +
		"and simulated practice on a CVD tool: it logs every interaction, scores\n" +
		"tests and troubleshooting sessions, gates stage transitions, and\n" +
		"recommends review topics when practice keeps failing.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FABTRAINER_DB env var)")
	rootCmd.PersistentFlags().String("student", "", "Student ID (required)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the FABTRAINER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func studentID(cmd *cobra.Command) (string, error) {
	id, _ := cmd.Flags().GetString("student")
	if id == "" {
		return "", fmt.Errorf("--student is required")
	}
	return id, nil
}

// openStore loads the environment configuration and opens the store.
// The caller owns the returned store and must close it.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}

func newLedger(cmd *cobra.Command, st *store.Store, cfg config.Config) (*ledger.Service, error) {
	id, err := studentID(cmd)
	if err != nil {
		return nil, err
	}
	svc := ledger.NewService(id, st.EventRepo(), st.SnapshotRepo(),
		ledger.WithGapRule(cfg.GapAccuracyThreshold, cfg.GapMinAttempts),
		ledger.WithCurveWindow(cfg.CurveWindow))
	return svc, nil
}

func newCoordinator(cmd *cobra.Command, st *store.Store, cfg config.Config) (*coordinator.Service, error) {
	id, err := studentID(cmd)
	if err != nil {
		return nil, err
	}
	svc := coordinator.NewService(id, st.StateRepo(),
		coordinator.WithGates(cfg.TheoryGateScore, cfg.PracticeGateScore))
	return svc, nil
}
