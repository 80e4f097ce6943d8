package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TheoryGateScore != 70 {
		t.Errorf("theory gate = %v, want 70", cfg.TheoryGateScore)
	}
	if cfg.PracticeGateScore != 80 {
		t.Errorf("practice gate = %v, want 80", cfg.PracticeGateScore)
	}
	if cfg.GapAccuracyThreshold != 60 || cfg.GapMinAttempts != 3 {
		t.Errorf("gap thresholds = %v/%v, want 60/3", cfg.GapAccuracyThreshold, cfg.GapMinAttempts)
	}
	if cfg.FailureThreshold != 3 {
		t.Errorf("failure threshold = %v, want 3", cfg.FailureThreshold)
	}
	if cfg.CurveWindow != 10 {
		t.Errorf("curve window = %v, want 10", cfg.CurveWindow)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FABTRAINER_DB", "/tmp/alt.db")
	t.Setenv("FABTRAINER_THEORY_GATE", "60")
	t.Setenv("FABTRAINER_CURVE_WINDOW", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/alt.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.TheoryGateScore != 60 {
		t.Errorf("theory gate = %v, want 60", cfg.TheoryGateScore)
	}
	if cfg.CurveWindow != 5 {
		t.Errorf("curve window = %v, want 5", cfg.CurveWindow)
	}
	// Untouched knobs keep their defaults.
	if cfg.PracticeGateScore != 80 {
		t.Errorf("practice gate = %v, want 80", cfg.PracticeGateScore)
	}
}

func TestLoadRejectsMalformedValue(t *testing.T) {
	t.Setenv("FABTRAINER_GAP_MIN_ATTEMPTS", "many")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric value")
	}
}
