// Package config loads runtime settings from the environment. Every
// knob has a default matching the training program's standard rules, so
// an empty environment yields a fully working setup.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all tunable settings.
type Config struct {
	// DBPath overrides the default database location. Empty means the
	// platform data directory is used.
	DBPath string `env:"FABTRAINER_DB"`

	// Stage gates.
	TheoryGateScore   float64 `env:"FABTRAINER_THEORY_GATE"   envDefault:"70"`
	PracticeGateScore float64 `env:"FABTRAINER_PRACTICE_GATE" envDefault:"80"`

	// Readiness floors for the overall evaluation.
	ReadinessTheoryFloor   float64 `env:"FABTRAINER_READINESS_THEORY_FLOOR"   envDefault:"40"`
	ReadinessPracticeFloor float64 `env:"FABTRAINER_READINESS_PRACTICE_FLOOR" envDefault:"80"`

	// Knowledge gap detection.
	GapAccuracyThreshold float64 `env:"FABTRAINER_GAP_ACCURACY_THRESHOLD" envDefault:"60"`
	GapMinAttempts       int     `env:"FABTRAINER_GAP_MIN_ATTEMPTS"       envDefault:"3"`

	// Automatic recommendation trigger.
	FailureThreshold int `env:"FABTRAINER_FAILURE_THRESHOLD" envDefault:"3"`

	// Learning curve moving-average window.
	CurveWindow int `env:"FABTRAINER_CURVE_WINDOW" envDefault:"10"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
