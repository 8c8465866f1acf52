package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Simulations != 1 {
		t.Errorf("Simulations = %d, want 1", cfg.Simulations)
	}
	if cfg.Trials != 1_000_000 {
		t.Errorf("Trials = %d, want 1000000", cfg.Trials)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.UpperStdDevBound != 3 {
		t.Errorf("UpperStdDevBound = %v, want 3", cfg.UpperStdDevBound)
	}
	if cfg.StepSize != 10 {
		t.Errorf("StepSize = %d, want 10", cfg.StepSize)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NEWSVENDOR_TRIALS", "5000")
	t.Setenv("NEWSVENDOR_SEED", "42")
	t.Setenv("NEWSVENDOR_UPPER_SD_BOUND", "2.5")
	t.Setenv("NEWSVENDOR_WORKERS", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Trials != 5000 {
		t.Errorf("Trials = %d, want 5000", cfg.Trials)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.UpperStdDevBound != 2.5 {
		t.Errorf("UpperStdDevBound = %v, want 2.5", cfg.UpperStdDevBound)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoad_RejectsMalformedValues(t *testing.T) {
	t.Setenv("NEWSVENDOR_TRIALS", "lots")

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error for malformed NEWSVENDOR_TRIALS")
	}
}
