package config

import "testing"

func TestParseEnv(t *testing.T) {
	t.Setenv("LOVEPARK_VERBOSE", "true")
	t.Setenv("LOVEPARK_SEED", "42")
	t.Setenv("LOVEPARK_TUNING", "/tmp/tuning.yaml")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv failed: %v", err)
	}
	if !cfg.Verbose || cfg.Seed != 42 || cfg.TuningPath != "/tmp/tuning.yaml" {
		t.Errorf("unexpected env config: %+v", cfg)
	}
	if cfg.Fullscreen || cfg.Mute {
		t.Errorf("unset flags should be false: %+v", cfg)
	}
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("LOVEPARK_SEED", "not-a-number")
	if _, err := ParseEnv(); err == nil {
		t.Fatal("expected error for invalid seed")
	}
}
