package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load with defaults failed: %v", err)
	}
	if cfg.DefaultFlow != "scripted" {
		t.Fatalf("expected scripted default flow, got %q", cfg.DefaultFlow)
	}
	if cfg.IsArchiveEnabled() {
		t.Fatal("archive should be disabled without DATABASE_URL")
	}
}

func TestLoad_MalformedDurationRejected(t *testing.T) {
	cases := []string{"SESSION_TTL", "NARRATION_DELAY", "FOLLOW_UP_DELAY", "LEAD_SLOT_TTL", "ZIP_LOOKUP_TIMEOUT"}
	for _, key := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "2 hours")
			if _, err := Load(); err == nil {
				t.Fatalf("expected malformed %s to fail load", key)
			}
		})
	}
}

func TestLoad_NonPositiveDurationsRejected(t *testing.T) {
	t.Setenv("SESSION_TTL", "0s")
	if _, err := Load(); err == nil {
		t.Fatal("expected zero SESSION_TTL to fail load")
	}
}

func TestLoad_ZeroNarrationDelayAllowed(t *testing.T) {
	t.Setenv("NARRATION_DELAY", "0s")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("zero narration delay should be valid: %v", err)
	}
	if cfg.GetNarrationDelay() != 0 {
		t.Fatalf("expected zero delay, got %v", cfg.GetNarrationDelay())
	}
}

func TestLoad_UnknownFlowRejected(t *testing.T) {
	t.Setenv("DEFAULT_FLOW", "freestyle")
	if _, err := Load(); err == nil {
		t.Fatal("expected unknown DEFAULT_FLOW to fail load")
	}
}
