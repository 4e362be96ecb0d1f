package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"POLYMER_INPUT", "POLYMER_STEPS", "POLYMER_METHOD"} {
		t.Setenv(k, "") // restores the original value after the test
		os.Unsetenv(k)
	}

	e, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if e.Input != "data/day14/input.txt" || e.Steps != 10 || e.Method != "naive" {
		t.Fatalf("unexpected defaults %+v", e)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POLYMER_INPUT", "other.txt")
	t.Setenv("POLYMER_STEPS", "40")
	t.Setenv("POLYMER_METHOD", "tally")

	e, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if e.Input != "other.txt" || e.Steps != 40 || e.Method != "tally" {
		t.Fatalf("env not applied: %+v", e)
	}
}

func TestLoadBadSteps(t *testing.T) {
	t.Setenv("POLYMER_STEPS", "ten")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
