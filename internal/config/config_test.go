package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Light != DefaultLight {
		t.Errorf("expected light %f, got %f", DefaultLight, cfg.Light)
	}
	if cfg.DIC != DefaultDIC {
		t.Errorf("expected DIC %f, got %f", DefaultDIC, cfg.DIC)
	}
	if cfg.TMax <= 0 {
		t.Error("t_max should be positive")
	}
	if cfg.NPoints <= 1 {
		t.Error("n_points should exceed 1")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("suboptimal")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Light != 80.0 {
		t.Errorf("expected light 80, got %f", cfg.Light)
	}
	if cfg.DIC != 10.0 {
		t.Errorf("expected DIC 10, got %f", cfg.DIC)
	}

	// mutating the returned preset must not affect the table
	cfg.Light = 999
	if Presets["suboptimal"].Light != 80.0 {
		t.Error("preset table mutated through returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := DefaultConfig()
	cfg.Light = 95
	cfg.DIC = 12.5
	cfg.NPoints = 400

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Light != 95 || loaded.DIC != 12.5 || loaded.NPoints != 400 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestRunConfigDefaults(t *testing.T) {
	cfg := &Config{Light: 100, DIC: 15}
	run := cfg.RunConfig()

	if run.TMax != DefaultTMax {
		t.Errorf("expected default t_max, got %f", run.TMax)
	}
	if run.NPoints != DefaultNPoints {
		t.Errorf("expected default n_points, got %d", run.NPoints)
	}
	if run.Floor <= 0 {
		t.Error("expected positive biomass floor")
	}
}

func TestInitialBiomass(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.InitialBiomass() != cfg.ParameterSet().X0 {
		t.Error("expected parameter-set default X0")
	}

	cfg.X0 = 0.05
	if cfg.InitialBiomass() != 0.05 {
		t.Error("expected explicit X0 to win")
	}
}
