package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.GridExtent != 6 {
		t.Errorf("GridExtent = %d, want 6", cfg.GridExtent)
	}
	if cfg.StepDuration != 0.16 {
		t.Errorf("StepDuration = %v, want 0.16", cfg.StepDuration)
	}
	if cfg.RenderSize != 512 {
		t.Errorf("RenderSize = %d, want 512", cfg.RenderSize)
	}
	if cfg.Supersample != 2 {
		t.Errorf("Supersample = %d, want 2", cfg.Supersample)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, want 60", cfg.FPS)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
	if cfg.OutputDir != "frames" {
		t.Errorf("OutputDir = %q, want frames", cfg.OutputDir)
	}
	if cfg.MaxFrames != 1800 {
		t.Errorf("MaxFrames = %d, want 1800", cfg.MaxFrames)
	}
	if cfg.CameraYaw != 35 || cfg.CameraPitch != 40 {
		t.Errorf("camera defaults = %v/%v, want 35/40", cfg.CameraYaw, cfg.CameraPitch)
	}
}

func TestResolveMaxFrames(t *testing.T) {
	cfg := Config{MaxFrames: 240}
	cfg.Resolve(Flags{})
	if cfg.MaxFrames != 240 {
		t.Errorf("MaxFrames = %d, file value must survive", cfg.MaxFrames)
	}

	cfg = Config{MaxFrames: 240}
	cfg.Resolve(Flags{MaxFrames: 90})
	if cfg.MaxFrames != 90 {
		t.Errorf("MaxFrames = %d, flag must win", cfg.MaxFrames)
	}
}

func TestResolveKeepsExplicitCameraAngles(t *testing.T) {
	cfg := Config{CameraYaw: 10, CameraPitch: 0.001}
	cfg.Resolve(Flags{})
	if cfg.CameraYaw != 10 {
		t.Errorf("CameraYaw = %v, want 10", cfg.CameraYaw)
	}
	if cfg.CameraPitch != 0.001 {
		t.Errorf("CameraPitch = %v, want 0.001", cfg.CameraPitch)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg := Config{RenderSize: 256, OutputDir: "from-file", FPS: 30}
	cfg.Resolve(Flags{RenderSize: 128, OutputDir: "from-flag"})

	if cfg.RenderSize != 128 {
		t.Errorf("RenderSize = %d, flag must win", cfg.RenderSize)
	}
	if cfg.OutputDir != "from-flag" {
		t.Errorf("OutputDir = %q, flag must win", cfg.OutputDir)
	}
	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, file value must survive absent flag", cfg.FPS)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"grid_extent": 4, "render_size": 300, "step_duration": 0.25}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GridExtent != 4 || cfg.RenderSize != 300 || cfg.StepDuration != 0.25 {
		t.Errorf("loaded %+v", cfg)
	}

	cfg.Resolve(Flags{})
	if cfg.StepDuration != 0.25 {
		t.Errorf("Resolve clobbered StepDuration: %v", cfg.StepDuration)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load of missing file did not fail")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{nope"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed JSON did not fail")
	}
}
