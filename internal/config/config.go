package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render and scene settings.
type Config struct {
	// Scene
	GridExtent   int     `json:"grid_extent"`
	StartX       int     `json:"start_x"`
	StartZ       int     `json:"start_z"`
	StepDuration float64 `json:"step_duration"`

	// Camera. A yaw or pitch of exactly 0 means "use the default"; to aim
	// dead-on an axis, set a tiny angle such as 0.001 instead.
	CameraYaw   float64 `json:"camera_yaw"`
	CameraPitch float64 `json:"camera_pitch"`
	CameraDist  float64 `json:"camera_dist"`

	// Render settings
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	TextureDir  string `json:"texture_dir"`

	// Recorder
	OutputDir string `json:"output_dir"`
	FPS       int    `json:"fps"`
	MaxFrames int    `json:"max_frames"`
	Workers   int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	TextureDir string
	OutputDir  string
	RenderSize int
	Workers    int
	FPS        int
	MaxFrames  int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.MaxFrames > 0 {
		c.MaxFrames = flags.MaxFrames
	}

	if c.GridExtent <= 0 {
		c.GridExtent = 6
	}
	if c.StepDuration <= 0 {
		c.StepDuration = 0.16
	}
	if c.CameraYaw == 0 {
		c.CameraYaw = 35
	}
	if c.CameraPitch == 0 {
		c.CameraPitch = 40
	}
	if c.CameraDist <= 0 {
		c.CameraDist = 12
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.MaxFrames <= 0 {
		c.MaxFrames = 1800 // 30 seconds at the default 60 fps
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
