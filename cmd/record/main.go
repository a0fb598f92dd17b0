package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tumblecube/internal/anim"
	"tumblecube/internal/camera"
	"tumblecube/internal/capture"
	"tumblecube/internal/config"
	"tumblecube/internal/postprocess"
	"tumblecube/internal/raster"
	"tumblecube/internal/scene"
	"tumblecube/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	script := flag.String("script", "nneessww", "Move script: n/s/e/w per step")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	textureDir := flag.String("textures", "", "Directory with cube textures (default: procedural)")
	fps := flag.Int("fps", 0, "Simulation/recording frame rate (default: 60)")
	renderSize := flag.Int("size", 0, "Frame size in pixels (default: 512)")
	maxFrames := flag.Int("max-frames", 0, "Frame count cap for the recording (default: 1800)")
	workers := flag.Int("workers", 0, "Encode worker goroutines (default: NumCPU)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		TextureDir: *textureDir,
		OutputDir:  *outputDir,
		RenderSize: *renderSize,
		Workers:    *workers,
		FPS:        *fps,
		MaxFrames:  *maxFrames,
	})

	moves := parseScript(*script)
	if len(moves) == 0 {
		fmt.Fprintln(os.Stderr, "Error: script has no recognizable moves (use n/s/e/w)")
		os.Exit(1)
	}

	resolver := texture.NewResolver(cfg.TextureDir, scene.DefaultTextures(cfg.GridExtent))

	fmt.Printf("tumblecube recorder — %d moves at %d fps\n", len(moves), cfg.FPS)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	rec, path := simulate(cfg, moves, resolver)
	fmt.Printf("Simulated %d frames, path %v\n", rec.Len(), path)

	start := time.Now()
	results := rec.Encode(cfg.OutputDir, cfg.Workers)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(os.Stderr, "  frame %d: %s\n", r.Frame, r.Error)
		}
	}

	frames := make([]string, rec.Len())
	for i := range frames {
		frames[i] = capture.FrameName(i)
	}
	manifest := capture.Manifest{
		FPS:    cfg.FPS,
		Script: *script,
		Frames: frames,
		Path:   path,
	}
	if err := capture.WriteManifest(filepath.Join(cfg.OutputDir, "manifest.json"), manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Encoded %d frames (%d failed) in %.1fs\n",
		rec.Len()-failed, failed, time.Since(start).Seconds())
	if failed > 0 {
		os.Exit(1)
	}
}

// simulate drives the registry with a fixed tick, feeding the next
// scripted move whenever the tumbler goes idle, and captures every frame
// up to cfg.MaxFrames.
func simulate(cfg config.Config, moves []anim.Direction, resolver texture.Resolver) (*capture.Recorder, []capture.Cell) {
	sc := scene.New(cfg.GridExtent, cfg.StartX, cfg.StartZ)
	tm := anim.NewTumbler(sc.Carrier, sc.Body, cfg.StartX, cfg.StartZ)
	tm.StepDuration = cfg.StepDuration

	reg := &anim.Registry{}
	reg.Register(tm)

	cam := camera.Orbit(scene.Center(), cfg.CameraYaw, cfg.CameraPitch, cfg.CameraDist)
	dt := 1.0 / float64(cfg.FPS)

	rec := &capture.Recorder{}
	x, z := tm.Cell()
	path := []capture.Cell{{X: x, Z: z}}

	next := 0
	for (next < len(moves) || tm.InFlight()) && rec.Len() < cfg.MaxFrames {
		if !tm.InFlight() && next < len(moves) {
			tm.RequestMove(moves[next])
			next++
		}
		reg.Tick(dt)
		if !tm.InFlight() {
			x, z := tm.Cell()
			last := path[len(path)-1]
			if x != last.X || z != last.Z {
				path = append(path, capture.Cell{X: x, Z: z})
			}
		}

		img := raster.RenderScene(sc.Drawables(), cam,
			cfg.RenderSize, cfg.RenderSize, cfg.Supersample, resolver)
		if cfg.Supersample > 1 {
			img = postprocess.Downsample(img, cfg.RenderSize, cfg.RenderSize)
		}
		rec.Capture(img)
	}

	return rec, path
}

func parseScript(s string) []anim.Direction {
	var moves []anim.Direction
	for _, c := range s {
		if d, ok := anim.ParseDirection(c); ok {
			moves = append(moves, d)
		}
	}
	return moves
}
