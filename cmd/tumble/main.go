package main

import (
	"flag"
	"fmt"
	"os"

	"tumblecube/internal/app"
	"tumblecube/internal/config"
	"tumblecube/internal/scene"
	"tumblecube/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	textureDir := flag.String("textures", "", "Directory with cube textures (default: procedural)")
	renderSize := flag.Int("size", 0, "Window/render size in pixels (default: 512)")

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
		RenderSize: *renderSize,
	})

	resolver := texture.NewResolver(cfg.TextureDir, scene.DefaultTextures(cfg.GridExtent))

	fmt.Println("tumblecube — arrows/WASD roll the cube, close window to quit")
	if err := app.Run(app.New(cfg, resolver)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
