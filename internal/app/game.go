package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tumblecube/internal/anim"
	"tumblecube/internal/camera"
	"tumblecube/internal/config"
	"tumblecube/internal/postprocess"
	"tumblecube/internal/raster"
	"tumblecube/internal/scene"
	"tumblecube/internal/texture"
)

// keyBindings maps just-pressed keys to grid directions. Arrow keys and
// WASD both work; anything else is ignored.
var keyBindings = []struct {
	key ebiten.Key
	dir anim.Direction
}{
	{ebiten.KeyArrowUp, anim.North},
	{ebiten.KeyW, anim.North},
	{ebiten.KeyArrowDown, anim.South},
	{ebiten.KeyS, anim.South},
	{ebiten.KeyArrowRight, anim.East},
	{ebiten.KeyD, anim.East},
	{ebiten.KeyArrowLeft, anim.West},
	{ebiten.KeyA, anim.West},
}

// Game drives the scene at a fixed tick rate and blits the software
// framebuffer into the window. It implements ebiten.Game.
type Game struct {
	cfg      config.Config
	scene    *scene.Scene
	registry *anim.Registry
	tumbler  *anim.Tumbler
	cam      camera.Camera
	resolver texture.Resolver

	screen *ebiten.Image
}

// New assembles the scene, the animator, and its registry.
func New(cfg config.Config, resolver texture.Resolver) *Game {
	sc := scene.New(cfg.GridExtent, cfg.StartX, cfg.StartZ)
	tm := anim.NewTumbler(sc.Carrier, sc.Body, cfg.StartX, cfg.StartZ)
	tm.StepDuration = cfg.StepDuration

	reg := &anim.Registry{}
	reg.Register(tm)

	return &Game{
		cfg:      cfg,
		scene:    sc,
		registry: reg,
		tumbler:  tm,
		cam:      camera.Orbit(scene.Center(), cfg.CameraYaw, cfg.CameraPitch, cfg.CameraDist),
		resolver: resolver,
	}
}

// Update polls input and advances every registered animatable exactly once
// per tick. Requests issued while a move is in flight are dropped by the
// tumbler itself, so holding a key never queues moves.
func (g *Game) Update() error {
	for _, kb := range keyBindings {
		if inpututil.IsKeyJustPressed(kb.key) {
			g.tumbler.RequestMove(kb.dir)
		}
	}

	g.registry.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the scene with the software rasterizer and copies the
// pixels to the window. Drawing reads animation state only.
func (g *Game) Draw(screen *ebiten.Image) {
	img := raster.RenderScene(
		g.scene.Drawables(), g.cam,
		g.cfg.RenderSize, g.cfg.RenderSize, g.cfg.Supersample,
		g.resolver,
	)
	if g.cfg.Supersample > 1 {
		img = postprocess.Downsample(img, g.cfg.RenderSize, g.cfg.RenderSize)
	}

	if g.screen == nil {
		g.screen = ebiten.NewImage(g.cfg.RenderSize, g.cfg.RenderSize)
	}
	// The rasterizer emits opaque pixels, so NRGBA and premultiplied
	// RGBA bytes are identical here.
	g.screen.WritePixels(img.Pix)
	screen.DrawImage(g.screen, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.RenderSize, g.cfg.RenderSize
}

// Run opens the window and blocks until it closes.
func Run(g *Game) error {
	ebiten.SetWindowTitle("tumblecube")
	ebiten.SetWindowSize(g.cfg.RenderSize, g.cfg.RenderSize)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
