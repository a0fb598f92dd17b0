package raster

import (
	"image"

	"tumblecube/internal/camera"
	"tumblecube/internal/scene"
	"tumblecube/internal/texture"
)

// SkyColor is the framebuffer clear color.
var SkyColor = [4]uint8{36, 41, 51, 255}

// RenderScene draws the scene's current draw list to a fresh NRGBA image
// of (width×supersample) × (height×supersample) pixels. The caller
// downsamples if supersampling is on. The renderer only reads animation
// state; it never writes it.
func RenderScene(
	items []scene.Item,
	cam camera.Camera,
	width, height, supersample int,
	resolver texture.Resolver,
) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	w := width * supersample
	h := height * supersample

	fb := NewFrameBuffer(w, h)
	fb.Clear(SkyColor[0], SkyColor[1], SkyColor[2], SkyColor[3])
	lc := DefaultLightConfig()

	for _, it := range items {
		if it.Mesh == nil || len(it.Mesh.Verts) == 0 {
			continue
		}

		px, py, pz := cam.ProjectVertices(it.Mesh.Verts, it.Model, w, h)

		var tex *image.NRGBA
		if it.Texture != "" && resolver != nil {
			tex = resolver.Resolve(it.Texture)
		}

		for _, tri := range it.Mesh.Tris {
			RasterizeTriangle(fb, px, py, pz, it.Mesh.UVs, tri.VI, tri.TI,
				tex, it.Color[0], it.Color[1], it.Color[2], it.Color[3], &lc)
		}
	}

	return fb.Image()
}
