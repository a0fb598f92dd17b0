package raster

import "image"

// sampler wraps a decoded texture for repeated bilinear lookups inside the
// pixel loop. Bounds and stride are hoisted once per triangle. Lookups
// clamp at the image edge: cube faces and the floor keep their UVs inside
// [0,1], so there is no tiling to wrap for.
type sampler struct {
	pix          []uint8
	stride       int
	spanX, spanY float64
	lastX, lastY int
}

func newSampler(tex *image.NRGBA) sampler {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	return sampler{
		pix:    tex.Pix,
		stride: tex.Stride,
		spanX:  float64(w - 1),
		spanY:  float64(h - 1),
		lastX:  w - 1,
		lastY:  h - 1,
	}
}

// bilinear returns the filtered NRGBA channels at (u, v).
func (s *sampler) bilinear(u, v float64) (r, g, b, a uint8) {
	fx := u * s.spanX
	fy := v * s.spanY
	if fx < 0 {
		fx = 0
	} else if fx > s.spanX {
		fx = s.spanX
	}
	if fy < 0 {
		fy = 0
	} else if fy > s.spanY {
		fy = s.spanY
	}

	x0, y0 := int(fx), int(fy)
	x1, y1 := x0+1, y0+1
	if x1 > s.lastX {
		x1 = s.lastX
	}
	if y1 > s.lastY {
		y1 = s.lastY
	}
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	i00 := y0*s.stride + x0*4
	i10 := y0*s.stride + x1*4
	i01 := y1*s.stride + x0*4
	i11 := y1*s.stride + x1*4

	var out [4]uint8
	for c := 0; c < 4; c++ {
		p00, p10 := float64(s.pix[i00+c]), float64(s.pix[i10+c])
		p01, p11 := float64(s.pix[i01+c]), float64(s.pix[i11+c])
		top := p00 + tx*(p10-p00)
		bot := p01 + tx*(p11-p01)
		out[c] = uint8(top + ty*(bot-top) + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}
