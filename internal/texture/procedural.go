package texture

import "image"

// Checker generates a size×size two-color checkerboard with cells² tiles.
func Checker(size, cells int, a, b [4]uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if ((x/cell)+(y/cell))&1 != 0 {
				c = b
			}
			i := img.PixOffset(x, y)
			img.Pix[i] = c[0]
			img.Pix[i+1] = c[1]
			img.Pix[i+2] = c[2]
			img.Pix[i+3] = c[3]
		}
	}
	return img
}

// CubeFace generates the default cube face: a bordered tile. The pattern
// is 4-fold symmetric, so the orientation reset at the end of each tumble
// is invisible.
func CubeFace(size int, face, border [4]uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	bw := size / 12
	if bw < 1 {
		bw = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := face
			if x < bw || y < bw || x >= size-bw || y >= size-bw {
				c = border
			}
			i := img.PixOffset(x, y)
			img.Pix[i] = c[0]
			img.Pix[i+1] = c[1]
			img.Pix[i+2] = c[2]
			img.Pix[i+3] = c[3]
		}
	}
	return img
}
