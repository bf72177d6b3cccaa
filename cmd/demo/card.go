package main

import (
	"image"
	"image/color"
)

// testCard returns a w x h demonstration image: a color gradient behind a
// grid, with a dark border and a red center cross so scaling and centering
// are easy to judge by eye
func testCard(w int, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += 1 {
		for x := 0; x < w; x += 1 {
			c := color.RGBA{
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: 128,
				A: 255,
			}
			switch {
			case x < 4, y < 4, x >= w-4, y >= h-4:
				c = color.RGBA{A: 255}
			case abs(x-w/2) < 2, abs(y-h/2) < 2:
				c = color.RGBA{R: 255, A: 255}
			case x%100 == 0, y%100 == 0:
				c = color.RGBA{R: 32, G: 32, B: 32, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
