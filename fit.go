package easel

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// fitSize computes the dimensions of a srcW x srcH image scaled to fit
// within targetW x targetH. An image that already fits strictly within the
// target is returned unchanged; an image is never upscaled. Otherwise both
// dimensions are scaled by the smaller of the two scale factors and
// truncated toward zero, so the tighter dimension fills the target exactly
// and the other stays within it.
func fitSize(srcW int, srcH int, targetW int, targetH int) (int, int) {
	if srcW < targetW && srcH < targetH {
		return srcW, srcH
	}
	sfX := float64(targetW) / float64(srcW)
	sfY := float64(targetH) / float64(srcH)
	switch {
	case sfX < sfY:
		return int(sfX * float64(srcW)), int(sfX * float64(srcH))
	default:
		return int(sfY * float64(srcW)), int(sfY * float64(srcH))
	}
}

// clampWindow raises a requested window size to the minimum, each axis
// independently. Only the initial request is clamped; resize events are
// constrained by the windowing layer instead
func clampWindow(width int, height int) (int, int) {
	if width < minWinDim {
		width = minWinDim
	}
	if height < minWinDim {
		height = minWinDim
	}
	return width, height
}

// centerOffset is the drawing offset along one axis that centers an image
// of the given size within a window of the given size, truncated toward
// zero
func centerOffset(window int, fitted int) int {
	return (window - fitted) / 2
}

// fitImage returns a copy of src sized to fit within a width x height
// window. A source that already fits is copied unchanged, byte for byte;
// anything else is resampled with a bilinear filter at the dimensions
// fitSize reports. The result is freshly allocated with a zero origin and
// a tight stride, whatever the source's bounds and stride were.
//
// Extremely lopsided sources can truncate to an empty dimension; that is
// reported as an error since an empty surface cannot be rendered.
func fitImage(src *image.RGBA, width int, height int) (*image.RGBA, error) {
	b := src.Bounds()
	outW, outH := fitSize(b.Dx(), b.Dy(), width, height)
	if outW < 1 || outH < 1 {
		return nil, fmt.Errorf("couldn't fit %dx%d image in %dx%d window: fitted size %dx%d is empty",
			b.Dx(), b.Dy(), width, height, outW, outH)
	}
	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	if outW == b.Dx() && outH == b.Dy() {
		draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
		return dst, nil
	}
	draw.BiLinear.Scale(dst, dst.Rect, src, b, draw.Over, nil)
	return dst, nil
}
