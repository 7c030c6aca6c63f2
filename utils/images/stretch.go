package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Insets are cap insets of resizable image in pixels.
type Insets struct {
	Top, Left, Bottom, Right int
}

// clamp makes insets fit into w x h leaving at least one pixel for the
// stretchable center.
func (in Insets) clamp(w, h int) Insets {
	fit := func(a, b, size int) (int, int) {
		a, b = max(a, 0), max(b, 0)
		if a+b >= size {
			a = min(a, (size-1)/2)
			b = min(b, size-1-a)
		}
		return a, b
	}
	in.Left, in.Right = fit(in.Left, in.Right, w)
	in.Top, in.Bottom = fit(in.Top, in.Bottom, h)
	return in
}

// Stretch resizes img to w x h the nine-slice way: corners are copied as is,
// edges are stretched along one axis, center along both. Zero insets make it
// a plain resize.
func Stretch(img image.Image, in Insets, w, h int) *image.NRGBA {
	b := img.Bounds()
	sw, sh := b.Dx(), b.Dy()
	if sw == 0 || sh == 0 || w <= 0 || h <= 0 {
		return imaging.New(max(w, 0), max(h, 0), color.Transparent)
	}
	if in == (Insets{}) {
		return imaging.Resize(img, w, h, imaging.Linear)
	}

	in = in.clamp(sw, sh)
	// destination must still hold the caps
	dl, dr := min(in.Left, w/2), min(in.Right, w-min(in.Left, w/2))
	dt, db := min(in.Top, h/2), min(in.Bottom, h-min(in.Top, h/2))

	src := imaging.Clone(img)
	dst := imaging.New(w, h, color.Transparent)

	sx := [4]int{0, in.Left, sw - in.Right, sw}
	sy := [4]int{0, in.Top, sh - in.Bottom, sh}
	dx := [4]int{0, dl, w - dr, w}
	dy := [4]int{0, dt, h - db, h}

	for row := range 3 {
		for col := range 3 {
			srcRect := image.Rect(sx[col], sy[row], sx[col+1], sy[row+1])
			tw, th := dx[col+1]-dx[col], dy[row+1]-dy[row]
			if srcRect.Empty() || tw <= 0 || th <= 0 {
				continue
			}
			part := imaging.Crop(src, srcRect)
			if part.Bounds().Dx() != tw || part.Bounds().Dy() != th {
				part = imaging.Resize(part, tw, th, imaging.Linear)
			}
			dst = imaging.Paste(dst, part, image.Pt(dx[col], dy[row]))
		}
	}
	return dst
}

// AverageColor returns the average color of img. Fully transparent images
// produce transparent black.
func AverageColor(img image.Image) color.NRGBA {
	b := img.Bounds()
	if b.Empty() {
		return color.NRGBA{}
	}
	px := imaging.Resize(img, 1, 1, imaging.Box)
	return px.NRGBAAt(0, 0)
}
