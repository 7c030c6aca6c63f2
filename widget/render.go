package widget

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"sct/value"
)

// maxRenderDim limits size of rendered widgets.
const maxRenderDim = 4096

// ErrEmptyFrame is returned when widget has nothing to render.
var ErrEmptyFrame = errors.New("widget frame is empty")

// Render draws widget background: background color, then background image
// stretched over the frame honoring its cap insets. Alpha of the view is
// applied to the image.
func Render(w Widget) (*image.NRGBA, error) {
	v := w.Base()
	width, height := dim(v.Frame.W), dim(v.Frame.H)
	if width == 0 || height == 0 {
		return nil, ErrEmptyFrame
	}

	var fill color.Color = color.Transparent
	if v.BackgroundColor != nil {
		fill = v.BackgroundColor
	}
	dst := imaging.New(width, height, fill)
	if v.Hidden {
		return dst, nil
	}

	bg := background(w)
	if bg == nil {
		return dst, nil
	}
	img, err := bg.Stretch(width, height)
	if err != nil {
		return nil, err
	}
	return imaging.Overlay(dst, img, image.Point{}, math.Max(0, math.Min(1, v.Alpha))), nil
}

func background(w Widget) *value.Image {
	if nb, ok := w.(*NavigationBar); ok && nb.BackgroundImage != nil {
		return nb.BackgroundImage
	}
	if iv, ok := w.(*ImageView); ok && iv.Image != nil {
		return iv.Image
	}
	if bv := w.Base().BackgroundView; bv != nil {
		return bv.Image
	}
	return nil
}

func dim(f float64) int {
	if f <= 0 || math.IsNaN(f) {
		return 0
	}
	return int(math.Min(math.Round(f), maxRenderDim))
}
