package value

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"sync"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"sct/utils/images"
)

// ErrNotImage is returned when resource content is not a recognized image.
var ErrNotImage = errors.New("not an image")

// Insets are resizable caps of an image: top, left, bottom and right.
type Insets struct {
	Top, Left, Bottom, Right float64
}

func (in Insets) String() string {
	return fmt.Sprintf("{%s, %s, %s, %s}", formatFloat(in.Top), formatFloat(in.Left), formatFloat(in.Bottom), formatFloat(in.Right))
}

type decoded struct {
	once sync.Once
	img  image.Image
	err  error
}

// Image is an image resource with optional cap insets. Pixels are decoded on
// first use and shared by all copies made with WithInsets.
type Image struct {
	name   string
	data   []byte
	format string
	insets Insets
	dec    *decoded
}

func (*Image) isValue() {}

// NewImage sniffs data and makes image value. SVG documents are recognized
// by content.
func NewImage(name string, data []byte) (*Image, error) {
	format := ""
	switch {
	case filetype.IsImage(data):
		kind, err := filetype.Match(data)
		if err != nil {
			return nil, fmt.Errorf("image %q: %w", name, err)
		}
		format = kind.Extension
	case isSVG(data):
		format = "svg"
	default:
		return nil, fmt.Errorf("image %q: %w", name, ErrNotImage)
	}
	return &Image{name: name, data: data, format: format, dec: &decoded{}}, nil
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 1024)]
	return bytes.Contains(head, []byte("<svg"))
}

// Name returns resource name image was loaded from.
func (i *Image) Name() string { return i.name }

// Bytes returns encoded image, it must not be modified.
func (i *Image) Bytes() []byte { return i.data }

// Format returns image format as file extension, e.g. "png" or "svg".
func (i *Image) Format() string { return i.format }

// Insets returns cap insets.
func (i *Image) Insets() Insets { return i.insets }

// Resizable reports whether image has cap insets.
func (i *Image) Resizable() bool { return i.insets != (Insets{}) }

// WithInsets returns copy of image with cap insets, encoded data and decoded
// pixels are shared with the original.
func (i *Image) WithInsets(in Insets) *Image {
	c := *i
	c.insets = in
	return &c
}

// Decode returns decoded pixels.
func (i *Image) Decode() (image.Image, error) {
	i.dec.once.Do(func() {
		if i.format == "svg" {
			i.dec.img, i.dec.err = images.RasterizeSVG(i.data, 0, 0)
		} else {
			i.dec.img, _, i.dec.err = image.Decode(bytes.NewReader(i.data))
		}
		if i.dec.err != nil {
			i.dec.err = fmt.Errorf("unable to decode image %q: %w", i.name, i.dec.err)
		}
	})
	return i.dec.img, i.dec.err
}

// Size returns image dimensions in pixels.
func (i *Image) Size() (Size, error) {
	if i.format == "svg" {
		w, h, err := images.SVGSize(i.data)
		if err != nil {
			return Size{}, fmt.Errorf("unable to read image %q: %w", i.name, err)
		}
		return Size{W: float64(w), H: float64(h)}, nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(i.data))
	if err != nil {
		return Size{}, fmt.Errorf("unable to read image %q: %w", i.name, err)
	}
	return Size{W: float64(cfg.Width), H: float64(cfg.Height)}, nil
}

// Stretch renders image at w x h honoring cap insets.
func (i *Image) Stretch(w, h int) (*image.NRGBA, error) {
	img, err := i.Decode()
	if err != nil {
		return nil, err
	}
	px := func(f float64) int { return int(math.Round(f)) }
	in := images.Insets{Top: px(i.insets.Top), Left: px(i.insets.Left), Bottom: px(i.insets.Bottom), Right: px(i.insets.Right)}
	return images.Stretch(img, in, w, h), nil
}

func (i *Image) String() string {
	s := fmt.Sprintf("image(%q %s)", i.name, i.format)
	if i.Resizable() {
		s += " capInsets" + i.insets.String()
	}
	return s
}

// ImageView is minimal view showing an image, it is produced for view
// destinations from image names.
type ImageView struct {
	Image *Image
}

func (*ImageView) isValue() {}

func (v *ImageView) String() string {
	return "view(" + v.Image.String() + ")"
}
