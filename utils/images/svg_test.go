package images

import "testing"

func TestRasterizeSVG(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50"><rect width="100" height="50" fill="#ff0000"/></svg>`)

	tests := []struct {
		name             string
		targetW, targetH int
		wantW, wantH     int
	}{
		{"intrinsic", 0, 0, 100, 50},
		{"scale_by_width", 200, 0, 200, 100},
		{"scale_by_height", 0, 200, 400, 200},
		{"fit_box", 150, 150, 150, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := RasterizeSVG(svg, tt.targetW, tt.targetH)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if img.Bounds().Dx() != tt.wantW || img.Bounds().Dy() != tt.wantH {
				t.Fatalf("unexpected bounds: %v", img.Bounds())
			}
		})
	}
}

func TestRasterizeSVG_ClampsHugeViewBox(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100000 50000"></svg>`)
	img, err := RasterizeSVG(svg, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds().Dx() > maxRasterDim || img.Bounds().Dy() > maxRasterDim {
		t.Fatalf("raster not clamped: %v", img.Bounds())
	}
}

func TestSVGSize(t *testing.T) {
	w, h, err := SVGSize([]byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 16"></svg>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 24 || h != 16 {
		t.Fatalf("size = %dx%d, want 24x16", w, h)
	}
}
