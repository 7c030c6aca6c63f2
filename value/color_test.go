package value

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "#CC33FF", want: "#cc33ff"},
		{in: "#cc33ff80", want: "#cc33ff80"},
		{in: "#000000ff", want: "#000000"},
		{in: "#FFF", wantErr: true},
		{in: "#CC33FF8", wantErr: true},
		{in: "#cc33ffzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := c.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColor_ImplementsColor(t *testing.T) {
	var c color.Color = RGB(255, 0, 0, 128)
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	if got.R != 255 || got.G != 0 || got.B != 0 || got.A != 128 {
		t.Errorf("NRGBA = %v, want {255 0 0 128}", got)
	}
}

func TestNamedColors(t *testing.T) {
	for name, f := range namedColors {
		c := f()
		if c.A < 0 || c.A > 1 || !c.IsValid() {
			t.Errorf("%s: invalid color %v", name, c)
		}
	}
	a, _ := NamedColor("redColor")
	b, _ := NamedColor("redColor")
	if a == b {
		t.Error("named constructor must return fresh value")
	}
	if _, ok := NamedColor("RedColor"); ok {
		t.Error("color names are case sensitive")
	}
}

func TestEnumeration(t *testing.T) {
	e := NewEnumeration("Kind", KindText, KindReal)
	if v, ok := e.Lookup("KindReal"); !ok || v != int(KindReal) {
		t.Errorf("Lookup(KindReal) = %d, %v", v, ok)
	}
	if v, ok := e.Lookup("text"); !ok || v != int(KindText) {
		t.Errorf("Lookup(text) = %d, %v", v, ok)
	}
	if _, ok := e.Lookup("KindImage"); ok {
		t.Error("unexpected constant")
	}
	if !e.Contains(int(KindReal)) || e.Contains(int(KindImage)) {
		t.Error("Contains() mismatch")
	}
	if got := len(e.Names()); got != 4 {
		t.Errorf("Names() has %d entries, want 4", got)
	}
	var none *Enumeration
	if _, ok := none.Lookup("x"); ok || none.Contains(0) || none.Names() != nil {
		t.Error("nil enumeration must be empty")
	}
}
