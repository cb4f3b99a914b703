package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/spin-wheel/layout"
)

func TestToTcell(t *testing.T) {
	c := colorful.Color{R: 1, G: 0.5, B: 0}
	got := ToTcell(c)
	r, g, b := got.RGB()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("ToTcell = (%d,%d,%d), want (255,128,0)", r, g, b)
	}
}

func TestDimMovesTowardBackground(t *testing.T) {
	for i, c := range layout.Palette {
		d := Dim(c)
		if d.DistanceLab(colorfulBackground) >= c.DistanceLab(colorfulBackground) {
			t.Errorf("palette %d: dimmed color not closer to background", i)
		}
		if !d.IsValid() {
			t.Errorf("palette %d: dimmed color out of gamut", i)
		}
	}
}

func TestHighlightMovesTowardWhite(t *testing.T) {
	for i, c := range layout.Palette {
		h := Highlight(c)
		if h.DistanceLab(colorfulWhite) >= c.DistanceLab(colorfulWhite) {
			t.Errorf("palette %d: highlight not closer to white", i)
		}
	}
}

func TestTextOn(t *testing.T) {
	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(255, 255, 255)

	if got := TextOn(layout.Palette[2]); got != black {
		t.Error("expected dark text on yellow")
	}
	if got := TextOn(layout.Palette[0]); got != white {
		t.Error("expected light text on blue")
	}
}
