package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadPresetRegistry(t *testing.T) {
	registry, err := LoadPresetRegistry()
	if err != nil {
		t.Fatalf("LoadPresetRegistry() failed: %v", err)
	}

	if registry.GetByID(DefaultPresetID) == nil {
		t.Fatalf("default preset %q missing", DefaultPresetID)
	}

	for _, p := range registry.All() {
		if p.Width < 1 || p.Height < 1 {
			t.Errorf("preset %s: dimensions %dx%d", p.ID, p.Width, p.Height)
		}
		if p.Density < 0 || p.Density > 1 {
			t.Errorf("preset %s: density %v", p.ID, p.Density)
		}
		if p.PlayerLife < 1 || p.MonsterLife < 1 || p.MonsterCount < 1 {
			t.Errorf("preset %s: non-positive life or count", p.ID)
		}
	}
}

func TestPresetLookup(t *testing.T) {
	registry, err := LoadPresetRegistry()
	if err != nil {
		t.Fatal(err)
	}

	tiny, err := registry.Lookup("tiny")
	if err != nil {
		t.Fatalf("Lookup(tiny) failed: %v", err)
	}
	if tiny.Width != 3 || tiny.MonsterCount != 1 {
		t.Errorf("tiny preset = %+v", tiny)
	}

	if _, err := registry.Lookup("nope"); err == nil {
		t.Error("Lookup of unknown preset should fail")
	}
}

func TestLoadPalette(t *testing.T) {
	palette, err := LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette() failed: %v", err)
	}

	tests := []struct {
		tile  string
		glyph rune
	}{
		{"wall", '#'},
		{"path", ' '},
		{"player", '@'},
		{"monster", 'M'},
		{"undefined", '?'},
	}

	for _, tt := range tests {
		def := palette.StyleFor(tt.tile)
		if got := def.GlyphRune(); got != tt.glyph {
			t.Errorf("StyleFor(%q).GlyphRune() = %q, want %q", tt.tile, got, tt.glyph)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    tcell.Color
		wantErr bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"00ff00", tcell.NewRGBColor(0, 255, 0), false},
		{"#00F", tcell.NewRGBColor(0, 0, 255), false},
		{"#12345", tcell.ColorDefault, true},
		{"#GGGGGG", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
