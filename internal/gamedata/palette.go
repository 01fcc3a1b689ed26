package gamedata

import "github.com/gdamore/tcell/v2"

// TileStyleDef describes how one tile kind is drawn.
type TileStyleDef struct {
	Tile  string `json:"tile"`  // Tile name as returned by world.Tile.String()
	Glyph string `json:"glyph"` // Single character for rendering
	Color string `json:"color"` // Hex color code (e.g., "#A9A9A9")
	Bold  bool   `json:"bold"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileStyleDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// Style returns the tcell style for this tile.
func (d *TileStyleDef) Style() tcell.Style {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		color = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(color).Bold(d.Bold)
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Tiles []TileStyleDef `json:"tiles"`
}

// Palette maps tile names to their styles.
type Palette map[string]TileStyleDef

// LoadPalette loads the tile palette from the embedded palette.json.
func LoadPalette() (Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	palette := make(Palette, len(file.Tiles))
	for _, def := range file.Tiles {
		palette[def.Tile] = def
	}
	return palette, nil
}

// StyleFor returns the style definition for a tile name. Unknown tiles get
// a plain '?' glyph.
func (p Palette) StyleFor(tile string) TileStyleDef {
	if def, ok := p[tile]; ok {
		return def
	}
	return TileStyleDef{Tile: tile, Glyph: "?", Color: "#FFFFFF"}
}
