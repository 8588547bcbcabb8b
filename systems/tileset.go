package systems

import (
	"image/color"

	"scavenger-board/data"
)

// TileAppearance is how a prefab is drawn by the simple renderers
type TileAppearance struct {
	Glyph rune
	FG    color.RGBA
	BG    color.RGBA
}

var (
	floorBG = color.RGBA{40, 32, 28, 255}
	wallBG  = color.RGBA{20, 16, 14, 255}
)

// Tileset maps prefabs to glyphs and colors
var Tileset = map[data.Prefab]TileAppearance{
	data.OuterWall1: {'#', color.RGBA{110, 90, 80, 255}, wallBG},
	data.OuterWall2: {'#', color.RGBA{120, 100, 85, 255}, wallBG},
	data.OuterWall3: {'#', color.RGBA{100, 85, 75, 255}, wallBG},
	data.Floor1:     {'.', color.RGBA{90, 75, 60, 255}, floorBG},
	data.Floor2:     {'.', color.RGBA{95, 78, 62, 255}, floorBG},
	data.Floor3:     {'.', color.RGBA{85, 72, 58, 255}, floorBG},
	data.Floor4:     {',', color.RGBA{90, 75, 60, 255}, floorBG},
	data.Floor5:     {',', color.RGBA{95, 78, 62, 255}, floorBG},
	data.Floor6:     {'.', color.RGBA{80, 70, 55, 255}, floorBG},
	data.Floor7:     {'\'', color.RGBA{90, 75, 60, 255}, floorBG},
	data.Floor8:     {'.', color.RGBA{100, 82, 66, 255}, floorBG},
	data.Wall1:      {'=', color.RGBA{160, 120, 80, 255}, floorBG},
	data.Wall2:      {'=', color.RGBA{150, 115, 75, 255}, floorBG},
	data.Wall3:      {'%', color.RGBA{160, 120, 80, 255}, floorBG},
	data.Wall4:      {'%', color.RGBA{150, 115, 75, 255}, floorBG},
	data.Wall5:      {'&', color.RGBA{140, 110, 70, 255}, floorBG},
	data.Wall6:      {'&', color.RGBA{170, 125, 85, 255}, floorBG},
	data.Wall7:      {'=', color.RGBA{130, 100, 65, 255}, floorBG},
	data.Wall8:      {'%', color.RGBA{175, 130, 90, 255}, floorBG},
	data.Food:       {'f', color.RGBA{220, 60, 60, 255}, floorBG},
	data.Soda:       {'s', color.RGBA{60, 160, 220, 255}, floorBG},
	data.Enemy1:     {'z', color.RGBA{120, 200, 90, 255}, floorBG},
	data.Enemy2:     {'Z', color.RGBA{200, 90, 200, 255}, floorBG},
	data.Exit:       {'>', color.RGBA{255, 255, 255, 255}, color.RGBA{60, 60, 20, 255}},
	data.Player:     {'@', color.RGBA{255, 220, 120, 255}, floorBG},
}

// GetTileAppearance returns the appearance for a prefab
func GetTileAppearance(p data.Prefab) TileAppearance {
	if appearance, exists := Tileset[p]; exists {
		return appearance
	}

	// Return a default if the prefab isn't defined
	return TileAppearance{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255}, // Magenta for undefined tiles
		BG:    color.RGBA{0, 0, 0, 255},
	}
}
