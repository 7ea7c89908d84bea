package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is one character cell of the HUD layer.
type Cell struct {
	Glyph byte
	FG    uint8
}

// Screen is the HUD cell grid. The world layer does not go through it; smooth
// entities draw with Renderer.Sprite directly.
type Screen struct {
	Cols, Rows int
	cells      []Cell
}

// NewScreen creates a blank HUD grid.
func NewScreen(cols, rows int) *Screen {
	return &Screen{Cols: cols, Rows: rows, cells: make([]Cell, cols*rows)}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{}
	}
}

// Put writes one cell; out-of-bounds writes are dropped.
func (s *Screen) Put(x, y int, glyph byte, fg uint8) {
	if x < 0 || x >= s.Cols || y < 0 || y >= s.Rows {
		return
	}
	s.cells[y*s.Cols+x] = Cell{Glyph: glyph, FG: fg}
}

// Print writes a string left to right from (x, y).
func (s *Screen) Print(x, y int, text string, fg uint8) {
	for i := 0; i < len(text); i++ {
		s.Put(x+i, y, text[i], fg)
	}
}

// Bar draws a w-cell meter filled to frac, using solid blocks over dither.
// The paused flag switches the fill to the checker glyph.
func (s *Screen) Bar(x, y, w int, frac float64, fg uint8, paused bool) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(w) + 0.5)
	fill := byte(GlyphFillFull)
	if paused {
		fill = GlyphFillHalf
	}
	for i := 0; i < w; i++ {
		if i < filled {
			s.Put(x+i, y, fill, fg)
		} else {
			s.Put(x+i, y, GlyphFillLight, ColorGridDim)
		}
	}
}

// Renderer draws the atlas glyphs: the HUD grid and free-floating sprites.
type Renderer struct {
	Atlas *Atlas
	CellW int
	CellH int
}

// NewRenderer pairs an atlas with the on-screen cell size.
func NewRenderer(atlas *Atlas, cellW, cellH int) *Renderer {
	return &Renderer{Atlas: atlas, CellW: cellW, CellH: cellH}
}

// Fill floods the target with a palette color.
func (r *Renderer) Fill(target *ebiten.Image, clr uint8) {
	target.Fill(Palette[clr])
}

// DrawScreen renders the HUD grid over whatever is already on the target.
func (r *Renderer) DrawScreen(target *ebiten.Image, s *Screen) {
	sx := float64(r.CellW) / GlyphWidth
	sy := float64(r.CellH) / GlyphHeight
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Cols; x++ {
			cell := s.cells[y*s.Cols+x]
			if cell.Glyph == 0 || cell.Glyph == ' ' {
				continue
			}
			var op ebiten.DrawImageOptions
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(float64(x*r.CellW), float64(y*r.CellH))
			op.ColorScale.ScaleWithColor(Palette[cell.FG])
			target.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
		}
	}
}

// Sprite draws one glyph centered at sub-pixel world coordinates, scaled and
// alpha-faded. Entities that glide between cells render this way.
func (r *Renderer) Sprite(target *ebiten.Image, glyph byte, clr uint8, px, py, scale, alpha float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-GlyphWidth/2, -GlyphHeight/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(withAlpha(Palette[clr], alpha))
	target.DrawImage(r.Atlas.Glyph(glyph), &op)
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a >= 1 {
		return c
	}
	if a < 0 {
		a = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
