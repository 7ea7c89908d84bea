package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	atlasCols   = 16
	atlasRows   = 8
)

// Shape glyph codes below the ASCII range, drawn procedurally.
const (
	GlyphOrb     = 1 // filled circle, the rider
	GlyphRing    = 2 // circle outline, pickups
	GlyphDiamond = 3 // shard
	GlyphCross   = 4 // obstacle
	GlyphDot     = 5 // small centered dot, wave samples

	GlyphFillLight = 6 // sparse dither, empty bar segments
	GlyphFillHalf  = 7 // checker, paused bar segments
	GlyphFillFull  = 8 // solid block, filled bar segments
)

// Atlas is the procedurally generated glyph sheet: printable ASCII rendered
// with basicfont, plus the handful of shapes the scene is drawn from.
type Atlas struct {
	sheet  *ebiten.Image
	glyphs [atlasCols * atlasRows]*ebiten.Image
}

// NewAtlas builds the sheet at startup.
func NewAtlas() *Atlas {
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, atlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < atlasCols*atlasRows; code++ {
		cx := (code % atlasCols) * GlyphWidth
		cy := (code / atlasCols) * GlyphHeight

		switch {
		case code >= 32 && code <= 126:
			drawASCII(img, face, cx, cy, rune(code))
		default:
			drawShape(img, cx, cy, byte(code))
		}
	}

	sheet := ebiten.NewImageFromImage(img)
	a := &Atlas{sheet: sheet}
	for code := range a.glyphs {
		x := (code % atlasCols) * GlyphWidth
		y := (code / atlasCols) * GlyphHeight
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[code] = sheet.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a glyph code.
func (a *Atlas) Glyph(code byte) *ebiten.Image {
	if int(code) >= len(a.glyphs) {
		code = '?'
	}
	return a.glyphs[code]
}

// drawASCII renders one character; basicfont glyphs are 7x13, centered in the
// 16x16 cell with the baseline at y+13.
func drawASCII(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// drawShape renders the procedural scene glyphs in white; color comes from
// the draw-time color scale.
func drawShape(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}
	const c = 7.5 // cell center on both axes

	set := func(x, y int) {
		img.SetNRGBA(cellX+x, cellY+y, w)
	}
	dist2 := func(x, y int) float64 {
		dx := float64(x) - c
		dy := float64(y) - c
		return dx*dx + dy*dy
	}

	switch code {
	case GlyphOrb:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if dist2(x, y) <= 42 {
					set(x, y)
				}
			}
		}
	case GlyphRing:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if d := dist2(x, y); d <= 52 && d >= 27 {
					set(x, y)
				}
			}
		}
	case GlyphDiamond:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				dx := float64(x) - c
				dy := float64(y) - c
				if dx < 0 {
					dx = -dx
				}
				if dy < 0 {
					dy = -dy
				}
				if dx+dy <= 6.5 {
					set(x, y)
				}
			}
		}
	case GlyphCross:
		for i := 2; i < GlyphWidth-2; i++ {
			set(i, i)
			set(i+1, i)
			set(i, GlyphHeight-1-i)
			set(i+1, GlyphHeight-1-i)
		}
	case GlyphDot:
		for y := 6; y <= 9; y++ {
			for x := 6; x <= 9; x++ {
				set(x, y)
			}
		}
	case GlyphFillLight:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%4 == 0 {
					set(x, y)
				}
			}
		}
	case GlyphFillHalf:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%2 == 0 {
					set(x, y)
				}
			}
		}
	case GlyphFillFull:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				set(x, y)
			}
		}
	}
}
