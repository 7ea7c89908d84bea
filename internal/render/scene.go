package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/neonwake/neonwake/internal/game"
	"github.com/neonwake/neonwake/internal/modes"
)

// waveSampleStep is the horizontal spacing of hazard-wave dots.
const waveSampleStep = 18.0

// Scene draws the playfield from a session snapshot. The midline sits at
// midY; session Y offsets are world pixels around it.
type Scene struct {
	Renderer *Renderer
	Width    float64
	MidY     float64
}

// Draw renders the full world layer: midline or hazard wave, entities, then
// the rider. Screen shake jitters the whole layer.
func (sc *Scene) Draw(target *ebiten.Image, s *game.Session) {
	shakeX, shakeY := sc.shakeOffset(s)

	sc.drawMidline(target, s, shakeX, shakeY)
	sc.drawEntities(target, s, shakeX, shakeY)
	sc.drawRider(target, s, shakeX, shakeY)
}

func (sc *Scene) shakeOffset(s *game.Session) (float64, float64) {
	if s.ShakeTime <= 0 {
		return 0, 0
	}
	// Decaying jitter driven off the remaining window, no rng needed.
	amp := 6 * s.ShakeTime / 350.0
	return amp * math.Sin(s.ShakeTime*0.9), amp * math.Cos(s.ShakeTime*1.3)
}

// drawMidline renders the resting midline, replaced by the hazard wave while
// the lock's wave is up.
func (sc *Scene) drawMidline(target *ebiten.Image, s *game.Session, ox, oy float64) {
	lock := &s.Coord.Lock
	waveUp := lock.Active && lock.WaveAmplitudeScale() > 0

	for x := 0.0; x < sc.Width; x += waveSampleStep {
		if waveUp {
			y := sc.MidY + s.HazardY(x)
			sc.Renderer.Sprite(target, GlyphDot, ColorGridLit, x+ox, y+oy, 1, 1)
		} else {
			sc.Renderer.Sprite(target, GlyphDot, ColorGridDim, x+ox, sc.MidY+oy, 0.6, 1)
		}
	}
}

func (sc *Scene) drawEntities(target *ebiten.Image, s *game.Session, ox, oy float64) {
	obs, shards, pickups := s.LiveEntities()

	for _, p := range obs {
		sc.Renderer.Sprite(target, GlyphCross, ColorObstacle, p.X+ox, sc.MidY+p.Y+oy, 2, 1)
	}
	for _, p := range shards {
		sc.Renderer.Sprite(target, GlyphDiamond, ColorShard, p.X+ox, sc.MidY+p.Y+oy, 1, 1)
	}
	for _, pv := range pickups {
		x := pv.Pos.X + ox
		y := sc.MidY + pv.Pos.Y + oy
		switch pv.Kind {
		case game.PickupQuantum:
			sc.Renderer.Sprite(target, GlyphRing, ColorQuantum, x, y, 2, 1)
			sc.Renderer.Sprite(target, GlyphOrb, ColorQuantum, x, y, 0.8, 1)
		case game.PickupLetter:
			sc.Renderer.Sprite(target, GlyphRing, ColorOverdrive, x, y, 2, 1)
			sc.Renderer.Sprite(target, game.LetterGlyph(pv.Letter), ColorOverdrive, x, y, 1, 1)
		}
	}
}

// drawRider renders the two orbs and the connector beam between them. During
// the ghost grace the rider fades to the fixed ghost opacity.
func (sc *Scene) drawRider(target *ebiten.Image, s *game.Session, ox, oy float64) {
	topY, bottomY := s.OrbYs()
	x := game.RiderX + ox

	clr := uint8(ColorRider)
	alpha := 1.0
	switch s.Coord.Lock.Phase {
	case modes.PhaseGhost:
		clr = ColorGhost
		alpha = modes.GhostOpacity
	case modes.PhaseActive, modes.PhaseWarning, modes.PhaseExiting:
		clr = ColorQuantum
	}

	// Connector beam, dotted between the orbs.
	top := sc.MidY + topY + oy
	bottom := sc.MidY + bottomY + oy
	for y := top + 8; y < bottom-8; y += 10 {
		sc.Renderer.Sprite(target, GlyphDot, ColorConnector, x, y, 0.7, alpha)
	}

	sc.Renderer.Sprite(target, GlyphOrb, clr, x, top, 1.4, alpha)
	sc.Renderer.Sprite(target, GlyphOrb, clr, x, bottom, 1.4, alpha)
}
