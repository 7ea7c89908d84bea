package render

import "image/color"

// Neon palette indices. The scene leans dark; the bright entries are for
// whatever currently matters.
const (
	ColorVoid      = 0  // background
	ColorGridDim   = 1  // midline and furniture
	ColorGridLit   = 2  // midline while a wave rides it
	ColorRider     = 3  // rider orbs
	ColorConnector = 4  // the connector beam
	ColorShard     = 5
	ColorObstacle  = 6
	ColorQuantum   = 7  // quantum orb and lock accents
	ColorOverdrive = 8
	ColorResonance = 9
	ColorGhost     = 10 // rider during the ghost grace
	ColorText      = 11
	ColorTextDim   = 12
	ColorWarning   = 13
	ColorCritical  = 14
	ColorFlash     = 15 // full-bright highlights
)

// Palette is the 16-entry neon palette.
var Palette = [16]color.RGBA{
	{8, 6, 18, 255},     // 0: void
	{46, 40, 84, 255},   // 1: grid dim
	{96, 80, 180, 255},  // 2: grid lit
	{90, 240, 255, 255}, // 3: rider cyan
	{60, 160, 255, 255}, // 4: connector blue
	{255, 214, 90, 255}, // 5: shard gold
	{255, 70, 110, 255}, // 6: obstacle magenta-red
	{190, 120, 255, 255},// 7: quantum violet
	{255, 150, 40, 255}, // 8: overdrive orange
	{80, 255, 170, 255}, // 9: resonance green
	{150, 170, 200, 255},// 10: ghost silver
	{230, 235, 245, 255},// 11: text
	{120, 125, 150, 255},// 12: text dim
	{255, 220, 60, 255}, // 13: warning
	{255, 60, 60, 255},  // 14: critical
	{255, 255, 255, 255},// 15: flash white
}
