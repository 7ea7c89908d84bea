package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/neonwake/neonwake/internal/config"
	"github.com/neonwake/neonwake/internal/game"
	"github.com/neonwake/neonwake/internal/modes"
	"github.com/neonwake/neonwake/internal/render"
	"github.com/neonwake/neonwake/internal/save"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Neonwake"

	cellWidth  = 16
	cellHeight = 16
	gridCols   = screenWidth / cellWidth   // 80
	gridRows   = screenHeight / cellHeight // 45

	midY = screenHeight / 2

	// Fixed-timestep simulation: one Update call is one 60 Hz frame.
	frameMs = 1000.0 / 60.0
)

const (
	// Fixed HUD positions
	meterX   = 2
	meterW   = 24
	commsRow = gridRows - 10 // message log
	commsMax = 8
)

// Game is the Ebitengine game struct. It owns rendering, input, and the run
// records store. All gameplay state lives in the session.
type Game struct {
	renderer *render.Renderer
	hud      *render.Screen
	scene    *render.Scene
	session  *game.Session
	store    *save.Store

	// recorded flags that the finished run has already been written to the
	// records store, so a run is counted exactly once.
	recorded bool
}

func NewGame(cfg *config.Config, store *save.Store, seed uint64) *Game {
	atlas := render.NewAtlas()
	renderer := render.NewRenderer(atlas, cellWidth, cellHeight)

	g := &Game{
		renderer: renderer,
		hud:      render.NewScreen(gridCols, gridRows),
		scene:    &render.Scene{Renderer: renderer, Width: screenWidth, MidY: midY},
		session:  game.NewSession(cfg, seed),
		store:    store,
	}
	g.drawHUD()
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	s := g.session
	if s.GameOver {
		if !g.recorded {
			g.recorded = true
			if best, err := g.store.RecordRun(s.Distance, s.Score); err != nil {
				log.Printf("save records: %v", err)
			} else if best {
				s.Log.Add("NEW RECORD.", game.MsgBonus)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			s.Reset()
			g.recorded = false
		}
		g.drawHUD()
		return nil
	}

	tap := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	swap := inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyShiftRight)
	s.HandleInput(tap, swap)

	s.Tick(frameMs)
	g.drawHUD()
	return nil
}

func (g *Game) drawHUD() {
	hud := g.hud
	hud.Clear()
	s := g.session

	// Top line: run meters.
	hud.Print(meterX, 0, fmt.Sprintf("DIST %6.0fm", s.Distance), render.ColorText)
	hud.Print(meterX+14, 0, fmt.Sprintf("SCORE %7d", s.Score), render.ColorText)
	hud.Print(meterX+30, 0, fmt.Sprintf("SHARDS %5d", s.Shards), render.ColorShard)

	// Letter set, top right.
	for i := 0; i < game.LetterCount; i++ {
		clr := uint8(render.ColorTextDim)
		if s.Letters.Has(i) {
			clr = render.ColorOverdrive
		}
		hud.Put(gridCols-2-2*(game.LetterCount-1-i), 0, game.LetterGlyph(i), clr)
	}

	g.drawModeMeters()
	g.drawComms()

	if s.GameOver {
		g.drawGameOver()
	} else {
		hud.Print(meterX, gridRows-1, "SPACE: thrust  SHIFT: swap sides  ESC: quit", render.ColorTextDim)
	}
}

// drawModeMeters shows the mode in force and one bar per live window. A
// parked window renders as a checkered bar so the player can see it waiting.
func (g *Game) drawModeMeters() {
	hud := g.hud
	c := g.session.Coord
	now := g.session.Clock
	row := 2

	mode := c.PriorityMode()
	if mode != modes.ModeNone {
		clr := uint8(render.ColorQuantum)
		label := mode.String()
		switch mode {
		case modes.ModeOverdrive:
			clr = render.ColorOverdrive
		case modes.ModeResonance:
			clr = render.ColorResonance
		case modes.ModeQuantumLock:
			if c.Lock.Phase == modes.PhaseGhost {
				clr = render.ColorGhost
				label = "GHOST"
			} else if c.Lock.Phase == modes.PhaseWarning || c.Lock.Phase == modes.PhaseExiting {
				clr = render.ColorWarning
			}
		}
		hud.Print(meterX, row, label, clr)
		row++
	}

	if c.Lock.Active {
		hud.Bar(meterX, row, meterW, 1-c.Lock.Progress(now), render.ColorQuantum, false)
		row++
	} else if c.Lock.Phase == modes.PhaseGhost {
		hud.Bar(meterX, row, meterW, c.Lock.GhostRemaining(now)/modes.GhostDuration, render.ColorGhost, false)
		row++
	}

	if c.Overdrive.Active {
		hud.Bar(meterX, row, meterW, c.Overdrive.Timer/modes.OverdriveDuration, render.ColorOverdrive, false)
		row++
	} else if c.Lock.PausedOverdriveTime > 0 {
		hud.Bar(meterX, row, meterW, c.Lock.PausedOverdriveTime/modes.OverdriveDuration, render.ColorOverdrive, true)
		row++
	}

	if c.Resonance.Active {
		hud.Bar(meterX, row, meterW, c.Resonance.RemainingTime/modes.ResonanceDuration, render.ColorResonance, c.Resonance.Paused)
		row++
	} else if c.Resonance.StreakCount > 0 {
		hud.Print(meterX, row, fmt.Sprintf("streak %d/%d", c.Resonance.StreakCount, modes.ResonanceStreak), render.ColorTextDim)
	}
}

func (g *Game) drawComms() {
	msgs := g.session.Log.Recent(commsMax)
	for i, msg := range msgs {
		g.hud.Print(meterX, commsRow+i, msg.Text, msgColor(msg.Priority))
	}
}

func (g *Game) drawGameOver() {
	hud := g.hud
	r := g.store.Records()
	mid := gridRows / 2

	center := func(y int, text string, clr uint8) {
		hud.Print((gridCols-len(text))/2, y, text, clr)
	}
	center(mid-2, "WAVE LOST", render.ColorCritical)
	center(mid, fmt.Sprintf("distance %.0fm   score %d", g.session.Distance, g.session.Score), render.ColorText)
	center(mid+1, fmt.Sprintf("best %.0fm / %d over %d runs", r.BestDistance, r.BestScore, r.TotalRuns), render.ColorTextDim)
	center(mid+3, "R: ride again   ESC: quit", render.ColorTextDim)
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgCritical:
		return render.ColorCritical
	case game.MsgWarning:
		return render.ColorWarning
	case game.MsgBonus:
		return render.ColorRider
	default:
		return render.ColorTextDim
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Fill(screen, render.ColorVoid)
	g.scene.Draw(screen, g.session)
	g.renderer.DrawScreen(screen, g.hud)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg, err := config.Load("neonwake.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Records survive across launches; without storage the game still runs,
	// it just forgets.
	manager, err := gdata.Open(gdata.Config{AppName: "neonwake"})
	if err != nil {
		log.Printf("open data storage: %v", err)
		manager = nil
	}
	store, err := save.NewStore(manager)
	if err != nil {
		log.Fatalf("open records: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	seed := uint64(time.Now().UnixNano())
	if err := ebiten.RunGame(NewGame(cfg, store, seed)); err != nil {
		log.Fatal(err)
	}
}
