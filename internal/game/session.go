package game

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"

	"github.com/neonwake/neonwake/internal/config"
	"github.com/neonwake/neonwake/internal/modes"
)

const (
	// RiderX is the rider's fixed lane position.
	RiderX = 280.0

	riderRadius  = 10.0
	hazardRadius = 14.0

	// shakeDuration is the screen-shake window started by an impact.
	shakeDuration = 350.0 // ms

	cullX       = -60.0 // entities past this are recycled
	spawnX      = 1340.0
	maxMessages = 48
)

// Rider is the player: two orbs joined by the connector, riding around the
// midline. Tap thrusts against gravity; swap flips gravity to the other side.
type Rider struct {
	Y          float64 // connector center offset from the midline
	VY         float64 // px/sec
	GravityDir float64 // +1 pulls down, -1 pulls up
}

// Session is one run. It owns the clock, the mode coordinator, the rider,
// the scrolling entity world, and all meters. Everything here is
// session-scoped; two sessions never share state.
type Session struct {
	ECS   *ecs.World
	Coord *modes.Coordinator
	Log   *EventLog
	Cfg   *config.Config

	Clock    float64 // ms since run start; frozen during hit-stop
	Distance float64 // meters
	Score    int
	Shards   int
	Speed    float64 // px/sec scroll speed
	GameOver bool

	Rider   Rider
	Letters LetterSet

	// ShakeTime is the remaining screen-shake window, read by the renderer.
	ShakeTime float64

	obstacles []ecs.Entity
	shards    []ecs.Entity
	pickups   []ecs.Entity

	posMap      *ecs.Map[Position]
	obstacleMap *ecs.Map[Obstacle]
	shardMap    *ecs.Map[Shard]
	pickupMap   *ecs.Map[Pickup]

	obstacleBuilder *ecs.Map2[Position, Obstacle]
	shardBuilder    *ecs.Map2[Position, Shard]
	pickupBuilder   *ecs.Map2[Position, Pickup]

	obstacleTimer float64
	shardTimer    float64
	pickupTimer   float64

	rng *rand.Rand
}

// NewSession creates a fresh run with the given tuning and rng seed.
func NewSession(cfg *config.Config, seed uint64) *Session {
	w := ecs.NewWorld(256)
	s := &Session{
		ECS:   w,
		Coord: modes.NewCoordinator(cfg.ConnectorLength),
		Log:   NewEventLog(maxMessages),
		Cfg:   cfg,
		Speed: cfg.BaseSpeed,
		Rider: Rider{GravityDir: 1},

		posMap:      ecs.NewMap[Position](w),
		obstacleMap: ecs.NewMap[Obstacle](w),
		shardMap:    ecs.NewMap[Shard](w),
		pickupMap:   ecs.NewMap[Pickup](w),

		obstacleBuilder: ecs.NewMap2[Position, Obstacle](w),
		shardBuilder:    ecs.NewMap2[Position, Shard](w),
		pickupBuilder:   ecs.NewMap2[Position, Pickup](w),

		obstacleTimer: cfg.ObstacleInterval,
		shardTimer:    cfg.ShardInterval,
		pickupTimer:   cfg.PickupInterval / 2,

		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
	s.Log.Add("Ride the wave. Space thrusts, shift swaps sides.", MsgInfo)
	return s
}

// HandleInput routes a player input event. During hit-stop the event is
// merged into the coordinator's buffer instead of being dropped; otherwise it
// applies immediately.
func (s *Session) HandleInput(tap, swap bool) {
	if !tap && !swap {
		return
	}
	if s.GameOver {
		return
	}
	if s.Coord.HitStop.Active() {
		s.Coord.BufferInput(tap, swap, s.Clock)
		return
	}
	s.applyInput(tap, swap)
}

func (s *Session) applyInput(tap, swap bool) {
	if swap {
		s.Rider.GravityDir = -s.Rider.GravityDir
	}
	if tap {
		s.Rider.VY = -s.Cfg.TapSpeed * s.Rider.GravityDir
	}
}

// Tick advances the run by one frame of dt milliseconds. The order is fixed:
// hit-stop first (a frozen frame ends here), then the mode engine, then
// physics, scrolling, spawning, and collisions — all of which read the effect
// contract the engine just published.
func (s *Session) Tick(dt float64) {
	if s.GameOver {
		return
	}

	now := s.Clock + dt
	res := s.Coord.Step(now, dt)
	if res.InputFlushed {
		s.applyInput(res.Input.PendingTap, res.Input.PendingSwap)
	}
	if !res.Ran {
		return // frozen: the clock does not advance
	}
	s.Clock = now
	eff := res.Effects

	if !eff.FreezeSpeedRamp {
		s.Speed = math.Min(s.Speed+s.Cfg.SpeedRamp*dt, s.Cfg.MaxSpeed)
	}
	s.Distance += s.Speed * (dt / 1000.0) * eff.DistanceMultiplier / 10.0

	s.stepRider(dt)
	s.scroll(dt, eff)
	s.stepSpawner(dt, eff)
	s.resolveCollisions(eff)

	if s.ShakeTime > 0 {
		s.ShakeTime = math.Max(0, s.ShakeTime-dt)
	}
}

func (s *Session) stepRider(dt float64) {
	sec := dt / 1000.0
	s.Rider.VY += s.Cfg.Gravity * s.Rider.GravityDir * sec
	s.Rider.Y += s.Rider.VY * sec

	// The field edges are soft: clamp and kill velocity into the wall.
	half := s.Cfg.FieldHalf
	if s.Rider.Y > half {
		s.Rider.Y = half
		if s.Rider.VY > 0 {
			s.Rider.VY = 0
		}
	}
	if s.Rider.Y < -half {
		s.Rider.Y = -half
		if s.Rider.VY < 0 {
			s.Rider.VY = 0
		}
	}
}

// OrbYs returns the two orb centers, connector-length apart around the rider.
func (s *Session) OrbYs() (top, bottom float64) {
	half := s.Coord.Connector.Length / 2
	return s.Rider.Y - half, s.Rider.Y + half
}

// HazardY returns the hazard wave's Y at a lane position while the lock's
// wave is up.
func (s *Session) HazardY(x float64) float64 {
	amp := s.Cfg.WaveAmplitude * s.Coord.Lock.WaveAmplitudeScale()
	return amp * math.Sin(x*s.Cfg.WaveFrequency+s.Coord.Lock.WaveOffset)
}

// scroll moves every live entity left and recycles what leaves the field. A
// shard drifting past the rider uncollected breaks the resonance streak.
func (s *Session) scroll(dt float64, eff modes.Effects) {
	sec := dt / 1000.0
	dx := s.Speed * sec

	for _, e := range s.obstacles {
		ob := s.obstacleMap.Get(e)
		if !ob.Alive {
			continue
		}
		pos := s.posMap.Get(e)
		pos.X -= dx
		if pos.X < cullX {
			ob.Alive = false
		}
	}

	for _, e := range s.shards {
		sh := s.shardMap.Get(e)
		if !sh.Alive {
			continue
		}
		pos := s.posMap.Get(e)
		pos.X -= dx

		// Overdrive magnet: shards near the rider drift toward it.
		if eff.ShardMagnet {
			dy := s.Rider.Y - pos.Y
			ddx := RiderX - pos.X
			if math.Hypot(ddx, dy) < 180 {
				pos.X += ddx * 4 * sec
				pos.Y += dy * 4 * sec
			}
		}

		if pos.X < cullX {
			sh.Alive = false
			s.Coord.Resonance.BreakStreak()
		}
	}

	for _, e := range s.pickups {
		p := s.pickupMap.Get(e)
		if !p.Alive {
			continue
		}
		pos := s.posMap.Get(e)
		pos.X -= dx
		if pos.X < cullX {
			p.Alive = false
		}
	}
}

func (s *Session) resolveCollisions(eff modes.Effects) {
	topY, bottomY := s.OrbYs()

	for _, e := range s.pickups {
		p := s.pickupMap.Get(e)
		if !p.Alive {
			continue
		}
		pos := s.posMap.Get(e)
		if !orbsHit(pos.X, pos.Y, topY, bottomY, p.Radius+riderRadius) {
			continue
		}
		p.Alive = false
		s.collectPickup(p)
	}

	for _, e := range s.shards {
		sh := s.shardMap.Get(e)
		if !sh.Alive {
			continue
		}
		pos := s.posMap.Get(e)
		if !orbsHit(pos.X, pos.Y, topY, bottomY, sh.Radius+riderRadius) {
			continue
		}
		sh.Alive = false
		s.collectShard(eff)
	}

	for _, e := range s.obstacles {
		ob := s.obstacleMap.Get(e)
		if !ob.Alive {
			continue
		}
		pos := s.posMap.Get(e)
		if !orbsHit(pos.X, pos.Y, topY, bottomY, ob.Radius+riderRadius) {
			continue
		}
		switch {
		case eff.DestroyOnContact:
			ob.Alive = false
			s.Score += 25
			s.Log.Add("Obstacle shattered!", MsgBonus)
		case eff.Invulnerable:
			// Phase straight through.
		default:
			s.endRun()
			return
		}
	}

	// Touching the hazard wave during the lock counts against the rider.
	if s.Coord.Lock.Active {
		hy := s.HazardY(RiderX)
		if math.Abs(topY-hy) < hazardRadius || math.Abs(bottomY-hy) < hazardRadius {
			if s.Coord.RegisterMidlineHit(s.Clock) {
				s.Log.Add("LOCK SHATTERED — three wave strikes.", MsgCritical)
			}
		}
	}
}

func (s *Session) collectPickup(p *Pickup) {
	switch p.Kind {
	case PickupQuantum:
		res := s.Coord.TriggerLock(s.Clock, s.Coord.Connector.Length)
		if res.ScreenShake {
			s.ShakeTime = shakeDuration
		}
		// res.ShardRemoved: the orb entity is already recycled above, and
		// res.ImpactSound is surfaced to the presentation layer via the log.
		s.Log.Add("QUANTUM LOCK ENGAGED", MsgBonus)

	case PickupLetter:
		if s.Letters.Collect(p.Letter) {
			s.Letters.Reset()
			s.Coord.Overdrive.Start()
			s.Log.Add("OVERDRIVE!", MsgBonus)
		} else {
			s.Log.Add(fmt.Sprintf("Letter %c secured.", LetterGlyph(p.Letter)), MsgInfo)
		}
	}
}

func (s *Session) collectShard(eff modes.Effects) {
	s.Shards += int(float64(s.Cfg.ShardValue) * eff.ShardMultiplier)
	s.Score += int(10 * eff.ScoreMultiplier)

	// Resonance ignites off an unbroken streak, but never while suspended
	// under a lock — the paused window must stay parked untouched.
	if s.Coord.Resonance.RecordStreak() && !s.Coord.Resonance.Paused {
		s.Coord.Resonance.Ignite()
		s.Log.Add("HARMONIC RESONANCE ×2", MsgBonus)
	}
}

func (s *Session) endRun() {
	s.GameOver = true
	s.Log.Add(fmt.Sprintf("Run over at %.0fm. R to dive again.", s.Distance), MsgCritical)
}

// Reset starts a new run in place: every mode record back to its inactive
// literal, entities recycled, meters zeroed.
func (s *Session) Reset() {
	s.Coord.Reset(s.Cfg.ConnectorLength)
	s.Clock = 0
	s.Distance = 0
	s.Score = 0
	s.Shards = 0
	s.Speed = s.Cfg.BaseSpeed
	s.GameOver = false
	s.Rider = Rider{GravityDir: 1}
	s.Letters.Reset()
	s.ShakeTime = 0
	s.obstacleTimer = s.Cfg.ObstacleInterval
	s.shardTimer = s.Cfg.ShardInterval
	s.pickupTimer = s.Cfg.PickupInterval / 2

	for _, e := range s.obstacles {
		s.obstacleMap.Get(e).Alive = false
	}
	for _, e := range s.shards {
		s.shardMap.Get(e).Alive = false
	}
	for _, e := range s.pickups {
		s.pickupMap.Get(e).Alive = false
	}

	s.Log.Clear()
	s.Log.Add("New run. The wave is waiting.", MsgInfo)
}

// orbsHit tests both rider orbs against a circle at (x, y).
func orbsHit(x, y, topY, bottomY, r float64) bool {
	dxTop := x - RiderX
	if math.Hypot(dxTop, y-topY) < r {
		return true
	}
	return math.Hypot(dxTop, y-bottomY) < r
}
