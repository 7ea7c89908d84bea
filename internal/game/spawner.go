package game

import (
	"github.com/neonwake/neonwake/internal/modes"
)

// Spawn tuning that is not worth a config knob.
const (
	obstacleRadius = 16.0
	shardRadius    = 7.0
	pickupRadius   = 12.0

	// quantumPickupChance is the share of rare-pickup rolls that produce the
	// quantum orb instead of an overdrive letter.
	quantumPickupChance = 0.4
)

// stepSpawner runs the interval-driven spawn decisions. Obstacle spawning is
// suppressed while the published effect contract blocks it; shards and rare
// pickups spawn regardless.
func (s *Session) stepSpawner(dt float64, eff modes.Effects) {
	s.obstacleTimer -= dt
	if s.obstacleTimer <= 0 {
		s.obstacleTimer = s.Cfg.ObstacleInterval * (0.7 + 0.6*s.rng.Float64())
		if !eff.BlockObstacleSpawn {
			s.spawnObstacle()
		}
	}

	s.shardTimer -= dt
	if s.shardTimer <= 0 {
		s.shardTimer = s.Cfg.ShardInterval * (0.8 + 0.4*s.rng.Float64())
		s.spawnShard()
	}

	s.pickupTimer -= dt
	if s.pickupTimer <= 0 {
		s.pickupTimer = s.Cfg.PickupInterval * (0.8 + 0.4*s.rng.Float64())
		s.spawnPickup()
	}
}

// laneY rolls a Y position inside the field with a margin off the edges.
func (s *Session) laneY() float64 {
	span := s.Cfg.FieldHalf - 40
	return -span + 2*span*s.rng.Float64()
}

func (s *Session) spawnObstacle() {
	for _, e := range s.obstacles {
		ob := s.obstacleMap.Get(e)
		if !ob.Alive {
			*ob = Obstacle{Alive: true, Radius: obstacleRadius}
			*s.posMap.Get(e) = Position{X: spawnX, Y: s.laneY()}
			return
		}
	}
	e := s.obstacleBuilder.NewEntity(
		&Position{X: spawnX, Y: s.laneY()},
		&Obstacle{Alive: true, Radius: obstacleRadius},
	)
	s.obstacles = append(s.obstacles, e)
}

func (s *Session) spawnShard() {
	for _, e := range s.shards {
		sh := s.shardMap.Get(e)
		if !sh.Alive {
			*sh = Shard{Alive: true, Radius: shardRadius}
			*s.posMap.Get(e) = Position{X: spawnX, Y: s.laneY()}
			return
		}
	}
	e := s.shardBuilder.NewEntity(
		&Position{X: spawnX, Y: s.laneY()},
		&Shard{Alive: true, Radius: shardRadius},
	)
	s.shards = append(s.shards, e)
}

// spawnPickup rolls the rare pickup: the quantum orb while no lock window is
// up, otherwise a letter the rider is still missing.
func (s *Session) spawnPickup() {
	pk := Pickup{Alive: true, Radius: pickupRadius}

	lockIdle := !s.Coord.Lock.Active && s.Coord.Lock.Phase != modes.PhaseGhost
	missing := s.Letters.Missing()

	switch {
	case lockIdle && (len(missing) == 0 || s.rng.Float64() < quantumPickupChance):
		pk.Kind = PickupQuantum
	case len(missing) > 0:
		pk.Kind = PickupLetter
		pk.Letter = missing[s.rng.IntN(len(missing))]
	default:
		return // nothing useful to offer this roll
	}

	for _, e := range s.pickups {
		p := s.pickupMap.Get(e)
		if !p.Alive {
			*p = pk
			*s.posMap.Get(e) = Position{X: spawnX, Y: s.laneY()}
			return
		}
	}
	e := s.pickupBuilder.NewEntity(
		&Position{X: spawnX, Y: s.laneY()},
		&pk,
	)
	s.pickups = append(s.pickups, e)
}

// LiveEntities snapshots every live entity for the renderer: obstacles,
// shards, then pickups.
func (s *Session) LiveEntities() (obs []Position, shards []Position, pickups []PickupView) {
	for _, e := range s.obstacles {
		if s.obstacleMap.Get(e).Alive {
			obs = append(obs, *s.posMap.Get(e))
		}
	}
	for _, e := range s.shards {
		if s.shardMap.Get(e).Alive {
			shards = append(shards, *s.posMap.Get(e))
		}
	}
	for _, e := range s.pickups {
		p := s.pickupMap.Get(e)
		if p.Alive {
			pickups = append(pickups, PickupView{Pos: *s.posMap.Get(e), Kind: p.Kind, Letter: p.Letter})
		}
	}
	return obs, shards, pickups
}

// PickupView is a render snapshot of one live pickup.
type PickupView struct {
	Pos    Position
	Kind   PickupKind
	Letter int
}
