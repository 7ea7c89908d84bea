package game

import (
	"testing"

	"github.com/neonwake/neonwake/internal/config"
	"github.com/neonwake/neonwake/internal/modes"
)

const testDT = 1000.0 / 60.0

func newTestSession() *Session {
	return NewSession(config.Default(), 1)
}

// placeQuantumOrb drops the lock pickup directly on the rider's top orb.
func placeQuantumOrb(s *Session) {
	topY, _ := s.OrbYs()
	e := s.pickupBuilder.NewEntity(
		&Position{X: RiderX, Y: topY},
		&Pickup{Alive: true, Kind: PickupQuantum, Radius: pickupRadius},
	)
	s.pickups = append(s.pickups, e)
}

func placeObstacleOnRider(s *Session) {
	_, bottomY := s.OrbYs()
	e := s.obstacleBuilder.NewEntity(
		&Position{X: RiderX, Y: bottomY},
		&Obstacle{Alive: true, Radius: obstacleRadius},
	)
	s.obstacles = append(s.obstacles, e)
}

func placeShardOnRider(s *Session) {
	topY, _ := s.OrbYs()
	e := s.shardBuilder.NewEntity(
		&Position{X: RiderX, Y: topY},
		&Shard{Alive: true, Radius: shardRadius},
	)
	s.shards = append(s.shards, e)
}

func TestQuantumPickupEngagesLockAndFreezes(t *testing.T) {
	s := newTestSession()
	placeQuantumOrb(s)

	s.Tick(testDT)
	if !s.Coord.Lock.Active {
		t.Fatal("pickup did not engage the lock")
	}
	if !s.Coord.HitStop.Active() {
		t.Fatal("no hit-stop after the trigger")
	}
	if s.ShakeTime == 0 {
		t.Error("no screen shake window after the trigger")
	}

	// Frozen frames do not advance the session clock.
	clock := s.Clock
	s.Tick(testDT)
	if s.Clock != clock {
		t.Errorf("clock advanced during hit-stop: %v → %v", clock, s.Clock)
	}
}

func TestInputBufferedDuringFreezeThenApplied(t *testing.T) {
	s := newTestSession()
	placeQuantumOrb(s)
	s.Tick(testDT) // engage lock, start freeze

	s.HandleInput(false, true) // swap, buffered
	if s.Rider.GravityDir != 1 {
		t.Fatal("buffered swap applied immediately")
	}

	// Drain the freeze; the synthesized event lands on the resuming frame.
	for i := 0; i < modes.HitStopFrames; i++ {
		s.Tick(testDT)
	}
	if s.Rider.GravityDir != -1 {
		t.Error("buffered swap was never applied")
	}
}

func TestObstacleEndsRunWhenVulnerable(t *testing.T) {
	s := newTestSession()
	placeObstacleOnRider(s)
	s.Tick(testDT)
	if !s.GameOver {
		t.Fatal("obstacle contact did not end the run")
	}

	// Further ticks are no-ops.
	d := s.Distance
	s.Tick(testDT)
	if s.Distance != d {
		t.Error("simulation kept running after game over")
	}
}

func TestLockGrantsInvulnerability(t *testing.T) {
	s := newTestSession()
	placeQuantumOrb(s)
	s.Tick(testDT)
	for i := 0; i < modes.HitStopFrames; i++ {
		s.Tick(testDT) // drain the freeze so effects publish
	}

	placeObstacleOnRider(s)
	s.Tick(testDT)
	if s.GameOver {
		t.Error("rider died through quantum lock invulnerability")
	}
}

func TestOverdriveShattersObstacles(t *testing.T) {
	s := newTestSession()
	s.Coord.Overdrive.Start()
	s.Tick(testDT) // publish overdrive effects

	score := s.Score
	placeObstacleOnRider(s)
	s.Tick(testDT)
	if s.GameOver {
		t.Fatal("overdrive contact was fatal")
	}
	if s.Score <= score {
		t.Error("shattered obstacle scored nothing")
	}
}

func TestShardMultiplierUnderLock(t *testing.T) {
	base := newTestSession()
	placeShardOnRider(base)
	base.Tick(testDT)
	plainShards := base.Shards

	s := newTestSession()
	placeQuantumOrb(s)
	s.Tick(testDT)
	for i := 0; i < modes.HitStopFrames; i++ {
		s.Tick(testDT)
	}
	placeShardOnRider(s)
	s.Tick(testDT)

	if s.Shards != 2*plainShards {
		t.Errorf("locked shard value = %d, want double the plain %d", s.Shards, plainShards)
	}
}

func TestResonanceIgnitesOffStreakAndDoublesScore(t *testing.T) {
	s := newTestSession()
	for i := 0; i < modes.ResonanceStreak; i++ {
		placeShardOnRider(s)
		s.Tick(testDT)
	}
	if !s.Coord.Resonance.Active {
		t.Fatalf("streak of %d did not ignite resonance", modes.ResonanceStreak)
	}

	s.Tick(testDT) // publish resonance effects
	score := s.Score
	placeShardOnRider(s)
	s.Tick(testDT)
	if got := s.Score - score; got != 20 {
		t.Errorf("resonance shard scored %d, want 20", got)
	}
}

func TestMissedShardBreaksStreak(t *testing.T) {
	s := newTestSession()
	placeShardOnRider(s)
	s.Tick(testDT)
	placeShardOnRider(s)
	s.Tick(testDT)
	if s.Coord.Resonance.StreakCount != 2 {
		t.Fatalf("streak = %d, want 2", s.Coord.Resonance.StreakCount)
	}

	// A shard scrolling out uncollected resets the streak.
	e := s.shardBuilder.NewEntity(
		&Position{X: cullX + 1, Y: 200},
		&Shard{Alive: true, Radius: shardRadius},
	)
	s.shards = append(s.shards, e)
	s.Tick(testDT)
	if s.Coord.Resonance.StreakCount != 0 {
		t.Errorf("streak survived a missed shard: %d", s.Coord.Resonance.StreakCount)
	}
}

func TestLetterSetArmsOverdrive(t *testing.T) {
	s := newTestSession()
	for i := 0; i < LetterCount; i++ {
		topY, _ := s.OrbYs()
		e := s.pickupBuilder.NewEntity(
			&Position{X: RiderX, Y: topY},
			&Pickup{Alive: true, Kind: PickupLetter, Letter: i, Radius: pickupRadius},
		)
		s.pickups = append(s.pickups, e)
		s.Tick(testDT)
	}
	if !s.Coord.Overdrive.Active {
		t.Fatal("complete letter set did not arm overdrive")
	}
	if s.Letters.Count() != 0 {
		t.Error("letter set not cleared after arming")
	}
}

func TestSpeedRampFrozenUnderLock(t *testing.T) {
	s := newTestSession()
	placeQuantumOrb(s)
	s.Tick(testDT)
	for i := 0; i < modes.HitStopFrames; i++ {
		s.Tick(testDT)
	}

	speed := s.Speed
	for i := 0; i < 30; i++ {
		s.Tick(testDT)
	}
	if s.Speed != speed {
		t.Errorf("speed ramped under the lock: %v → %v", speed, s.Speed)
	}
}

func TestObstacleSpawnSuppressedUnderLock(t *testing.T) {
	s := newTestSession()
	placeQuantumOrb(s)
	s.Tick(testDT)
	for i := 0; i < modes.HitStopFrames; i++ {
		s.Tick(testDT)
	}

	live := func() int {
		n := 0
		for _, e := range s.obstacles {
			if s.obstacleMap.Get(e).Alive {
				n++
			}
		}
		return n
	}
	before := live()

	// Run out several obstacle intervals well inside the 8s window.
	for elapsed := 0.0; elapsed < 4*s.Cfg.ObstacleInterval; elapsed += testDT {
		s.Tick(testDT)
	}
	if live() > before {
		t.Errorf("obstacles spawned while suppressed: %d → %d", before, live())
	}
}

func TestResetReturnsSessionToStart(t *testing.T) {
	s := newTestSession()
	placeObstacleOnRider(s)
	for i := 0; i < 120; i++ {
		s.Tick(testDT)
	}
	if !s.GameOver {
		t.Fatal("setup: run should have ended")
	}

	s.Reset()
	if s.GameOver || s.Clock != 0 || s.Distance != 0 || s.Score != 0 || s.Shards != 0 {
		t.Errorf("meters survived reset: %+v", s)
	}
	if s.Coord.Lock != (modes.QuantumLockState{}) {
		t.Errorf("lock record survived reset: %+v", s.Coord.Lock)
	}
	obs, shards, pickups := s.LiveEntities()
	if len(obs)+len(shards)+len(pickups) != 0 {
		t.Errorf("entities survived reset: %d/%d/%d", len(obs), len(shards), len(pickups))
	}
}
