package game

// ECS components for the scrolling lane. Entities are recycled through their
// Alive flags rather than destroyed, so the archetype tables stay stable at
// runner entity counts.

// Position is a world-space component. X scrolls left past the rider; Y is
// the offset from the midline, positive downward.
type Position struct {
	X, Y float64
}

// Obstacle is a fatal (outside bonus modes) lane hazard.
type Obstacle struct {
	Alive  bool
	Radius float64
}

// Shard is the collectible currency dot.
type Shard struct {
	Alive  bool
	Radius float64
}

// PickupKind discriminates the rare pickups.
type PickupKind uint8

const (
	PickupQuantum PickupKind = iota // starts the quantum lock
	PickupLetter                    // one overdrive letter
)

// Pickup is a rare collectible: the quantum orb or an overdrive letter.
type Pickup struct {
	Alive  bool
	Kind   PickupKind
	Letter int // index into OverdriveWord when Kind == PickupLetter
	Radius float64
}
