package platformer

import "math"

// Snapshot is a compact summary of the campaign for determinism checks.
type Snapshot struct {
	Tick       uint64
	LevelIndex int
	Lives      int
	Score      int
	Phase      string
	Status     string
	Coins      int
	PlayerX    float64
	PlayerY    float64
}

// Snapshot returns the current campaign state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		LevelIndex: g.levelIndex,
		Lives:      g.lives,
		Score:      g.score,
		Phase:      g.phase,
	}
	if g.state == nil {
		return snap
	}

	snap.Tick = g.state.Tick()
	snap.Status = g.state.Status().String()
	snap.Coins = g.state.Coins()
	if p, ok := g.state.Player(); ok {
		snap.PlayerX = p.Pos().X
		snap.PlayerY = p.Pos().Y
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	for _, r := range snap.Phase + snap.Status {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	return h
}
