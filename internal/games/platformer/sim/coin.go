package sim

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var coinSize = V(0.6, 0.6)

// Coin is the collectible. It bobs around a fixed base position and ignores walls.
type Coin struct {
	id     int
	pos    Vec
	base   Vec
	wobble float64
}

func newCoin(id int, cell Vec, phase float64) Coin {
	base := cell.Plus(V(0.2, 0.1))
	return Coin{id: id, pos: base, base: base, wobble: phase}
}

func (c Coin) ID() int    { return c.id }
func (c Coin) Kind() Kind { return KindCoin }
func (c Coin) Pos() Vec   { return c.pos }
func (c Coin) Size() Vec  { return coinSize }
func (c Coin) Speed() Vec { return Zero }
func (c Coin) actor()     {}

// Base returns the anchor the coin oscillates around.
func (c Coin) Base() Vec {
	return c.base
}

// Wobble returns the current oscillation phase in radians.
func (c Coin) Wobble() float64 {
	return c.wobble
}

// Update advances the oscillation phase.
func (c Coin) Update(dt float64, s *State, _ core.InputFrame) Actor {
	phys := s.env.physics
	wobble := c.wobble + dt*phys.WobbleSpeed
	offset := math.Sin(wobble) * phys.WobbleDist
	return Coin{
		id:     c.id,
		pos:    c.base.Plus(V(0, offset)),
		base:   c.base,
		wobble: wobble,
	}
}

// Collide removes the coin; taking the last one wins the level.
// A state that has already ended is returned as is.
func (c Coin) Collide(s *State) *State {
	if s.status.Terminal() {
		return s
	}

	actors := make([]Actor, 0, len(s.actors))
	coins := 0
	for _, a := range s.actors {
		if a.ID() == c.id {
			continue
		}
		if a.Kind() == KindCoin {
			coins++
		}
		actors = append(actors, a)
	}

	status := s.status
	if coins == 0 {
		status = Won
	}
	return s.with(actors, status)
}
