package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

var lavaSize = V(1, 1)

// Lava is a moving hazard. Sweepers bounce off walls; drippers (those with a
// reset position) jump back to where they started.
type Lava struct {
	id       int
	pos      Vec
	speed    Vec
	reset    Vec
	hasReset bool
}

func newLava(id int, cell, speed Vec, drips bool) Lava {
	l := Lava{id: id, pos: cell, speed: speed}
	if drips {
		l.reset = cell
		l.hasReset = true
	}
	return l
}

func (l Lava) ID() int    { return l.id }
func (l Lava) Kind() Kind { return KindLava }
func (l Lava) Pos() Vec   { return l.pos }
func (l Lava) Size() Vec  { return lavaSize }
func (l Lava) Speed() Vec { return l.speed }
func (l Lava) actor()     {}

// ResetPos returns the dripping origin, if any.
func (l Lava) ResetPos() (Vec, bool) {
	return l.reset, l.hasReset
}

// Update moves the lava along its speed.
func (l Lava) Update(dt float64, s *State, _ core.InputFrame) Actor {
	next := l.pos.Plus(l.speed.Times(dt))
	switch {
	case !s.level.Touches(next, lavaSize, TileWall):
		l.pos = next
	case l.hasReset:
		l.pos = l.reset
	default:
		l.speed = l.speed.Times(-1)
	}
	return l
}

// Collide ends the level.
func (l Lava) Collide(s *State) *State {
	return s.withStatus(Lost)
}
