package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

var monsterSize = V(1, 1)

// Monster patrols horizontally with a jittery stride.
type Monster struct {
	id    int
	pos   Vec
	speed Vec
}

func newMonster(id int, cell Vec) Monster {
	return Monster{id: id, pos: cell, speed: V(4, 0)}
}

func (m Monster) ID() int    { return m.id }
func (m Monster) Kind() Kind { return KindMonster }
func (m Monster) Pos() Vec   { return m.pos }
func (m Monster) Size() Vec  { return monsterSize }
func (m Monster) Speed() Vec { return m.speed }
func (m Monster) actor()     {}

// stride picks this tick's direction multiplier in [-5, -1].
// Zero cannot come out of the range but maps to +1 if it ever does.
func stride(r Rand) float64 {
	factor := r.Intn(5) - 5
	if factor == 0 {
		return 1
	}
	return float64(factor)
}

// Update moves the monster by a random multiple of its patrol speed.
// The multiplier is not stored; on a wall hit the patrol speed reverses.
func (m Monster) Update(dt float64, s *State, _ core.InputFrame) Actor {
	dir := stride(s.env.rng)
	next := m.pos.Plus(m.speed.Times(dt).Times(dir))
	if !s.level.Touches(next, monsterSize, TileWall) {
		m.pos = next
		return m
	}
	m.speed = m.speed.Times(-1)
	return m
}

// Collide ends the level.
func (m Monster) Collide(s *State) *State {
	return s.withStatus(Lost)
}
