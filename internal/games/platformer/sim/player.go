package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

var playerSize = V(0.8, 1.5)

// Player is the actor controlled by input. Speed is its velocity.
type Player struct {
	id    int
	pos   Vec
	speed Vec
}

// newPlayer spawns a player half a tile above its glyph cell, since it is
// one and a half tiles tall.
func newPlayer(id int, cell Vec) Player {
	return Player{id: id, pos: cell.Plus(V(0, -0.5)), speed: Zero}
}

func (p Player) ID() int    { return p.id }
func (p Player) Kind() Kind { return KindPlayer }
func (p Player) Pos() Vec   { return p.pos }
func (p Player) Size() Vec  { return playerSize }
func (p Player) Speed() Vec { return p.speed }
func (p Player) actor()     {}

// Update applies horizontal input, gravity and jumping.
// A move into a wall is discarded; the requested speed is kept.
func (p Player) Update(dt float64, s *State, in core.InputFrame) Actor {
	phys := s.env.physics
	lvl := s.level

	xSpeed := 0.0
	if in.Has(core.ActionLeft) {
		xSpeed -= phys.PlayerXSpeed
	}
	if in.Has(core.ActionRight) {
		xSpeed += phys.PlayerXSpeed
	}

	pos := p.pos
	movedX := pos.Plus(V(xSpeed*dt, 0))
	if !lvl.Touches(movedX, playerSize, TileWall) {
		pos = movedX
	}

	ySpeed := p.speed.Y + dt*phys.Gravity
	movedY := pos.Plus(V(0, ySpeed*dt))
	switch {
	case !lvl.Touches(movedY, playerSize, TileWall):
		pos = movedY
	case in.Has(core.ActionJump) && ySpeed >= 0:
		// Blocked while falling or at rest means standing on something.
		// A zero time step moves nothing, so it never blocks or starts a jump.
		ySpeed = -phys.JumpSpeed
	default:
		ySpeed = 0
	}

	return Player{id: p.id, pos: pos, speed: V(xSpeed, ySpeed)}
}
