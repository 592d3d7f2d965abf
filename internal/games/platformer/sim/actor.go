package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// Kind identifies an actor variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindLava
	KindCoin
	KindMonster
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindLava:
		return "lava"
	case KindCoin:
		return "coin"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Actor is a moving entity in a level. The set of implementations is closed:
// Player, Lava, Coin and Monster.
//
// Update returns the actor's value after dt seconds. It reads the pre-tick
// state only, so actors can be updated in any order.
type Actor interface {
	// ID is the actor's index in the level's start actors. It never changes.
	ID() int
	Kind() Kind
	Pos() Vec
	Size() Vec
	Speed() Vec
	Update(dt float64, s *State, in core.InputFrame) Actor

	actor()
}

// Collider is implemented by actors that react to touching the player.
type Collider interface {
	Collide(s *State) *State
}

// Lethal reports whether touching the actor ends the level in a loss.
func Lethal(a Actor) bool {
	k := a.Kind()
	return k == KindLava || k == KindMonster
}

// overlap is a strict AABB test: boxes that only share an edge do not overlap.
func overlap(a, b Actor) bool {
	ap, as := a.Pos(), a.Size()
	bp, bs := b.Pos(), b.Size()
	return ap.X+as.X > bp.X &&
		ap.X < bp.X+bs.X &&
		ap.Y+as.Y > bp.Y &&
		ap.Y < bp.Y+bs.Y
}
