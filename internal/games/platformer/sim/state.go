package sim

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// State is one immutable snapshot of a level in play.
type State struct {
	level  *Level
	actors []Actor
	status Status
	tick   uint64
	env    *env
}

// StartOption configures Start.
type StartOption func(*env)

// WithPhysics replaces the default physics tuning.
func WithPhysics(p Physics) StartOption {
	return func(e *env) {
		e.physics = p
	}
}

// WithRand sets the random source for monster movement.
// Supply a seeded source for reproducible runs.
func WithRand(r Rand) StartOption {
	return func(e *env) {
		e.rng = r
	}
}

// Start returns the initial state of a level.
func Start(level *Level, opts ...StartOption) *State {
	e := &env{physics: DefaultPhysics()}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &State{
		level:  level,
		actors: level.StartActors(),
		status: Playing,
		env:    e,
	}
}

// Level returns the level being played. It is shared by all states.
func (s *State) Level() *Level {
	return s.level
}

// Actors returns the actors in their defined order.
func (s *State) Actors() []Actor {
	out := make([]Actor, len(s.actors))
	copy(out, s.actors)
	return out
}

// Status returns the outcome so far.
func (s *State) Status() Status {
	return s.status
}

// Tick returns how many updates produced this state.
func (s *State) Tick() uint64 {
	return s.tick
}

// Physics returns the tuning in effect.
func (s *State) Physics() Physics {
	return s.env.physics
}

// Player returns the player actor. ok is false if the state has none.
func (s *State) Player() (p Player, ok bool) {
	for _, a := range s.actors {
		if pl, isPlayer := a.(Player); isPlayer {
			return pl, true
		}
	}
	return Player{}, false
}

// Coins returns how many coins are left.
func (s *State) Coins() int {
	n := 0
	for _, a := range s.actors {
		if a.Kind() == KindCoin {
			n++
		}
	}
	return n
}

// Update advances the world by dt seconds with the given held inputs.
//
// Every actor is updated against the receiver. If the player then touches a
// lava tile the level is lost. Otherwise each actor overlapping the player
// collides in actor order. Within one tick a lethal collision wins over
// collecting the last coin, whatever their order.
//
// A state that has already ended is returned unchanged.
func (s *State) Update(dt float64, in core.InputFrame) (*State, error) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: time step %v", ErrInvalidArgument, dt)
	}
	if s.status.Terminal() {
		return s, nil
	}

	actors := make([]Actor, len(s.actors))
	for i, a := range s.actors {
		actors[i] = a.Update(dt, s, in)
	}
	next := &State{
		level:  s.level,
		actors: actors,
		status: s.status,
		tick:   s.tick + 1,
		env:    s.env,
	}

	player, ok := next.Player()
	if !ok {
		return nil, fmt.Errorf("%w: no player after tick %d", ErrInvariantViolation, next.tick)
	}

	if s.level.Touches(player.Pos(), player.Size(), TileLava) {
		return next.withStatus(Lost), nil
	}

	for _, a := range actors {
		if a.Kind() == KindPlayer || !overlap(a, player) {
			continue
		}
		if c, isCollider := a.(Collider); isCollider {
			next = c.Collide(next)
		}
	}
	return next, nil
}

// with returns a copy of s with new actors and status.
func (s *State) with(actors []Actor, status Status) *State {
	return &State{
		level:  s.level,
		actors: actors,
		status: status,
		tick:   s.tick,
		env:    s.env,
	}
}

// withStatus returns a copy of s with a new status. Actors are shared.
func (s *State) withStatus(status Status) *State {
	return s.with(s.actors, status)
}
