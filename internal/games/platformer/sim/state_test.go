package sim_test

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// fixedRand always returns the same values.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(int) int     { return r.n }
func (r fixedRand) Float64() float64 { return r.f }

// strideOne makes every monster move exactly one patrol step backwards.
var strideOne = sim.WithRand(fixedRand{n: 4})

func mustStart(t *testing.T, plan string, opts ...sim.StartOption) *sim.State {
	t.Helper()
	lvl, err := sim.ParseLevel(plan)
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}
	return sim.Start(lvl, opts...)
}

func mustUpdate(t *testing.T, s *sim.State, dt float64, in core.InputFrame) *sim.State {
	t.Helper()
	next, err := s.Update(dt, in)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	return next
}

func mustPlayer(t *testing.T, s *sim.State) sim.Player {
	t.Helper()
	p, ok := s.Player()
	if !ok {
		t.Fatal("state has no player")
	}
	return p
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func plan(rows ...string) string {
	return strings.Join(rows, "\n")
}

func TestSampleScenario(t *testing.T) {
	s := mustStart(t, "#####\n#@.o#\n#####", strideOne)
	before := mustPlayer(t, s)

	next := mustUpdate(t, s, 0.2, core.NewInputFrame())

	if next.Status() != sim.Playing {
		t.Fatalf("status = %v, expected playing", next.Status())
	}
	after := mustPlayer(t, next)
	if after.Pos().X != before.Pos().X {
		t.Errorf("player x moved from %v to %v without input", before.Pos().X, after.Pos().X)
	}
	if after.Pos().Y < before.Pos().Y {
		t.Errorf("player rose from %v to %v without input", before.Pos().Y, after.Pos().Y)
	}

	var coin sim.Coin
	for _, a := range next.Actors() {
		if c, ok := a.(sim.Coin); ok {
			coin = c
		}
	}
	if !approx(coin.Wobble(), 8*0.2) {
		t.Errorf("coin phase = %v, expected %v", coin.Wobble(), 8*0.2)
	}
	if coin.Base() != sim.V(3.2, 1.1) {
		t.Errorf("coin base moved to %v", coin.Base())
	}
	wantY := 1.1 + math.Sin(1.6)*0.07
	if !approx(coin.Pos().Y, wantY) {
		t.Errorf("coin y = %v, expected %v", coin.Pos().Y, wantY)
	}
	if next.Tick() != 1 {
		t.Errorf("Tick() = %d, expected 1", next.Tick())
	}
}

func TestUpdateDoesNotMutatePrevious(t *testing.T) {
	s := mustStart(t, plan("#####", "#...#", "#@o.#", "#####"))
	before := s.Actors()

	next := mustUpdate(t, s, 0.1, core.Frame(core.ActionRight))
	if next.Status() != sim.Won {
		t.Fatalf("status = %v, expected won", next.Status())
	}

	if s.Status() != sim.Playing {
		t.Error("previous state status changed")
	}
	after := s.Actors()
	if len(after) != len(before) {
		t.Fatal("previous state actors changed")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("previous actor %d changed from %v to %v", i, before[i], after[i])
		}
	}
}

func TestJumpArc(t *testing.T) {
	rows := make([]string, 0, 10)
	for range 8 {
		rows = append(rows, "#.....#")
	}
	rows = append(rows, "#..@..#", "#######")
	s := mustStart(t, plan(rows...))
	dt := 0.05

	// Standing still: gravity is cancelled by the floor every tick.
	s = mustUpdate(t, s, dt, core.NewInputFrame())
	if p := mustPlayer(t, s); p.Speed().Y != 0 || p.Pos().Y != 7.5 {
		t.Fatalf("grounded player pos %v speed %v", p.Pos(), p.Speed())
	}

	s = mustUpdate(t, s, dt, core.Frame(core.ActionJump))
	p := mustPlayer(t, s)
	if p.Speed().Y != -17 {
		t.Fatalf("speed.y after jump = %v, expected -17", p.Speed().Y)
	}
	if p.Pos().Y != 7.5 {
		t.Errorf("jump tick should not move the player, y = %v", p.Pos().Y)
	}

	prevSpeed, prevY := p.Speed().Y, p.Pos().Y
	for i := range 8 {
		s = mustUpdate(t, s, dt, core.NewInputFrame())
		p = mustPlayer(t, s)
		if !approx(p.Speed().Y, prevSpeed+30*dt) {
			t.Fatalf("tick %d: speed.y = %v, expected %v", i, p.Speed().Y, prevSpeed+30*dt)
		}
		if p.Pos().Y >= prevY {
			t.Fatalf("tick %d: player should still be rising, y %v -> %v", i, prevY, p.Pos().Y)
		}
		prevSpeed, prevY = p.Speed().Y, p.Pos().Y
	}

	// Holding jump in mid-air does nothing beyond gravity.
	s = mustUpdate(t, s, dt, core.Frame(core.ActionJump))
	if p = mustPlayer(t, s); !approx(p.Speed().Y, prevSpeed+30*dt) {
		t.Errorf("mid-air jump changed speed to %v", p.Speed().Y)
	}
}

func TestJumpNeedsTimeToPass(t *testing.T) {
	s := mustStart(t, plan("#.....#", "#.....#", "#..@..#", "#######"))

	s = mustUpdate(t, s, 0, core.Frame(core.ActionJump))
	if p := mustPlayer(t, s); p.Speed().Y != 0 || p.Pos().Y != 1.5 {
		t.Fatalf("zero step jump: pos %v speed %v, expected rest at y 1.5", p.Pos(), p.Speed())
	}

	s = mustUpdate(t, s, 0.05, core.Frame(core.ActionJump))
	if p := mustPlayer(t, s); p.Speed().Y != -17 {
		t.Errorf("speed.y after jump = %v, expected -17", p.Speed().Y)
	}
}

func TestPlayerCustomPhysics(t *testing.T) {
	phys := sim.DefaultPhysics()
	phys.JumpSpeed = 10
	phys.PlayerXSpeed = 2

	s := mustStart(t, plan("#....#", "#....#", "#.@..#", "######"), sim.WithPhysics(phys))
	s = mustUpdate(t, s, 0.1, core.Frame(core.ActionJump, core.ActionRight))

	p := mustPlayer(t, s)
	if p.Speed() != sim.V(2, -10) {
		t.Errorf("speed = %v, expected (2, -10)", p.Speed())
	}
	if !approx(p.Pos().X, 2.2) {
		t.Errorf("x = %v, expected 2.2", p.Pos().X)
	}
	if s.Physics() != phys {
		t.Error("Physics() should return the configured tuning")
	}
}

func TestHorizontalInput(t *testing.T) {
	tests := []struct {
		name   string
		in     core.InputFrame
		wantDx float64
	}{
		{"none", core.NewInputFrame(), 0},
		{"left", core.Frame(core.ActionLeft), -0.7},
		{"right", core.Frame(core.ActionRight), 0.7},
		{"both", core.Frame(core.ActionLeft, core.ActionRight), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustStart(t, plan("#.....#", "#.....#", "#..@..#", "#######"))
			x0 := mustPlayer(t, s).Pos().X

			s = mustUpdate(t, s, 0.1, tc.in)
			p := mustPlayer(t, s)
			if !approx(p.Pos().X-x0, tc.wantDx) {
				t.Errorf("dx = %v, expected %v", p.Pos().X-x0, tc.wantDx)
			}
			if !approx(p.Speed().X, tc.wantDx/0.1) {
				t.Errorf("speed.x = %v, expected %v", p.Speed().X, tc.wantDx/0.1)
			}
		})
	}
}

func TestWallContainment(t *testing.T) {
	s := mustStart(t, plan("#......#", "#......#", "#......#", "#.....@#", "########"))
	lvl := s.Level()

	inputs := []core.InputFrame{
		core.Frame(core.ActionRight),
		core.Frame(core.ActionRight, core.ActionJump),
		core.Frame(core.ActionLeft),
		core.Frame(core.ActionLeft, core.ActionJump),
	}
	for _, dt := range []float64{0, 0.01, 0.05, 0.1} {
		for i := range 200 {
			s = mustUpdate(t, s, dt, inputs[(i/25)%len(inputs)])
			p := mustPlayer(t, s)
			if lvl.Touches(p.Pos(), p.Size(), sim.TileWall) {
				t.Fatalf("dt=%v tick %d: player at %v overlaps a wall", dt, i, p.Pos())
			}
		}
	}
}

func TestHugeTimeStepStaysInside(t *testing.T) {
	s := mustStart(t, plan("#####", "#...#", "#.@.#", "#####"))
	start := mustPlayer(t, s).Pos()

	for _, in := range []core.InputFrame{core.NewInputFrame(), core.Frame(core.ActionRight), core.Frame(core.ActionLeft, core.ActionJump)} {
		next := mustUpdate(t, s, 1e10, in)
		p := mustPlayer(t, next)
		if s.Level().Touches(p.Pos(), p.Size(), sim.TileWall) {
			t.Errorf("input %v: player at %v overlaps a wall", in.Actions, p.Pos())
		}
		if p.Pos() != start {
			t.Errorf("input %v: player moved to %v, expected to stay at %v", in.Actions, p.Pos(), start)
		}
	}
}

func TestBlockedMoveKeepsSpeed(t *testing.T) {
	s := mustStart(t, plan("####", "#..#", "#.@#", "####"))
	x0 := mustPlayer(t, s).Pos().X

	s = mustUpdate(t, s, 0.1, core.Frame(core.ActionRight))
	p := mustPlayer(t, s)
	if p.Pos().X != x0 {
		t.Errorf("player moved into wall: x %v -> %v", x0, p.Pos().X)
	}
	if p.Speed().X != 7 {
		t.Errorf("speed.x = %v, expected 7 even when blocked", p.Speed().X)
	}
}

func TestCollectSingleCoinWins(t *testing.T) {
	s := mustStart(t, plan("#####", "#...#", "#@o.#", "#####"))
	if s.Coins() != 1 {
		t.Fatalf("Coins() = %d, expected 1", s.Coins())
	}

	s = mustUpdate(t, s, 0.1, core.Frame(core.ActionRight))
	if s.Status() != sim.Won {
		t.Fatalf("status = %v, expected won", s.Status())
	}
	if s.Coins() != 0 {
		t.Errorf("Coins() = %d, expected 0", s.Coins())
	}
	if len(s.Actors()) != 1 {
		t.Errorf("expected only the player to remain, got %d actors", len(s.Actors()))
	}
}

func TestCollectTwoCoins(t *testing.T) {
	s := mustStart(t, plan("######", "#....#", "#@o.o#", "######"))

	s = mustUpdate(t, s, 0.1, core.Frame(core.ActionRight))
	if s.Status() != sim.Playing {
		t.Fatalf("status after first coin = %v, expected playing", s.Status())
	}
	if s.Coins() != 1 {
		t.Fatalf("Coins() = %d, expected 1", s.Coins())
	}

	for i := 0; i < 10 && s.Status() == sim.Playing; i++ {
		s = mustUpdate(t, s, 0.1, core.Frame(core.ActionRight))
	}
	if s.Status() != sim.Won {
		t.Fatalf("status = %v, expected won after both coins", s.Status())
	}
	if s.Coins() != 0 {
		t.Errorf("Coins() = %d, expected 0", s.Coins())
	}
}

func TestLavaTileDeath(t *testing.T) {
	// The coin overlaps the falling player, but lava is checked first.
	s := mustStart(t, plan("#.o.#", "#.@.#", "#.+.#", "#####"))

	s = mustUpdate(t, s, 0.05, core.NewInputFrame())
	if s.Status() != sim.Lost {
		t.Fatalf("status = %v, expected lost", s.Status())
	}
	if s.Coins() != 1 {
		t.Errorf("coin should not be collected on a lava death, Coins() = %d", s.Coins())
	}
}

func TestHazardCollisionLoses(t *testing.T) {
	s := mustStart(t, plan("#####", "#...#", "#@M.#", "#####"), strideOne)

	s = mustUpdate(t, s, 0.1, core.NewInputFrame())
	if s.Status() != sim.Lost {
		t.Fatalf("status = %v, expected lost", s.Status())
	}
	if len(s.Actors()) != 2 {
		t.Errorf("hazard collision should keep actors, got %d", len(s.Actors()))
	}
}

func TestLethalBeatsFinalCoinInSameTick(t *testing.T) {
	tests := []struct {
		name string
		plan string
		in   core.InputFrame
	}{
		{"coin before monster", plan("#####", "#.o.#", "#.@M#", "#####"), core.NewInputFrame()},
		{"monster before coin", plan("#####", "#..M#", "#.@o#", "#####"), core.Frame(core.ActionRight)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := mustStart(t, tc.plan, strideOne)
			s = mustUpdate(t, s, 0.1, tc.in)
			if s.Status() != sim.Lost {
				t.Errorf("status = %v, expected lost", s.Status())
			}
		})
	}
}

func TestTerminalStateIsFrozen(t *testing.T) {
	s := mustStart(t, plan("#####", "#...#", "#@M.#", "#####"), strideOne)
	s = mustUpdate(t, s, 0.1, core.NewInputFrame())
	if s.Status() != sim.Lost {
		t.Fatalf("status = %v, expected lost", s.Status())
	}

	before := s.Actors()
	inputs := []core.InputFrame{
		core.NewInputFrame(),
		core.Frame(core.ActionRight, core.ActionJump),
		core.Frame(core.ActionLeft),
	}
	for i, in := range inputs {
		next := mustUpdate(t, s, 0.5, in)
		if next.Status() != sim.Lost {
			t.Errorf("update %d: status = %v, expected lost", i, next.Status())
		}
		after := next.Actors()
		if len(after) != len(before) {
			t.Fatalf("update %d: actor count changed", i)
		}
		for j := range before {
			if after[j].Pos() != before[j].Pos() {
				t.Errorf("update %d: actor %d moved from %v to %v", i, j, before[j].Pos(), after[j].Pos())
			}
		}
	}

	won := mustStart(t, plan("#####", "#...#", "#@o.#", "#####"))
	won = mustUpdate(t, won, 0.1, core.Frame(core.ActionRight))
	if won.Status() != sim.Won {
		t.Fatalf("status = %v, expected won", won.Status())
	}
	if again := mustUpdate(t, won, 0.1, core.Frame(core.ActionLeft)); again.Status() != sim.Won {
		t.Errorf("won state changed to %v", again.Status())
	}
}

func TestInvalidTimeStep(t *testing.T) {
	s := mustStart(t, "#@#")

	for _, dt := range []float64{-0.1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := s.Update(dt, core.NewInputFrame())
		if !errors.Is(err, sim.ErrInvalidArgument) {
			t.Errorf("Update(%v) error = %v, expected ErrInvalidArgument", dt, err)
		}
	}

	if _, err := s.Update(0, core.NewInputFrame()); err != nil {
		t.Errorf("Update(0) failed: %v", err)
	}
}

func TestLavaBounce(t *testing.T) {
	s := mustStart(t, plan("#######", "#.....#", "#@...=#", "#######"))

	s = mustUpdate(t, s, 0.1, core.NewInputFrame())
	lava := s.Actors()[1]
	if lava.Speed() != sim.V(-2, 0) {
		t.Errorf("speed = %v, expected (-2, 0)", lava.Speed())
	}
	if lava.Pos() != sim.V(5, 2) {
		t.Errorf("pos = %v, expected (5, 2)", lava.Pos())
	}

	s = mustUpdate(t, s, 0.1, core.NewInputFrame())
	lava = s.Actors()[1]
	if !approx(lava.Pos().X, 4.8) {
		t.Errorf("after bounce x = %v, expected 4.8", lava.Pos().X)
	}
}

func TestVerticalLavaBounce(t *testing.T) {
	s := mustStart(t, plan("#####", "#.|.#", "#...#", "#@..#", "#####"))

	var lava sim.Actor
	for range 20 {
		s = mustUpdate(t, s, 0.1, core.NewInputFrame())
		lava = s.Actors()[0]
		if lava.Speed().Y < 0 {
			break
		}
	}
	if lava.Speed() != sim.V(0, -2) {
		t.Fatalf("vertical lava never bounced, speed %v", lava.Speed())
	}
	if s.Level().Touches(lava.Pos(), lava.Size(), sim.TileWall) {
		t.Errorf("lava at %v overlaps a wall", lava.Pos())
	}
}

func TestDrippingLavaResets(t *testing.T) {
	s := mustStart(t, plan("######", "#..v.#", "#@...#", "######"))

	var ys []float64
	for range 4 {
		s = mustUpdate(t, s, 0.1, core.NewInputFrame())
		ys = append(ys, s.Actors()[0].Pos().Y)
	}

	if !approx(ys[0], 1.3) || !approx(ys[1], 1.6) || !approx(ys[2], 1.9) {
		t.Errorf("dripping lava fell through %v", ys)
	}
	if ys[3] != 1 {
		t.Errorf("dripping lava should reset to y=1 on hitting the floor, got %v", ys[3])
	}
	if s.Actors()[0].Speed() != sim.V(0, 3) {
		t.Errorf("speed = %v, expected (0, 3) after reset", s.Actors()[0].Speed())
	}
}

func TestMonsterPatrol(t *testing.T) {
	// The stride multiplier is always negative, so the monster walks against
	// its patrol speed and turns around at walls.
	s := mustStart(t, plan("######", "#....#", "#.M.@#", "######"), strideOne)

	s = mustUpdate(t, s, 0.1, core.NewInputFrame())
	m := s.Actors()[0]
	if !approx(m.Pos().X, 1.6) {
		t.Fatalf("x = %v, expected 1.6", m.Pos().X)
	}
	if m.Speed() != sim.V(4, 0) {
		t.Errorf("patrol speed should not store the stride, got %v", m.Speed())
	}

	for range 2 {
		s = mustUpdate(t, s, 0.1, core.NewInputFrame())
	}
	m = s.Actors()[0]
	if m.Speed() != sim.V(-4, 0) {
		t.Errorf("speed = %v, expected (-4, 0) after hitting the wall", m.Speed())
	}
	if s.Level().Touches(m.Pos(), m.Size(), sim.TileWall) {
		t.Errorf("monster at %v overlaps a wall", m.Pos())
	}
}

func TestMonsterStrideRange(t *testing.T) {
	for n := range 5 {
		s := mustStart(t, plan("#########", "#...M..@#", "#########"), sim.WithRand(fixedRand{n: n}))
		s = mustUpdate(t, s, 0.1, core.NewInputFrame())

		wantX := 4 + 0.4*float64(n-5)
		if x := s.Actors()[0].Pos().X; !approx(x, wantX) {
			t.Errorf("Intn=%d: x = %v, expected %v", n, x, wantX)
		}
	}
}

func TestSeededRunsAreDeterministic(t *testing.T) {
	p := plan(
		"##############",
		"#............#",
		"#..M.....M...#",
		"#@..o...o..=.#",
		"##############",
	)
	run := func() []sim.Actor {
		s := mustStart(t, p, sim.WithRand(rand.New(rand.NewSource(99))))
		for i := range 120 {
			in := core.NewInputFrame()
			if i%30 < 10 {
				in.Set(core.ActionJump)
			}
			s = mustUpdate(t, s, 1.0/60.0, in)
		}
		return s.Actors()
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("actor counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("actor %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
