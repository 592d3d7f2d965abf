package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// scriptStep holds a set of actions for a number of ticks.
type scriptStep struct {
	actions []core.Action
	ticks   int
}

// script is a sequence of held inputs, e.g. "right:30,right+jump:1,none:20".
type script []scriptStep

var scriptActions = map[string]core.Action{
	"left":  core.ActionLeft,
	"right": core.ActionRight,
	"jump":  core.ActionJump,
	"none":  core.ActionNone,
}

// parseScript parses comma-separated "action[+action]:ticks" steps.
// The tick count defaults to 1.
func parseScript(s string) (script, error) {
	var out script
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		names, count, hasCount := strings.Cut(part, ":")
		step := scriptStep{ticks: 1}
		if hasCount {
			n, err := strconv.Atoi(count)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("input %q: tick count must be a positive integer", part)
			}
			step.ticks = n
		}

		for _, name := range strings.Split(names, "+") {
			a, ok := scriptActions[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return nil, fmt.Errorf("input %q: unknown action %q (use left, right, jump, none)", part, name)
			}
			if a != core.ActionNone {
				step.actions = append(step.actions, a)
			}
		}
		out = append(out, step)
	}
	return out, nil
}

// Len returns the number of ticks the script covers.
func (sc script) Len() int {
	n := 0
	for _, st := range sc {
		n += st.ticks
	}
	return n
}

// Frame returns the input held at tick i. Past the end nothing is held.
func (sc script) Frame(i int) core.InputFrame {
	for _, st := range sc {
		if i < st.ticks {
			return core.Frame(st.actions...)
		}
		i -= st.ticks
	}
	return core.NewInputFrame()
}

// simulate plays a level plan from scripted input until it is decided or
// maxTicks have run. maxTicks <= 0 runs for the length of the script.
func simulate(plan string, physics sim.Physics, seed int64, tickRate int, sc script, maxTicks int) (*sim.State, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness

	lvl, err := sim.ParseLevel(plan, sim.WithWobbleSource(rng))
	if err != nil {
		return nil, err
	}
	state := sim.Start(lvl, sim.WithPhysics(physics), sim.WithRand(rng))

	if maxTicks <= 0 {
		maxTicks = sc.Len()
	}
	dt := 1.0 / float64(tickRate)
	for i := 0; i < maxTicks && !state.Status().Terminal(); i++ {
		state, err = state.Update(dt, sc.Frame(i))
		if err != nil {
			return nil, err
		}
	}
	return state, nil
}
