// Package platformer runs a campaign of levels on top of the sim package:
// lives, score, level transitions and terminal rendering.
package platformer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the identifier used for score storage.
const GameID = "platformer"

// Campaign phases
const (
	PhasePlaying  = "playing"  // Level in progress
	PhaseEnding   = "ending"   // Level finished, outcome still on screen
	PhaseGameOver = "gameover" // No lives left or the simulation failed
	PhaseWin      = "win"      // Every level cleared
)

var (
	// ErrNoLevels is returned when the catalog is empty.
	ErrNoLevels = errors.New("platformer: no levels")
	// ErrUnknownLevel is returned when the start level is not in the catalog.
	ErrUnknownLevel = errors.New("platformer: unknown level")
)

// LevelResult is the outcome of one attempt at a level.
type LevelResult struct {
	LevelID string
	Outcome sim.Status
	Ticks   uint64
	Coins   int // Coins collected during the attempt
}

// ResultSink receives every finished level attempt.
type ResultSink interface {
	SaveLevelResult(r LevelResult) error
}

// Option configures a Game.
type Option func(*Game)

// WithLogger records level transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithResultSink reports finished attempts to sink.
func WithResultSink(sink ResultSink) Option {
	return func(g *Game) {
		g.sink = sink
	}
}

// WithStartLevel starts the campaign at the given level instead of the first.
func WithStartLevel(id string) Option {
	return func(g *Game) {
		g.startID = id
	}
}

// WithLevels plays the given levels instead of the catalog.
func WithLevels(entries []registry.Entry) Option {
	return func(g *Game) {
		g.entries = entries
	}
}

// Game drives a campaign through the level catalog.
type Game struct {
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	sink    ResultSink
	startID string
	entries []registry.Entry

	// Campaign
	levels     []registry.Entry
	levelIndex int
	lives      int
	score      int
	phase      string
	paused     bool
	endTicks   int // Ticks left before a finished level is resolved
	err        error

	// Current level
	state *sim.State
	rng   *rand.Rand

	// Viewport in tiles
	viewX    int // Leftmost visible column
	viewY    int // Topmost visible row
	viewW    int
	viewH    int
	tooSmall bool
}

// Layout constants
const (
	hudRows     = 2
	colsPerTile = 2
	minScreenW  = 20
	minScreenH  = 8
)

// New creates a campaign with the given configuration.
func New(cfg config.PlatformerConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.startID != "" && len(g.levels) > 0 {
		return fmt.Sprintf("Platformer: %s", g.levels[0].Name)
	}
	return "Platformer"
}

// Reset starts the campaign from its first level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness

	g.score = 0
	g.lives = g.cfg.Campaign.Lives
	g.paused = false
	g.err = nil
	g.levelIndex = 0
	g.layout(runtime.ScreenW, runtime.ScreenH)

	g.levels = g.entries
	if g.levels == nil {
		g.levels = registry.List()
	}
	if len(g.levels) == 0 {
		g.fail(ErrNoLevels)
		return
	}
	if g.startID != "" {
		idx := slices.IndexFunc(g.levels, func(e registry.Entry) bool { return e.ID == g.startID })
		if idx < 0 {
			g.levels = nil
			g.fail(fmt.Errorf("%w %q", ErrUnknownLevel, g.startID))
			return
		}
		g.levels = g.levels[idx:]
	}

	g.startLevel()
}

// layout computes the visible tile window for a screen size.
func (g *Game) layout(w, h int) {
	g.tooSmall = w < minScreenW || h < minScreenH
	g.viewW = w / colsPerTile
	g.viewH = h - hudRows
}

// startLevel (re)starts the level at levelIndex.
func (g *Game) startLevel() {
	entry := g.levels[g.levelIndex]

	lvl, err := sim.ParseLevel(entry.Plan, sim.WithWobbleSource(g.rng))
	if err != nil {
		g.fail(fmt.Errorf("level %s: %w", entry.ID, err))
		return
	}

	g.state = sim.Start(lvl,
		sim.WithPhysics(g.cfg.Physics.Sim()),
		sim.WithRand(g.rng),
	)
	g.phase = PhasePlaying
	g.endTicks = 0
	g.viewX, g.viewY = 0, 0
	g.scrollPlayerIntoView()

	g.logInfo("level started", "level", entry.ID, "lives", g.lives)
}

// fail ends the campaign because it cannot continue.
func (g *Game) fail(err error) {
	g.err = err
	g.phase = PhaseGameOver
	if g.logger != nil {
		g.logger.Error("campaign aborted", "err", err)
	}
}

// Err returns the error that aborted the campaign, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances the campaign by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && (g.phase == PhaseGameOver || g.phase == PhaseWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}

	if g.paused || g.phase == PhaseGameOver || g.phase == PhaseWin {
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhasePlaying {
		g.advance(in)
	}

	if g.phase == PhaseEnding {
		if g.endTicks <= 0 {
			g.resolve()
		} else {
			g.endTicks--
		}
	}

	return core.StepResult{State: g.State()}
}

// advance steps the simulation and scores collected coins.
func (g *Game) advance(in core.InputFrame) {
	prev := g.state
	next, err := prev.Update(g.runtime.Dt(), in)
	if err != nil {
		g.fail(err)
		return
	}
	g.state = next
	g.score += (prev.Coins() - next.Coins()) * g.cfg.Campaign.CoinPoints
	g.scrollPlayerIntoView()

	if !next.Status().Terminal() {
		return
	}

	entry := g.levels[g.levelIndex]
	if next.Status() == sim.Won {
		g.score += g.cfg.Campaign.LevelBonus
	}
	g.phase = PhaseEnding
	g.endTicks = int(math.Round(g.cfg.Campaign.EndDelay * float64(g.tickRate())))

	result := LevelResult{
		LevelID: entry.ID,
		Outcome: next.Status(),
		Ticks:   next.Tick(),
		Coins:   next.Level().CountKind(sim.KindCoin) - next.Coins(),
	}
	g.logInfo("level "+next.Status().String(), "level", entry.ID, "ticks", result.Ticks, "coins", result.Coins)
	if g.sink != nil {
		if err := g.sink.SaveLevelResult(result); err != nil && g.logger != nil {
			g.logger.Warn("could not save level result", "level", entry.ID, "err", err)
		}
	}
}

// resolve moves on after a finished level.
func (g *Game) resolve() {
	switch g.state.Status() {
	case sim.Won:
		g.levelIndex++
		if g.levelIndex >= len(g.levels) {
			g.levelIndex = len(g.levels) - 1
			g.phase = PhaseWin
			g.logInfo("campaign over", "result", "won", "score", g.score)
			return
		}
	case sim.Lost:
		g.lives--
		if g.lives <= 0 {
			g.phase = PhaseGameOver
			g.logInfo("campaign over", "result", "lost", "score", g.score)
			return
		}
	}
	g.startLevel()
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

func (g *Game) logInfo(msg string, kv ...any) {
	if g.logger != nil {
		g.logger.Info(msg, kv...)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseWin,
		Victory:  g.phase == PhaseWin,
		Paused:   g.paused,
	}
}

// Phase returns the campaign phase.
func (g *Game) Phase() string {
	return g.phase
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Level returns the catalog entry being played.
func (g *Game) Level() registry.Entry {
	if len(g.levels) == 0 {
		return registry.Entry{}
	}
	return g.levels[g.levelIndex]
}

// Sim returns the current simulation state, nil if no level is loaded.
func (g *Game) Sim() *sim.State {
	return g.state
}
