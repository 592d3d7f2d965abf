package sim

import (
	"fmt"
	"math"
	"strings"
)

// Tile is the static content of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileLava
)

// String returns the tile label.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileLava:
		return "lava"
	default:
		return "unknown"
	}
}

// tileGlyphs maps plan characters that produce a tile.
var tileGlyphs = map[rune]Tile{
	'.': TileEmpty,
	'#': TileWall,
	'+': TileLava,
}

// actorFactory builds the actor a glyph spawns at cell pos.
type actorFactory func(id int, pos Vec, p *parser) Actor

// actorGlyphs maps plan characters that spawn an actor.
// The cell under an actor is always empty.
var actorGlyphs = map[rune]actorFactory{
	'@': func(id int, pos Vec, _ *parser) Actor { return newPlayer(id, pos) },
	'o': func(id int, pos Vec, p *parser) Actor { return newCoin(id, pos, p.phase()) },
	'=': func(id int, pos Vec, _ *parser) Actor { return newLava(id, pos, V(2, 0), false) },
	'|': func(id int, pos Vec, _ *parser) Actor { return newLava(id, pos, V(0, 2), false) },
	'v': func(id int, pos Vec, _ *parser) Actor { return newLava(id, pos, V(0, 3), true) },
	'M': func(id int, pos Vec, _ *parser) Actor { return newMonster(id, pos) },
}

// Level is an immutable tile grid plus the actors it starts with.
type Level struct {
	width       int
	height      int
	rows        [][]Tile
	startActors []Actor
}

// ParseOption configures ParseLevel.
type ParseOption func(*parser)

// WithWobbleSource randomizes the starting phase of every coin.
// Without it all coins start at phase zero.
func WithWobbleSource(r Rand) ParseOption {
	return func(p *parser) {
		p.rng = r
	}
}

type parser struct {
	rng Rand
}

func (p *parser) phase() float64 {
	if p.rng == nil {
		return 0
	}
	return p.rng.Float64() * math.Pi * 2
}

// ParseLevel builds a level from a plan: one line per row, one glyph per cell.
// Blank lines around the plan are ignored. Errors wrap ErrMalformedLevel.
func ParseLevel(plan string, opts ...ParseOption) (*Level, error) {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}

	lines := splitPlan(plan)
	if len(lines) == 0 {
		return nil, &LevelError{Row: 0, Col: -1, Reason: "empty plan"}
	}

	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, &LevelError{Row: 0, Col: -1, Reason: "empty row"}
	}

	lvl := &Level{
		width:  width,
		height: len(lines),
		rows:   make([][]Tile, len(lines)),
	}

	players := 0
	for y, line := range lines {
		glyphs := []rune(line)
		if len(glyphs) != width {
			return nil, &LevelError{
				Row:    y,
				Col:    -1,
				Reason: fmt.Sprintf("row has %d cells, expected %d", len(glyphs), width),
			}
		}

		row := make([]Tile, width)
		for x, ch := range glyphs {
			if tile, ok := tileGlyphs[ch]; ok {
				row[x] = tile
				continue
			}
			factory, ok := actorGlyphs[ch]
			if !ok {
				return nil, &LevelError{Row: y, Col: x, Reason: fmt.Sprintf("unknown glyph %q", ch)}
			}
			if ch == '@' {
				players++
				if players > 1 {
					return nil, &LevelError{Row: y, Col: x, Reason: "more than one player"}
				}
			}
			row[x] = TileEmpty
			lvl.startActors = append(lvl.startActors, factory(len(lvl.startActors), V(float64(x), float64(y)), p))
		}
		lvl.rows[y] = row
	}

	if players == 0 {
		return nil, &LevelError{Row: 0, Col: -1, Reason: "no player"}
	}

	return lvl, nil
}

// splitPlan trims blank lines around the plan and splits it into rows.
func splitPlan(plan string) []string {
	raw := strings.Split(plan, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimRight(l, "\r"))
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Width returns the number of columns.
func (l *Level) Width() int {
	return l.width
}

// Height returns the number of rows.
func (l *Level) Height() int {
	return l.height
}

// TileAt returns the tile at cell (x, y). Cells outside the grid are walls.
func (l *Level) TileAt(x, y int) Tile {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return TileWall
	}
	return l.rows[y][x]
}

// StartActors returns the actors in plan scan order.
func (l *Level) StartActors() []Actor {
	out := make([]Actor, len(l.startActors))
	copy(out, l.startActors)
	return out
}

// CountKind returns how many start actors have the given kind.
func (l *Level) CountKind(k Kind) int {
	n := 0
	for _, a := range l.startActors {
		if a.Kind() == k {
			n++
		}
	}
	return n
}

// Touches reports whether the box at pos with extent size overlaps any cell
// holding tile. The grid is surrounded by walls on every side.
func (l *Level) Touches(pos, size Vec, tile Tile) bool {
	// Bounds are clamped to one cell past the grid before converting, so far
	// away boxes still land on a surrounding wall instead of overflowing int.
	w, h := float64(l.width), float64(l.height)
	xStart := int(clampF(math.Floor(pos.X), -1, w))
	xEnd := int(clampF(math.Ceil(pos.X+size.X), 0, w+1))
	yStart := int(clampF(math.Floor(pos.Y), -1, h))
	yEnd := int(clampF(math.Ceil(pos.Y+size.Y), 0, h+1))

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			if l.TileAt(x, y) == tile {
				return true
			}
		}
	}
	return false
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
