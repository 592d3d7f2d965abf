package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// Visual glyphs, two screen columns per tile
var (
	wallGlyph    = [2]rune{'█', '█'}
	lavaGlyph    = [2]rune{'≈', '≈'}
	coinGlyph    = [2]rune{'(', ')'}
	monsterGlyph = [2]rune{'▛', '▜'}
	flowGlyph    = [2]rune{'▓', '▓'}
	playerHead   = [2]rune{'▗', '▖'}
	playerBody   = [2]rune{'▐', '▌'}
)

// scrollPlayerIntoView moves the viewport so the player stays away from its
// edges by a third of the visible area. The viewport never leaves the level.
func (g *Game) scrollPlayerIntoView() {
	if g.state == nil {
		return
	}
	p, ok := g.state.Player()
	if !ok {
		return
	}
	lvl := g.state.Level()
	center := p.Pos().Plus(p.Size().Times(0.5))

	g.viewX = scrollAxis(g.viewX, g.viewW, lvl.Width(), center.X)
	g.viewY = scrollAxis(g.viewY, g.viewH, lvl.Height(), center.Y)
}

// scrollAxis returns the new start of a visible window of size view over a
// level of size total so that pos is at least view/3 from either edge.
func scrollAxis(start, view, total int, pos float64) int {
	if view <= 0 || total <= view {
		return 0
	}
	margin := float64(view) / 3

	s := float64(start)
	if pos < s+margin {
		s = pos - margin
	} else if pos > s+float64(view)-margin {
		s = pos + margin - float64(view)
	}

	return core.Clamp(int(math.Floor(s)), 0, total-view)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.layout(dst.Width(), dst.Height())

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	if g.state == nil {
		g.renderOverlay(dst)
		return
	}

	g.scrollPlayerIntoView()
	g.renderHUD(dst)
	g.renderTiles(dst)
	g.renderActors(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the level name, lives, score and coins left.
func (g *Game) renderHUD(dst *core.Screen) {
	entry := g.Level()
	left := fmt.Sprintf("%d/%d %s", g.levelIndex+1, len(g.levels), entry.Name)
	dst.DrawText(1, 0, left)

	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	right := fmt.Sprintf("Coins: %d  Score: %d", g.state.Coins(), g.score)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// offset returns where tile (0, 0) lands on screen. Levels smaller than the
// screen are centered.
func (g *Game) offset() (int, int) {
	lvl := g.state.Level()
	ox := -g.viewX * colsPerTile
	oy := hudRows - g.viewY
	if lvl.Width() < g.viewW {
		ox = (g.viewW - lvl.Width()) * colsPerTile / 2
	}
	if lvl.Height() < g.viewH {
		oy = hudRows + (g.viewH-lvl.Height())/2
	}
	return ox, oy
}

// drawTile draws a two-column glyph at tile (x, y). Cells above the play
// area are skipped so the HUD stays intact.
func (g *Game) drawTile(dst *core.Screen, x, y int, glyph [2]rune, c core.Color) {
	ox, oy := g.offset()
	sx := ox + x*colsPerTile
	sy := oy + y
	if sy < hudRows {
		return
	}
	dst.SetColor(sx, sy, glyph[0], c)
	dst.SetColor(sx+1, sy, glyph[1], c)
}

// renderTiles draws the static grid.
func (g *Game) renderTiles(dst *core.Screen) {
	lvl := g.state.Level()
	for y := g.viewY; y < g.viewY+g.viewH && y < lvl.Height(); y++ {
		for x := g.viewX; x < g.viewX+g.viewW && x < lvl.Width(); x++ {
			switch lvl.TileAt(x, y) {
			case sim.TileWall:
				g.drawTile(dst, x, y, wallGlyph, core.ColorGray)
			case sim.TileLava:
				g.drawTile(dst, x, y, lavaGlyph, core.ColorRed)
			}
		}
	}
}

// renderActors draws every actor over the grid, the player last.
func (g *Game) renderActors(dst *core.Screen) {
	var player sim.Actor
	for _, a := range g.state.Actors() {
		if a.Kind() == sim.KindPlayer {
			player = a
			continue
		}
		x, y := cellOf(a)
		switch a.Kind() {
		case sim.KindCoin:
			g.drawTile(dst, x, y, coinGlyph, core.ColorBrightYellow)
		case sim.KindLava:
			g.drawTile(dst, x, y, flowGlyph, core.ColorOrange)
		case sim.KindMonster:
			g.drawTile(dst, x, y, monsterGlyph, core.ColorMagenta)
		}
	}

	if player == nil {
		return
	}
	color := core.ColorCyan
	switch g.state.Status() {
	case sim.Won:
		color = core.ColorGreen
	case sim.Lost:
		color = core.ColorBrightRed
	}

	// The player is drawn feet first: two rows ending at the bottom of its box.
	x, _ := cellOf(player)
	bottom := int(math.Ceil(player.Pos().Y+player.Size().Y)) - 1
	g.drawTile(dst, x, bottom, playerBody, color)
	g.drawTile(dst, x, bottom-1, playerHead, color)
}

// cellOf returns the tile holding the center of an actor.
func cellOf(a sim.Actor) (int, int) {
	c := a.Pos().Plus(a.Size().Times(0.5))
	return int(math.Floor(c.X)), int(math.Floor(c.Y))
}

// renderOverlay draws pause and end-of-level messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
		return
	}

	switch g.phase {
	case PhaseEnding:
		if g.state.Status() == sim.Won {
			g.drawCenteredBox(dst, "LEVEL CLEAR", fmt.Sprintf("Score: %d", g.score))
		} else {
			g.drawCenteredBox(dst, "OUCH", fmt.Sprintf("Lives left: %d", g.lives-1))
		}

	case PhaseGameOver:
		title := "GAME OVER"
		if g.err != nil {
			title = "ERROR"
		}
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		if g.err != nil {
			subtitle = g.err.Error()
		}
		g.drawCenteredBox(dst, title, subtitle)

	case PhaseWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxW = core.Clamp(boxW, 0, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
