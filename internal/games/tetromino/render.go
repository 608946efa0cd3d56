package tetromino

import (
	"fmt"

	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/engine"
)

// Screen layout constants. Every playfield cell is drawn two characters
// wide so the well looks roughly square in a terminal.
const (
	cellW     = 2
	wellW     = engine.Width*cellW + 2 // playfield plus border
	wellH     = engine.Height + 2
	hudHeight = 2
	panelW    = 12

	minScreenW = wellW + 2*(panelW+2)
	minScreenH = wellH + hudHeight
)

// kindColors maps each piece kind to its terminal color.
var kindColors = [engine.KindCount]core.Color{
	engine.KindI: core.ColorCyan,
	engine.KindJ: core.ColorBlue,
	engine.KindL: core.ColorOrange,
	engine.KindO: core.ColorYellow,
	engine.KindS: core.ColorGreen,
	engine.KindT: core.ColorMagenta,
	engine.KindZ: core.ColorRed,
}

// colorForTile maps a playfield tile color back to a terminal color.
// Settled tiles keep the color of the piece that placed them.
func colorForTile(c engine.Color) core.Color {
	for k := engine.Kind(0); k < engine.KindCount; k++ {
		if engine.PieceFor(k).Color() == c {
			return kindColors[k]
		}
	}
	return core.ColorGray
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	wellX := (dst.Width() - wellW) / 2
	wellY := hudHeight

	g.renderWell(dst, wellX, wellY)
	g.renderHold(dst, wellX-panelW-2, wellY)
	g.renderNext(dst, wellX+wellW+2, wellY)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeSprint {
		hud = fmt.Sprintf(" %s — Score: %d  Lines: %d/%d", g.Title(), g.score, g.lines, SprintGoal)
	} else {
		hud = fmt.Sprintf(" %s — Score: %d  Lines: %d  Level: %d", g.Title(), g.score, g.lines, g.difficulty)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWell draws the playfield border, settled tiles, the ghost piece,
// and the active piece. Only the lower half of the field is visible; the
// hidden rows above the well are where pieces spawn.
func (g *Game) renderWell(dst *core.Screen, wellX, wellY int) {
	dst.DrawBox(core.NewRect(wellX, wellY, wellW, wellH))

	field := g.eng.Playfield()
	for y := engine.Height; y < engine.TrueHeight; y++ {
		sy := wellY + 1 + (y - engine.Height)
		for x := 0; x < engine.Width; x++ {
			sx := wellX + 1 + x*cellW
			tile := field.GetTile(x, y)
			if tile.IsBlack() {
				dst.Set(sx, sy, ' ')
				dst.Set(sx+1, sy, '.')
				continue
			}
			c := colorForTile(tile)
			dst.SetCell(sx, sy, '█', c)
			dst.SetCell(sx+1, sy, '█', c)
		}
	}

	active := g.eng.ActivePiece()
	if ghost := g.ghostPosition(); ghost.Y != active.Position.Y {
		g.renderPiece(dst, wellX, wellY, active, ghost, '░')
	}
	g.renderPiece(dst, wellX, wellY, active, active.Position, '█')
}

// renderPiece draws the active piece's matrix at the given field position.
// Cells in the hidden upper half are skipped.
func (g *Game) renderPiece(dst *core.Screen, wellX, wellY int, piece *engine.ActivePiece, pos engine.Vec2, r rune) {
	m := piece.Matrix()
	c := kindColors[piece.Data.Kind()]
	for my := 0; my < 4; my++ {
		for mx := 0; mx < 4; mx++ {
			if !m[my][mx] {
				continue
			}
			fx := int(pos.X) + mx
			fy := int(pos.Y) + my
			if fy < engine.Height {
				continue
			}
			sx := wellX + 1 + fx*cellW
			sy := wellY + 1 + (fy - engine.Height)
			dst.SetCell(sx, sy, r, c)
			dst.SetCell(sx+1, sy, r, c)
		}
	}
}

// ghostPosition returns where the active piece would land if hard dropped.
func (g *Game) ghostPosition() engine.Vec2 {
	field := g.eng.Playfield()
	probe := *g.eng.ActivePiece()
	for {
		next := probe
		next.Position.Y++
		if field.HasOverlap(&next) {
			return probe.Position
		}
		probe = next
	}
}

// renderHold draws the held piece panel to the left of the well.
func (g *Game) renderHold(dst *core.Screen, x, y int) {
	dst.DrawBox(core.NewRect(x, y, panelW, 6))
	dst.DrawText(x+2, y, " HOLD ")

	if held := g.eng.HeldPiece(); held != nil {
		g.renderPreview(dst, x+2, y+2, *held)
	}
}

// renderNext draws the upcoming pieces panel to the right of the well.
func (g *Game) renderNext(dst *core.Screen, x, y int) {
	previews := g.cfg.Gameplay.NextPreviews
	next := g.eng.NextPieces()
	if previews > len(next) {
		previews = len(next)
	}

	boxH := previews*3 + 2
	dst.DrawBox(core.NewRect(x, y, panelW, boxH))
	dst.DrawText(x+2, y, " NEXT ")

	for i := 0; i < previews; i++ {
		g.renderPreview(dst, x+2, y+1+i*3, next[i])
	}
}

// renderPreview draws a piece's spawn shape in a side panel.
func (g *Game) renderPreview(dst *core.Screen, x, y int, data engine.PieceData) {
	m := data.DefaultMatrix()
	c := kindColors[data.Kind()]
	for my := 0; my < data.Size(); my++ {
		for mx := 0; mx < data.Size(); mx++ {
			if !m[my][mx] {
				continue
			}
			dst.SetCell(x+mx*cellW, y+my, '█', c)
			dst.SetCell(x+mx*cellW+1, y+my, '█', c)
		}
	}
}

// renderOverlay draws a centered message box over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	// Blank the interior so the well does not show through
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
