package periodic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/periodic2048/internal/core"
	"github.com/vovakirdan/periodic2048/internal/engine"
	"github.com/vovakirdan/periodic2048/internal/trivia"
)

const (
	cellWidth  = 6 // Width of each cell including its left border
	cellHeight = 3 // Height of each cell including its top border
	hudHeight  = 3
	modalWidth = 56
)

// minScreenSize returns the smallest terminal that fits the board and HUD.
func (g *Game) minScreenSize() (int, int) {
	size := g.cfg.Board.Size
	return size*cellWidth + 1 + 4, hudHeight + size*cellHeight + 1 + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.snap.Size
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1
	board := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	dst.DrawTextCenteredColored(board.Bottom()+1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst, board)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title, score and best element.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawTextCenteredColored(0, "PERIODIC 2048", core.ColorBrightCyan)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.snap.Score))

	best := g.snap.Highest
	bestStr := fmt.Sprintf("Best: %s %s", trivia.Symbol(best), trivia.Name(best))
	bestX := max(board.Right()-len(bestStr), board.X)
	dst.DrawTextColored(bestX, 1, bestStr, core.LevelColor(best))

	goal := fmt.Sprintf("Goal: %s (%d)", trivia.Name(g.cfg.Board.WinLevel), g.cfg.Board.WinLevel)
	dst.DrawTextCenteredColored(2, goal, core.ColorGray)
}

// renderBoard draws the grid lines and element tiles.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	size := g.snap.Size
	for y := range size + 1 {
		for x := range size + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight
			dst.SetColored(px, py, gridCorner(x, y, size), core.ColorGray)

			if x < size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─', core.ColorGray)
			}
			if y < size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│', core.ColorGray)
			}
		}
	}

	for _, t := range g.snap.Tiles {
		cellX := board.X + t.X*cellWidth + 1
		cellY := board.Y + t.Y*cellHeight + 1
		color := core.LevelColor(t.Value)

		label := g.tileLabel(t)
		pad := (cellWidth - 1 - len([]rune(label))) / 2
		dst.DrawTextColored(cellX+max(pad, 0), cellY, label, color)

		num := strconv.Itoa(t.Value)
		dst.DrawTextColored(cellX+cellWidth-1-len(num), cellY+1, num, core.ColorGray)
	}
}

// tileLabel marks freshly merged and spawned tiles while the highlight lasts.
func (g *Game) tileLabel(t engine.TileView) string {
	sym := trivia.Symbol(t.Value)
	if g.highlight == 0 {
		return sym
	}
	switch {
	case len(t.MergedFrom) > 0:
		return "[" + sym + "]"
	case t.IsNew():
		return "(" + sym + ")"
	}
	return sym
}

func gridCorner(x, y, size int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == size:
		return '┐'
	case y == size && x == 0:
		return '└'
	case y == size && x == size:
		return '┘'
	case y == 0:
		return '┬'
	case y == size:
		return '┴'
	case x == 0:
		return '├'
	case x == size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws pause, trivia and end-of-run boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	width := min(modalWidth, g.screenW-4)

	if g.paused {
		g.drawOverlay(dst, board, core.ColorYellow, "PAUSED", "Press P to resume")
		return
	}

	if ch, ok := g.quiz.Current(); ok {
		g.drawOverlay(dst, board, core.LevelColor(ch.Level), challengeLines(ch, width, g.tickRate)...)
		return
	}

	if v := g.verdict; v != nil {
		lines := []string{"Correct!"}
		color := core.ColorBrightGreen
		if !v.Correct {
			color = core.ColorBrightRed
			lines = []string{"Wrong!", "Answer: " + v.Answer}
			if v.Restart {
				lines = append(lines, "Starting over from hydrogen")
			}
		}
		g.drawOverlay(dst, board, color, lines...)
		return
	}

	best := fmt.Sprintf("Best element: %s", trivia.Name(g.snap.Highest))
	switch {
	case g.snap.Won && !g.cfg.Board.ContinueAfterWin:
		g.drawOverlay(dst, board, core.ColorBrightYellow,
			fmt.Sprintf("%s REACHED!", strings.ToUpper(trivia.Name(g.cfg.Board.WinLevel))),
			fmt.Sprintf("Score: %d", g.snap.Score), "Press R to restart")
	case g.snap.Over:
		g.drawOverlay(dst, board, core.ColorBrightRed, "GAME OVER", best, "Press R to restart")
	}
}

// challengeLines lays out the element card or the question for a modal.
func challengeLines(ch trivia.Challenge, width, tickRate int) []string {
	el := ch.Element
	header := fmt.Sprintf("New element: %s (%s) #%d", el.Name, el.Symbol, el.Number)

	if ch.Phase == trivia.PhaseIntro || ch.Question == nil {
		secs := (ch.TicksLeft + tickRate - 1) / max(tickRate, 1)
		hint := "Press Enter to continue"
		if ch.Question != nil {
			hint = fmt.Sprintf("Question in %ds (Enter to skip)", secs)
		}
		return []string{header, "", hint}
	}

	lines := []string{header, ""}
	lines = append(lines, wrapText(ch.Question.Prompt, width-4)...)
	lines = append(lines, "")
	for i, c := range ch.Question.Choices {
		lines = append(lines, wrapText(fmt.Sprintf("%d) %s", i+1, c), width-4)...)
	}
	return lines
}

// wrapText breaks text on spaces so no line exceeds width runes.
func wrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		switch {
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			lines = append(lines, string(line))
			line = w
		}
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// drawOverlay draws a box centered on area with the first line highlighted.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	w, h := maxLen+4, len(lines)+2
	box := area.Centered(w, h)
	box.Y = core.Clamp(box.Y, 0, max(g.screenH-h, 0))

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(box.X+2, box.Y+1+i, line, c)
	}
}
