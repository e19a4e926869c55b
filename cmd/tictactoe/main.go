// Command tictactoe is a two-player tic-tac-toe board driven entirely
// through the engine: templated marks, mouse hover and click, glyph
// text and a placement tone.
package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/cellforge/asset"
	"github.com/lixenwraith/cellforge/engine"
	"github.com/lixenwraith/cellforge/event"
	"github.com/lixenwraith/cellforge/render"
)

const (
	cellW   = 9
	cellH   = 5
	boardX  = 4
	boardY  = 4
	gridGap = 1
)

type mark byte

const (
	empty mark = iota
	markX
	markO
)

type game struct {
	board  [9]mark
	turn   mark
	winner mark
	moves  int
	over   bool
}

func main() {
	cfg := engine.DefaultConfig()
	cfg.Title = "tictactoe"

	e := engine.New(cfg)
	defer e.Shutdown()

	e.RegisterFont("ui", asset.BuiltinFont(1))
	e.CreateTemplate("x", xTexture(e), cellW, cellH, false)
	e.CreateTemplate("o", oTexture(e), cellW, cellH, false)

	g := &game{turn: markX}
	// One invisible hit area per board cell, payload is the cell index.
	for i := 0; i < 9; i++ {
		x, y := cellOrigin(i)
		e.CreateObject("cell", nil, x, y, cellW, cellH, true, i)
	}

	e.Run(g)
}

func cellOrigin(i int) (int, int) {
	col, row := i%3, i/3
	return boardX + col*(cellW+gridGap), boardY + row*(cellH+gridGap)
}

func (g *game) HandleEvent(e *engine.Engine, ev event.Event) {
	switch ev := ev.(type) {
	case event.Key:
		switch {
		case ev.Rune == 'q' || ev.Code == tcell.KeyEscape:
			e.Stop()
		case ev.Rune == 'r':
			g.reset(e)
		}
	case event.Mouse:
		if ev.Buttons&tcell.Button1 == 0 || g.over {
			return
		}
		for _, o := range e.ObjectsAt(ev.X, ev.Y) {
			if o.Hitbox {
				g.place(e, o.Data.(int))
				return
			}
		}
	}
}

func (g *game) place(e *engine.Engine, i int) {
	if g.board[i] != empty {
		return
	}
	g.board[i] = g.turn

	tpl, freq := "x", 440.0
	if g.turn == markO {
		tpl, freq = "o", 330.0
	}
	x, y := cellOrigin(i)
	e.Instantiate(tpl, "mark", x, y, i)
	playTone(e, freq)

	g.moves++
	if winningMark(g.board) != empty {
		g.winner = g.turn
		g.over = true
	} else if g.moves == 9 {
		g.over = true
	}
	if g.turn == markX {
		g.turn = markO
	} else {
		g.turn = markX
	}
}

func (g *game) reset(e *engine.Engine) {
	e.RemoveObjectsByName("mark")
	*g = game{turn: markX}
}

func (g *game) Update(*engine.Engine) {}

func (g *game) Draw(e *engine.Engine) {
	grid := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := 1; i < 3; i++ {
		x := boardX + i*(cellW+gridGap) - 1
		y := boardY + i*(cellH+gridGap) - 1
		e.DrawLine(x, boardY, x, boardY+3*cellH+2*gridGap-1, grid)
		e.DrawLine(boardX, y, boardX+3*cellW+2*gridGap-1, y, grid)
	}

	mx, my := e.MousePosition()
	if !g.over {
		for _, o := range e.ObjectsAt(mx, my) {
			if o.Hitbox && g.board[o.Data.(int)] == empty {
				e.DrawRect(o.X, o.Y, o.X+o.Width-1, o.Y+o.Height-1,
					tcell.StyleDefault.Foreground(tcell.ColorYellow))
			}
		}
	}
	e.DrawObjects()

	msg := "X TO MOVE"
	switch {
	case g.winner == markX:
		msg = "X WINS - R TO RESTART"
	case g.winner == markO:
		msg = "O WINS - R TO RESTART"
	case g.over:
		msg = "DRAW - R TO RESTART"
	case g.turn == markO:
		msg = "O TO MOVE"
	}
	w, _ := e.Size()
	e.DrawText("ui", msg, w/2, 1, tcell.StyleDefault.Foreground(tcell.ColorWhite), render.AnchorTop)
}

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func winningMark(b [9]mark) mark {
	for _, l := range winLines {
		if b[l[0]] != empty && b[l[0]] == b[l[1]] && b[l[1]] == b[l[2]] {
			return b[l[0]]
		}
	}
	return empty
}

func xTexture(e *engine.Engine) *render.Texture {
	tex := e.CreateTexture("x", cellW, cellH)
	c := render.Cell{Rune: '█', Style: tcell.StyleDefault.Foreground(tcell.ColorRed)}
	render.DrawLine(tex, 1, 0, cellW-2, cellH-1, c)
	render.DrawLine(tex, cellW-2, 0, 1, cellH-1, c)
	return tex
}

func oTexture(e *engine.Engine) *render.Texture {
	tex := e.CreateTexture("o", cellW, cellH)
	c := render.Cell{Rune: '█', Style: tcell.StyleDefault.Foreground(tcell.ColorBlue)}
	render.DrawEllipse(tex, cellW/2, cellH/2, cellW/2-1, cellH/2, c)
	return tex
}

func playTone(e *engine.Engine, freq float64) {
	sr := beep.SampleRate(48000)
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return
	}
	e.PlayStreamer(beep.Take(sr.N(120*time.Millisecond), tone))
}
