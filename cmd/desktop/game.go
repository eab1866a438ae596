package main

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"octcalc/pkg/grid"
	"octcalc/pkg/session"
	"octcalc/pkg/translator"
)

// Character cell of basicfont.Face7x13 plus line spacing.
const (
	charWidth  = 7
	lineHeight = 15
	padding    = 8
	titleSpace = 18
)

var (
	colorBackground = color.RGBA{0xf4, 0xf4, 0xf0, 0xff}
	colorPane       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorBorder     = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
	colorText       = color.RGBA{0x11, 0x18, 0x27, 0xff}
	colorTitle      = color.RGBA{0x4b, 0x55, 0x63, 0xff}
	colorSalmon     = color.RGBA{0xfa, 0x80, 0x72, 0xff}
	colorCursor     = color.RGBA{0x7c, 0x3a, 0xed, 0xff}
	colorError      = color.RGBA{0xb9, 0x1c, 0x1c, 0xff}
)

// pane is a titled rectangle of the window.
type pane struct {
	title      string
	x, y, w, h int
}

// cols is how many characters fit on one line inside the pane.
func (p pane) cols() int {
	return max((p.w-2*padding)/charWidth, 1)
}

func (p pane) rows() int {
	return max((p.h-titleSpace-padding)/lineHeight, 1)
}

// cell returns the pixel position of a character cell inside the pane.
func (p pane) cell(line, col int) (float32, float32) {
	return float32(p.x + padding + col*charWidth), float32(p.y + titleSpace + line*lineHeight)
}

// Game is the desktop translator window: program input and grammar side by
// side, translation output below.
type Game struct {
	width, height int

	ed      *editor
	session *session.Session
	out     session.Output
	log     zerolog.Logger

	face   text.Face
	input  pane
	bnf    pane
	output pane
	scroll int // first visible input line
}

func NewGame(src string, tr *translator.Translator, logger zerolog.Logger, width, height int) *Game {
	g := &Game{
		ed:      newEditor(src),
		session: session.New(tr),
		log:     logger,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	g.out = session.Output{Lines: []string{"Press F5 or Ctrl+Enter to translate."}}
	g.layout(width, height)
	return g
}

func (g *Game) layout(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	top := height * 3 / 5
	half := width / 2
	g.input = pane{title: "Program", x: padding, y: padding, w: half - padding - padding/2, h: top - padding}
	g.bnf = pane{title: "Grammar (BNF)", x: half + padding/2, y: padding, w: width - half - padding - padding/2, h: top - padding}
	g.output = pane{title: "Result / Errors", x: padding, y: top + padding, w: width - 2*padding, h: height - top - 2*padding}
}

// translate runs the current buffer and keeps the output for drawing.
func (g *Game) translate() {
	g.out = g.session.Translate(g.ed.String())
	g.log.Debug().Bool("failed", g.out.Failed()).Int("highlights", len(g.out.Highlights)).Msg("translate pressed")
}

// repeating reports a key press, then auto-repeat while it is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

func (g *Game) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) || (ctrl && inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		g.translate()
		return nil
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		g.ed.insert(r)
	}
	switch {
	case !ctrl && (repeating(ebiten.KeyEnter) || repeating(ebiten.KeyNumpadEnter)):
		g.ed.insert('\n')
	case repeating(ebiten.KeyTab):
		g.ed.insert(' ')
		g.ed.insert(' ')
	case repeating(ebiten.KeyBackspace):
		g.ed.backspace()
	case repeating(ebiten.KeyDelete):
		g.ed.delete()
	case repeating(ebiten.KeyArrowLeft):
		g.ed.left()
	case repeating(ebiten.KeyArrowRight):
		g.ed.right()
	case repeating(ebiten.KeyArrowUp):
		g.ed.up()
	case repeating(ebiten.KeyArrowDown):
		g.ed.down()
	case repeating(ebiten.KeyHome):
		g.ed.home()
	case repeating(ebiten.KeyEnd):
		g.ed.end()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}
	g.follow()
	return nil
}

// click moves the cursor to the character under a click in the input pane.
func (g *Game) click(x, y int) {
	p := g.input
	if x < p.x || x >= p.x+p.w || y < p.y+titleSpace || y >= p.y+p.h {
		return
	}
	line := (y-p.y-titleSpace)/lineHeight + g.scroll
	col := (x - p.x - padding + charWidth/2) / charWidth
	g.ed.moveTo(line, col)
}

// follow scrolls the input pane so the cursor line stays visible.
func (g *Game) follow() {
	line, _ := g.ed.position()
	rows := g.input.rows()
	if line < g.scroll {
		g.scroll = line
	}
	if line >= g.scroll+rows {
		g.scroll = line - rows + 1
	}
}

func (g *Game) drawPane(screen *ebiten.Image, p pane) {
	vector.DrawFilledRect(screen, float32(p.x), float32(p.y), float32(p.w), float32(p.h), colorPane, false)
	vector.StrokeRect(screen, float32(p.x), float32(p.y), float32(p.w), float32(p.h), 1, colorBorder, false)
	g.drawText(screen, p.title, p.x+padding, p.y+3, colorTitle)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineHeight
	text.Draw(screen, s, g.face, op)
}

func (g *Game) drawInput(screen *ebiten.Image) {
	p := g.input
	g.drawPane(screen, p)
	rows, cols := p.rows(), p.cols()
	visible := func(line int) bool { return line >= g.scroll && line < g.scroll+rows }

	src := g.ed.String()
	for _, h := range g.out.Highlights {
		for _, seg := range grid.SplitSpan(src, h.Start, h.End) {
			if !visible(seg.Line) || seg.Col >= cols {
				continue
			}
			x, y := p.cell(seg.Line-g.scroll, seg.Col)
			w := min(seg.Len, cols-seg.Col) * charWidth
			vector.DrawFilledRect(screen, x, y, float32(w), lineHeight, colorSalmon, false)
		}
	}

	for i, line := range g.ed.lines() {
		if !visible(i) {
			continue
		}
		if r := []rune(line); len(r) > cols {
			line = string(r[:cols])
		}
		x, y := p.cell(i-g.scroll, 0)
		g.drawText(screen, line, int(x), int(y), colorText)
	}

	line, col := g.ed.position()
	if visible(line) && col <= cols {
		x, y := p.cell(line-g.scroll, col)
		vector.DrawFilledRect(screen, x, y+1, 1, lineHeight-2, colorCursor, false)
	}
}

func (g *Game) drawLines(screen *ebiten.Image, p pane, lines []string, first color.Color) {
	g.drawPane(screen, p)
	row := 0
	for i, line := range lines {
		clr := color.Color(colorText)
		if i == 0 {
			clr = first
		}
		for _, part := range wrap(line, p.cols()) {
			if row >= p.rows() {
				return
			}
			x, y := p.cell(row, 0)
			g.drawText(screen, part, int(x), int(y), clr)
			row++
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.drawInput(screen)
	g.drawLines(screen, g.bnf, strings.Split(strings.TrimRight(translator.Grammar, "\n"), "\n"), colorText)

	first := color.Color(colorText)
	if g.out.Result != nil && g.out.Failed() {
		first = colorError
	}
	g.drawLines(screen, g.output, g.out.Lines, first)

	ebitenutil.DebugPrintAt(screen, "F5 / Ctrl+Enter: translate", g.width-190, g.height-padding-16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// wrap splits line into rows of at most cols characters.
func wrap(line string, cols int) []string {
	rows := []string{""}
	for i, r := range []rune(line) {
		x, y := grid.GetGridCoords(i, cols)
		if x == 0 && y > 0 {
			rows = append(rows, "")
		}
		rows[y] += string(r)
	}
	return rows
}
