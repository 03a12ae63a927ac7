// Package terminal draws the game and reads keys through tcell.
package terminal

import (
	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui/hud"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so squares look square
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(46, 125, 50))
	bodyStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(67, 160, 71))
	tailStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(102, 187, 106))
	foodStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(229, 57, 53))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

var headRunes = map[types.Direction]rune{
	types.Up:    '^',
	types.Right: '>',
	types.Down:  'v',
	types.Left:  '<',
}

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame of snap, the grid framed at the top left and the
// stats panel to its right
func (r *Renderer) Draw(snap game.Snapshot, status hud.Status) {
	r.screen.Clear()

	size := snap.GridSize
	r.drawBorder(size)

	if snap.HasFood {
		r.setCell(snap.Food, '●', '●', foodStyle)
	}
	r.drawSnake(snap)

	panelX := size*cellWidth + 4
	y := 1
	for _, line := range hud.Lines(snap, status) {
		r.drawText(panelX, y, line, textStyle)
		y++
	}
	y++
	for _, line := range hud.Help {
		r.drawText(panelX, y, line, helpStyle)
		y++
	}

	if text := hud.Banner(snap); text != "" {
		x := 1 + (size*cellWidth-len(text))/2
		if x < 1 {
			x = 1
		}
		r.drawText(x, 1+size/2, text, bannerStyle)
	}

	r.screen.Show()
}

func (r *Renderer) drawBorder(size int) {
	right := size*cellWidth + 1
	bottom := size + 1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(0, 0, '┌', nil, borderStyle)
	r.screen.SetContent(right, 0, '┐', nil, borderStyle)
	r.screen.SetContent(0, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	last := len(snap.Chain) - 1
	for j := last; j >= 0; j-- {
		style := bodyStyle
		switch {
		case j == 0:
			style = headStyle
		case j == last:
			style = tailStyle
		}
		r.setCell(snap.Chain[j], ' ', ' ', style)
	}
	if last >= 0 {
		mark := headRunes[snap.Direction]
		r.setCell(snap.Chain[0], mark, ' ', headStyle.Foreground(tcell.ColorYellow))
	}
}

// setCell fills both columns of grid cell p, offset by the border
func (r *Renderer) setCell(p types.Point, left, right rune, style tcell.Style) {
	x := 1 + p.X*cellWidth
	y := 1 + p.Y
	r.screen.SetContent(x, y, left, nil, style)
	r.screen.SetContent(x+1, y, right, nil, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
