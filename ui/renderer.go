package ui

import (
	"grid-snake/game"
	"grid-snake/game/types"
	"grid-snake/ui/hud"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const borderPadding = 10 // Padding around game area

var (
	headColor = rl.Color{R: 46, G: 125, B: 50, A: 255}
	bodyColor = rl.Color{R: 67, G: 160, B: 71, A: 255}
	tailColor = rl.Color{R: 102, G: 187, B: 106, A: 255}
	foodColor = rl.Color{R: 229, G: 57, B: 53, A: 255}
	gridColor = rl.Color{R: 40, G: 40, B: 48, A: 255}
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	gameWidth       int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a seventh of the window
	r.statsPanel = r.screenWidth / 7
	r.gameWidth = r.screenWidth - r.statsPanel
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame of snap
func (r *Renderer) Draw(snap game.Snapshot, status hud.Status) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/30, r.statsPanel/8)
	lineHeight := fontSize + fontSize/2

	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2)
	gridSize := int32(snap.GridSize)
	r.cellSize = min(availableWidth/gridSize, availableHeight/gridSize)

	r.totalGridWidth = r.cellSize * gridSize
	r.totalGridHeight = r.cellSize * gridSize
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	for x := int32(0); x < gridSize; x++ {
		for y := int32(0); y < gridSize; y++ {
			rl.DrawRectangleLines(r.offsetX+x*r.cellSize, r.offsetY+y*r.cellSize, r.cellSize, r.cellSize, gridColor)
		}
	}

	if snap.HasFood {
		half := float32(r.cellSize) / 2
		rl.DrawCircle(
			r.offsetX+int32(snap.Food.X)*r.cellSize+r.cellSize/2,
			r.offsetY+int32(snap.Food.Y)*r.cellSize+r.cellSize/2,
			half-1, foodColor)
	}

	r.drawSnake(snap)
	r.drawStatsPanel(snap, status, fontSize, lineHeight)
	r.drawBanner(snap, fontSize)
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	// Body first so the head is drawn on top
	for j := len(snap.Chain) - 1; j >= 0; j-- {
		p := snap.Chain[j]
		color := bodyColor
		switch {
		case j == 0:
			color = headColor
		case j == len(snap.Chain)-1:
			color = tailColor
		}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize+1,
			r.offsetY+int32(p.Y)*r.cellSize+1,
			r.cellSize-2, r.cellSize-2, color)
	}
	if len(snap.Chain) > 0 {
		r.drawDirectionMarker(snap.Chain[0], snap.Direction)
	}
}

// drawDirectionMarker draws a triangle on the head pointing where it moves
func (r *Renderer) drawDirectionMarker(head types.Point, dir types.Direction) {
	headX := float32(r.offsetX + int32(head.X)*r.cellSize)
	headY := float32(r.offsetY + int32(head.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2

	// Vertices in counter-clockwise order
	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: headX + cell, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY}
		c = rl.Vector2{X: headX + half, Y: headY + cell}
	case types.Left:
		a = rl.Vector2{X: headX, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY + cell}
		c = rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a = rl.Vector2{X: headX + half, Y: headY + cell}
		b = rl.Vector2{X: headX + cell, Y: headY + half}
		c = rl.Vector2{X: headX, Y: headY + half}
	default:
		a = rl.Vector2{X: headX + half, Y: headY}
		b = rl.Vector2{X: headX, Y: headY + half}
		c = rl.Vector2{X: headX + cell, Y: headY + half}
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, status hud.Status, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(borderPadding)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	for _, line := range hud.Lines(snap, status) {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	statsY = r.screenHeight - int32(len(hud.Help))*lineHeight - borderPadding
	for _, line := range hud.Help {
		rl.DrawText(line, statsX, statsY, fontSize*3/4, rl.LightGray)
		statsY += lineHeight
	}
}

func (r *Renderer) drawBanner(snap game.Snapshot, fontSize int32) {
	text := hud.Banner(snap)
	if text == "" {
		return
	}
	size := fontSize * 3 / 2
	width := rl.MeasureText(text, size)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-width)/2,
		r.offsetY+r.totalGridHeight/2-size/2,
		size, rl.RayWhite)
}
