package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Skies-Seas/internal/game"
)

var (
	colBackground = color.RGBA{R: 12, G: 18, B: 28, A: 255}
	colText       = color.RGBA{R: 220, G: 226, B: 235, A: 255}
	colDim        = color.RGBA{R: 130, G: 140, B: 155, A: 255}
	colError      = color.RGBA{R: 240, G: 110, B: 90, A: 255}
	colGood       = color.RGBA{R: 120, G: 220, B: 140, A: 255}
	colSea        = color.RGBA{R: 18, G: 52, B: 96, A: 255}
	colAir        = color.RGBA{R: 70, G: 110, B: 150, A: 255}
	colGridLine   = color.RGBA{R: 10, G: 20, B: 36, A: 255}
	colShip       = color.RGBA{R: 150, G: 155, B: 165, A: 255}
	colPlane      = color.RGBA{R: 200, G: 175, B: 120, A: 255}
	colHit        = color.RGBA{R: 220, G: 50, B: 40, A: 255}
	colMiss       = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	colFog        = color.RGBA{R: 160, G: 160, B: 170, A: 150}
	colPreviewOK  = color.RGBA{R: 90, G: 220, B: 120, A: 120}
	colPreviewBad = color.RGBA{R: 230, G: 70, B: 60, A: 120}
	colRecon      = color.RGBA{R: 250, G: 220, B: 80, A: 70}
	colOverlay    = color.RGBA{R: 4, G: 6, B: 10, A: 235}
)

// playerColor returns the accent used for player i in the log and HUD.
func playerColor(i int) color.RGBA {
	switch i {
	case 0:
		return color.RGBA{R: 210, G: 80, B: 70, A: 255}
	case 1:
		return color.RGBA{R: 80, G: 130, B: 220, A: 255}
	default:
		return color.RGBA{R: 140, G: 140, B: 140, A: 255}
	}
}

func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

func layerColor(l game.Layer) color.RGBA {
	if l == game.LayerAir {
		return colAir
	}
	return colSea
}

func unitColor(k game.UnitKind) color.RGBA {
	if k == game.UnitPlane {
		return colPlane
	}
	return colShip
}

// drawGrid renders a layer view. Owners visible in v are drawn, so callers
// pass a Masked view for an opponent's grid.
func drawGrid(screen *ebiten.Image, g gridRect, v game.LayerView, title string) {
	size := float32(g.Size())
	cell := float32(g.Cell)
	x0, y0 := float32(g.X), float32(g.Y)

	drawText(screen, title, g.X, g.Y-20, colText)
	if g.Cell >= 30 {
		for i := 0; i < game.GridSize; i++ {
			drawText(screen, game.ColumnLabel(i), g.X+i*g.Cell+g.Cell/2-3, g.Y-4, colDim)
			drawText(screen, strconv.Itoa(i+1), g.X-20, g.Y+i*g.Cell+g.Cell/2+4, colDim)
		}
	}

	vector.FillRect(screen, x0, y0, size, size, layerColor(v.Layer), false)
	for idx, c := range v.Cells {
		cx, cy := g.CellOrigin(idx)
		if c.Occupied() {
			vector.FillRect(screen, cx+2, cy+2, cell-4, cell-4, unitColor(c.Kind), false)
		}
		if c.Fog {
			vector.FillRect(screen, cx, cy, cell, cell, colFog, false)
		}
		switch {
		case c.Hit:
			pad := cell / 5
			vector.StrokeLine(screen, cx+pad, cy+pad, cx+cell-pad, cy+cell-pad, 3, colHit, true)
			vector.StrokeLine(screen, cx+cell-pad, cy+pad, cx+pad, cy+cell-pad, 3, colHit, true)
		case c.Miss:
			vector.FillCircle(screen, cx+cell/2, cy+cell/2, cell/7, colMiss, true)
		}
	}
	for i := 0; i <= game.GridSize; i++ {
		o := float32(i) * cell
		vector.StrokeLine(screen, x0+o, y0, x0+o, y0+size, 1, colGridLine, false)
		vector.StrokeLine(screen, x0, y0+o, x0+size, y0+o, 1, colGridLine, false)
	}
	vector.StrokeRect(screen, x0-1, y0-1, size+2, size+2, 2, colDim, false)
}

// highlightCells tints cells of g.
func highlightCells(screen *ebiten.Image, g gridRect, cells []int, clr color.Color) {
	cell := float32(g.Cell)
	for _, idx := range cells {
		if !game.ValidIndex(idx) {
			continue
		}
		cx, cy := g.CellOrigin(idx)
		vector.FillRect(screen, cx, cy, cell, cell, clr, false)
	}
}

// drawOverlay dims the play area and prints centred lines.
func drawOverlay(screen *ebiten.Image, lines ...string) {
	w := float32(screenWidth - logPanelWidth)
	vector.FillRect(screen, 0, 0, w, screenHeight, colOverlay, false)
	y := screenHeight/2 - len(lines)*10
	for i, l := range lines {
		clr := colDim
		if i == 0 {
			clr = colText
		}
		x := int(w)/2 - len(l)*7/2
		drawText(screen, l, x, y, clr)
		y += 22
	}
}
