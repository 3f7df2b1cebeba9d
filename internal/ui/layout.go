package ui

import "github.com/Garsondee/Skies-Seas/internal/game"

// Logical screen size. The window may be any size; ebiten scales.
const (
	screenWidth  = 1280
	screenHeight = 760
	margin       = 24
	hudTop       = 96 // first pixel row below the HUD header
)

// gridRect places a 10×10 grid on screen.
type gridRect struct {
	X, Y int // top-left pixel
	Cell int // cell side in pixels
}

// Size returns the side length of the grid in pixels.
func (g gridRect) Size() int { return g.Cell * game.GridSize }

// CellAt maps a screen pixel to a cell index.
func (g gridRect) CellAt(px, py int) (int, bool) {
	if px < g.X || py < g.Y {
		return game.NoCell, false
	}
	cx, cy := (px-g.X)/g.Cell, (py-g.Y)/g.Cell
	if !game.InBounds(cx, cy) {
		return game.NoCell, false
	}
	return game.ToIndex(cx, cy), true
}

// CellOrigin returns the top-left pixel of cell index.
func (g gridRect) CellOrigin(index int) (float32, float32) {
	c := game.ToCoord(index)
	return float32(g.X + c.X*g.Cell), float32(g.Y + c.Y*g.Cell)
}

// Screen regions.
var (
	setupSea   = gridRect{X: margin, Y: hudTop, Cell: 40}
	setupAir   = gridRect{X: margin + 440, Y: hudTop, Cell: 40}
	targetGrid = gridRect{X: margin, Y: hudTop, Cell: 44}
	ownSea     = gridRect{X: 520, Y: hudTop, Cell: 22}
	ownAir     = gridRect{X: 520, Y: hudTop + 264, Cell: 22}
)

// setupGrid returns the setup grid for layer.
func setupGrid(layer game.Layer) gridRect {
	if layer == game.LayerAir {
		return setupAir
	}
	return setupSea
}

// reconWindow returns the cells a recon centred on index would scan.
func reconWindow(index int) []int {
	c := game.ToCoord(index)
	var out []int
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if game.InBounds(c.X+dx, c.Y+dy) {
				out = append(out, game.ToIndex(c.X+dx, c.Y+dy))
			}
		}
	}
	return out
}

// wrapText breaks s into lines of at most width runes, splitting on spaces
// where possible.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	r := []rune(s)
	for len(r) > width {
		cut := width
		for i := width; i > 0; i-- {
			if r[i] == ' ' {
				cut = i
				break
			}
		}
		lines = append(lines, string(r[:cut]))
		r = r[cut:]
		for len(r) > 0 && r[0] == ' ' {
			r = r[1:]
		}
	}
	return append(lines, string(r))
}
