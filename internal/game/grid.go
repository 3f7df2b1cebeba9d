package game

import (
	"fmt"
	"strconv"
	"strings"
)

// GridSize is the side length of every Sea and Air grid.
const GridSize = 10

// CellCount is the number of cells on one grid.
const CellCount = GridSize * GridSize

// NoCell marks an event or result that does not target a single cell.
const NoCell = -1

// Coord is a zero-based grid position.
type Coord struct {
	X int
	Y int
}

// ToIndex converts (x, y) to a row-major cell index.
func ToIndex(x, y int) int { return y*GridSize + x }

// ToCoord converts a cell index back to (x, y).
func ToCoord(index int) Coord {
	return Coord{X: index % GridSize, Y: index / GridSize}
}

// InBounds reports whether (x, y) lies on the grid.
func InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < GridSize && y < GridSize
}

// ValidIndex reports whether index addresses a grid cell.
func ValidIndex(index int) bool {
	return index >= 0 && index < CellCount
}

// ColumnLabel returns the letter used for column x ("A" for 0).
func ColumnLabel(x int) string {
	return string(rune('A' + x))
}

// CellName formats an index as column letter plus 1-based row, e.g. 0 → "A1".
func CellName(index int) string {
	c := ToCoord(index)
	return fmt.Sprintf("%s%d", ColumnLabel(c.X), c.Y+1)
}

// ParseCellName is the inverse of CellName. It accepts lower-case letters.
func ParseCellName(name string) (int, error) {
	name = strings.TrimSpace(strings.ToUpper(name))
	if len(name) < 2 {
		return NoCell, fmt.Errorf("%w: cell %q", ErrOutOfBounds, name)
	}
	x := int(name[0] - 'A')
	row, err := strconv.Atoi(name[1:])
	if err != nil || !InBounds(x, row-1) {
		return NoCell, fmt.Errorf("%w: cell %q", ErrOutOfBounds, name)
	}
	return ToIndex(x, row-1), nil
}
