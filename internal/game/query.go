package game

import (
	"fmt"
	"strconv"
	"strings"
)

// QueryKind is one of the yes/no questions superiority unlocks.
type QueryKind uint8

const (
	QueryNone QueryKind = iota
	QueryShipInColumn
	QueryShipInRow
	QueryOccupiedInColumn
	QueryOccupiedInRow
	queryKindCount // sentinel
)

func (q QueryKind) String() string {
	switch q {
	case QueryShipInColumn:
		return "ship_col"
	case QueryShipInRow:
		return "ship_row"
	case QueryOccupiedInColumn:
		return "occ_col"
	case QueryOccupiedInRow:
		return "occ_row"
	default:
		return "none"
	}
}

// Next cycles through the real query kinds, skipping QueryNone.
func (q QueryKind) Next() QueryKind {
	q++
	if q >= queryKindCount {
		q = QueryShipInColumn
	}
	return q
}

// ByColumn reports whether the query scans a column.
func (q QueryKind) ByColumn() bool {
	return q == QueryShipInColumn || q == QueryOccupiedInColumn
}

// ShipsOnly reports whether the query only counts ships on the Sea layer.
func (q QueryKind) ShipsOnly() bool {
	return q == QueryShipInColumn || q == QueryShipInRow
}

// LineLabel names line the way a player types it: a letter for columns,
// a 1-based number for rows.
func (q QueryKind) LineLabel(line int) string {
	if q.ByColumn() {
		return "column " + ColumnLabel(line)
	}
	return "row " + strconv.Itoa(line+1)
}

// ParseColumn reads a column letter A–J, case-insensitive.
func ParseColumn(input string) (int, error) {
	v := strings.ToUpper(strings.TrimSpace(input))
	if v == "" {
		return 0, fmt.Errorf("%w: empty column", ErrInvalidQueryInput)
	}
	c := int(v[0]) - 'A'
	if c < 0 || c >= GridSize {
		return 0, fmt.Errorf("%w: column %q, use A-%s", ErrInvalidQueryInput, input, ColumnLabel(GridSize-1))
	}
	return c, nil
}

// ParseRow reads a row number 1–10 and returns it zero-based.
func ParseRow(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > GridSize {
		return 0, fmt.Errorf("%w: row %q, use 1-%d", ErrInvalidQueryInput, input, GridSize)
	}
	return n - 1, nil
}

// QueryAnswer is the resolved result of a superiority question.
type QueryAnswer struct {
	Kind   QueryKind
	Layer  Layer // layer actually scanned
	Line   int   // zero-based row or column
	Answer bool
}

// resolveQuery scans one full row or column of defender. Occupancy counts
// regardless of hit state.
func resolveQuery(defender *Player, battleLayer Layer, kind QueryKind, input string) (QueryAnswer, error) {
	if kind == QueryNone || kind >= queryKindCount {
		return QueryAnswer{}, fmt.Errorf("%w: choose a question type", ErrInvalidQueryInput)
	}
	var (
		line int
		err  error
	)
	if kind.ByColumn() {
		line, err = ParseColumn(input)
	} else {
		line, err = ParseRow(input)
	}
	if err != nil {
		return QueryAnswer{}, err
	}

	layer := battleLayer
	if kind.ShipsOnly() {
		layer = LayerSea
	}
	ans := QueryAnswer{Kind: kind, Layer: layer, Line: line}
	for k := 0; k < GridSize; k++ {
		idx := ToIndex(line, k)
		if !kind.ByColumn() {
			idx = ToIndex(k, line)
		}
		u := defender.UnitAt(layer, idx)
		if u == nil {
			continue
		}
		if !kind.ShipsOnly() || u.Kind == UnitShip {
			ans.Answer = true
			break
		}
	}
	return ans, nil
}
