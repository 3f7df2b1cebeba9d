package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Skies-Seas/internal/game"
)

var testNames = [2]string{"Ada", "Bo"}

func TestGridRect_CellAt(t *testing.T) {
	g := gridRect{X: 100, Y: 50, Cell: 10}
	tests := []struct {
		x, y int
		want int
		ok   bool
	}{
		{100, 50, 0, true},
		{109, 59, 0, true},
		{110, 50, 1, true},
		{199, 149, 99, true},
		{200, 50, game.NoCell, false},
		{99, 60, game.NoCell, false},
		{150, 150, game.NoCell, false},
	}
	for _, tt := range tests {
		got, ok := g.CellAt(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.want, got, "(%d,%d)", tt.x, tt.y)
	}

	x, y := g.CellOrigin(23)
	assert.Equal(t, float32(130), x)
	assert.Equal(t, float32(70), y)
}

func TestScreenRegionsDoNotOverlap(t *testing.T) {
	assert.LessOrEqual(t, setupSea.X+setupSea.Size(), setupAir.X)
	assert.LessOrEqual(t, setupAir.X+setupAir.Size(), screenWidth-logPanelWidth)
	assert.LessOrEqual(t, targetGrid.X+targetGrid.Size(), ownSea.X)
	assert.LessOrEqual(t, ownSea.Y+ownSea.Size(), ownAir.Y-20)
	assert.LessOrEqual(t, ownAir.X+ownAir.Size(), screenWidth-logPanelWidth)
}

func TestReconWindow(t *testing.T) {
	assert.Len(t, reconWindow(55), 9)
	assert.ElementsMatch(t, []int{0, 1, 10, 11}, reconWindow(0))
	assert.Len(t, reconWindow(95), 6)
}

func TestWrapText(t *testing.T) {
	lines := wrapText("Ada scans C4 (sea): 3 occupied, 1 fog cleared.", 20)
	require.NotEmpty(t, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 20)
		assert.False(t, strings.HasPrefix(l, " "))
	}
	assert.Equal(t, "Ada scans C4 (sea): 3 occupied, 1 fog cleared.", strings.Join(lines, " "))

	assert.Equal(t, []string{"abcdefghij", "klm"}, wrapText("abcdefghijklm", 10))
	assert.Equal(t, []string{"short"}, wrapText("short", 10))
}

func TestDescribe(t *testing.T) {
	hit := game.Event{Kind: game.EventHit, Actor: 0, Subject: 1, Layer: game.LayerAir,
		Cell: 23, Unit: game.UnitFighter, UnitKind: game.UnitPlane}
	assert.Equal(t, "Ada hits a plane at D3 (air).", Describe(hit, testNames))

	sunk := game.Event{Kind: game.EventSunk, Actor: 1, Subject: 0, Unit: game.UnitPatrol}
	assert.Equal(t, "Bo sinks Ada's Patrol Boat!", Describe(sunk, testNames))

	q := game.Event{Kind: game.EventQueryAnswered, Actor: 0, Subject: 1, Layer: game.LayerAir,
		Query: game.QueryOccupiedInRow, Line: 4, Answer: false}
	assert.Equal(t, "Ada asks: anything on the air layer in row 5? No.", Describe(q, testNames))

	placed := game.Event{Kind: game.EventUnitPlaced, Actor: 1, Subject: 1, Cell: 42, Unit: game.UnitCarrier}
	got := Describe(placed, testNames)
	assert.Equal(t, "Bo placed the Carrier.", got)
	assert.NotContains(t, got, "C5", "placement must not reveal the cell")

	ret := game.Event{Kind: game.EventReturned, Actor: game.NoPlayer, Subject: 1, Unit: game.UnitRecon}
	assert.Equal(t, "Bo's Recon Plane is back in the air.", Describe(ret, testNames))
}

func TestQueryPrompt(t *testing.T) {
	assert.Equal(t, "any ship in column A-J", queryPrompt(game.QueryShipInColumn, game.LayerAir))
	assert.Equal(t, "anything on the sea layer in row 1-10", queryPrompt(game.QueryOccupiedInRow, game.LayerSea))
}

func TestLogPanel_RingAndFilter(t *testing.T) {
	lp := NewLogPanel(testNames)
	lp.HandleEvent(game.Event{Kind: game.EventGameStarted, Seq: 1, Actor: game.NoPlayer})
	lp.HandleEvent(game.Event{Kind: game.EventLayerSelected, Seq: 2, Actor: 0})
	require.Len(t, lp.Recent(), 1, "selection chatter is skipped")

	for i := 0; i < logMaxEntries+5; i++ {
		lp.HandleEvent(game.Event{Kind: game.EventMiss, Seq: 3 + i, Actor: i % 2, Cell: i % game.CellCount})
	}
	recent := lp.Recent()
	require.Len(t, recent, logMaxEntries)
	assert.Equal(t, 3+5, recent[0].Seq)
	assert.Equal(t, 3+logMaxEntries+4, recent[len(recent)-1].Seq)

	lp.HandleEvent(game.Event{Kind: game.EventGameStarted, Seq: 500, Actor: game.NoPlayer})
	assert.Len(t, lp.Recent(), 1, "a new game clears the panel")
}

func TestLogPanel_FollowsSession(t *testing.T) {
	lp := NewLogPanel(testNames)
	s := game.NewSession(game.WithSeed(5), game.WithPlayerNames("Ada", "Bo"), game.WithEventSink(lp))
	_, err := s.RandomPlace(0)
	require.NoError(t, err)
	_, err = s.LockIn(0)
	require.NoError(t, err)

	recent := lp.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "Ada randomized their forces.", recent[1].Text)
	assert.Equal(t, "Ada locked in.", recent[2].Text)
}

func TestQueryInputHelpers(t *testing.T) {
	assert.True(t, acceptQueryRune(game.QueryShipInColumn, 'c'))
	assert.True(t, acceptQueryRune(game.QueryOccupiedInColumn, 'J'))
	assert.False(t, acceptQueryRune(game.QueryShipInColumn, 'K'))
	assert.False(t, acceptQueryRune(game.QueryShipInColumn, '3'))
	assert.True(t, acceptQueryRune(game.QueryShipInRow, '7'))
	assert.False(t, acceptQueryRune(game.QueryOccupiedInRow, 'a'))

	assert.Equal(t, 1, maxQueryInput(game.QueryShipInColumn))
	assert.Equal(t, 2, maxQueryInput(game.QueryShipInRow))
}

func TestNextUnit(t *testing.T) {
	assert.Equal(t, game.UnitBattleship, nextUnit(game.LayerSea, game.UnitCarrier))
	assert.Equal(t, game.UnitCarrier, nextUnit(game.LayerSea, game.UnitPatrol))
	assert.Equal(t, game.UnitBomber, nextUnit(game.LayerAir, game.UnitFighter))
	assert.Equal(t, game.UnitFighter, nextUnit(game.LayerAir, game.UnitCarrier))
}
