package record

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Skies-Seas/internal/game"
)

func openTemp(t *testing.T) *Recorder {
	t.Helper()
	r, err := Open(Config{
		Driver:    "sqlite",
		Path:      filepath.Join(t.TempDir(), "archive.db"),
		PlayerOne: "Ada",
		PlayerTwo: "Bo",
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "mongo"}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown record driver")
}

func TestRecorder_ArchivesSelfPlayGame(t *testing.T) {
	r := openTemp(t)

	sp := game.NewSelfPlay(
		game.WithSelfPlaySeed(4),
		game.WithQueries(true),
		game.WithSessionOptions(game.WithEventSink(r)),
	)
	stats, err := sp.Run()
	require.NoError(t, err)
	require.NoError(t, r.Err())
	require.True(t, stats.Finished())

	matches, err := r.Matches(0)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, sp.Session.GameID(), m.GameID)
	assert.Equal(t, "Ada", m.PlayerOne)
	assert.Equal(t, "Bo", m.PlayerTwo)
	assert.Equal(t, stats.Winner, m.Winner)
	assert.Equal(t, stats.Turns, m.Turns)
	assert.NotNil(t, m.EndedAt)

	events, err := r.Events(m.GameID)
	require.NoError(t, err)
	require.Len(t, events, sp.Session.Events().Len())
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].Seq, events[i-1].Seq)
	}
	assert.Equal(t, "game_started", events[0].Kind)
	assert.Equal(t, "victory", events[len(events)-1].Kind)
}

func TestRecorder_NewGameStartsNewMatch(t *testing.T) {
	r := openTemp(t)

	s := game.NewSession(game.WithSeed(2), game.WithEventSink(r))
	first := s.GameID()
	_, err := s.RandomPlace(0)
	require.NoError(t, err)
	s.StartNewGame()
	require.NoError(t, r.Err())

	matches, err := r.Matches(0)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	old, err := r.Match(first)
	require.NoError(t, err)
	assert.Equal(t, game.NoPlayer, old.Winner)
	assert.Nil(t, old.EndedAt)

	events, err := r.Events(first)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "random_placed", events[1].Kind)
	assert.Equal(t, "", events[1].Layer)

	limited, err := r.Matches(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRecorder_QueryDetail(t *testing.T) {
	e := game.Event{
		Kind:    game.EventQueryAnswered,
		Actor:   0,
		Subject: 1,
		Layer:   game.LayerSea,
		Cell:    game.NoCell,
		Query:   game.QueryShipInColumn,
		Line:    2,
		Answer:  true,
	}
	row := toRow(7, e)
	assert.Equal(t, uint(7), row.MatchID)
	assert.Equal(t, "ship_col column C", row.Detail)
	assert.Equal(t, "sea", row.Layer)
	assert.Equal(t, "", row.UnitKind)
	assert.True(t, row.Answer)
}

func TestRecorder_UnknownMatch(t *testing.T) {
	r := openTemp(t)
	_, err := r.Events("nope")
	require.ErrorIs(t, err, ErrMatchNotFound)
}
