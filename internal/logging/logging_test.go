package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Skies-Seas/internal/game"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"Error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"off", zerolog.Disabled},
		{"loud", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestEventLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	sink := NewEventLogger(New(&buf, zerolog.InfoLevel))

	s := game.NewSession(game.WithSeed(1), game.WithEventSink(sink))
	for i := 0; i < 2; i++ {
		_, err := s.RandomPlace(i)
		require.NoError(t, err)
		_, err = s.LockIn(i)
		require.NoError(t, err)
	}
	_, err := s.Recon(game.LayerSea, 0)
	require.NoError(t, err)

	lines := decodeLines(t, &buf)
	require.NotEmpty(t, lines)

	assert.Equal(t, "game_started", lines[0]["message"])
	assert.Equal(t, s.GameID(), lines[0]["game"])
	assert.Equal(t, "game", lines[0]["component"])

	last := lines[len(lines)-1]
	assert.Equal(t, "recon", last["message"])
	assert.Equal(t, "info", last["level"])
	assert.Equal(t, "sea", last["layer"])
	assert.Equal(t, "A1", last["cell"])
	assert.Equal(t, float64(0), last["actor"])
	assert.Equal(t, float64(1), last["subject"])
	assert.Contains(t, last, "occupied")
}

func TestEventLogger_DebugChatterFiltered(t *testing.T) {
	var buf bytes.Buffer
	sink := NewEventLogger(New(&buf, zerolog.InfoLevel))

	s := game.NewSession(game.WithSeed(1), game.WithEventSink(sink))
	_, err := s.PlaceUnitAt(0, game.UnitPatrol, game.Coord{X: 0, Y: 0}, game.Horizontal)
	require.NoError(t, err)

	for _, l := range decodeLines(t, &buf) {
		assert.NotEqual(t, "unit_placed", l["message"])
	}

	buf.Reset()
	debug := NewEventLogger(New(&buf, zerolog.DebugLevel))
	debug.HandleEvent(game.Event{Kind: game.EventUnitPlaced, Actor: 0, Subject: 0, Cell: 0, Unit: game.UnitPatrol})
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "patrol", lines[0]["unit"])
	assert.Equal(t, "debug", lines[0]["level"])
	assert.NotContains(t, lines[0], "cell", "placement cells stay private")
}
