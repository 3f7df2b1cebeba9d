// Package logging builds the zerolog loggers used by the binaries and
// forwards game events into them.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Skies-Seas/internal/game"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names fall
// back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New returns a JSON logger writing to w at level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// NewConsole returns a human-readable logger on stderr, plus a copy to file
// without colours when file is non-nil.
func NewConsole(level zerolog.Level, file io.Writer) zerolog.Logger {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}}
	if file != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: file, TimeFormat: time.RFC3339, NoColor: true})
	}
	return New(zerolog.MultiLevelWriter(writers...), level)
}

// EventLogger is a game.EventSink that writes one log line per event.
// Combat outcomes log at info, selection and placement chatter at debug.
type EventLogger struct {
	log zerolog.Logger
}

// NewEventLogger wraps log as an event sink.
func NewEventLogger(log zerolog.Logger) *EventLogger {
	return &EventLogger{log: log.With().Str("component", "game").Logger()}
}

func levelFor(k game.EventKind) zerolog.Level {
	switch k {
	case game.EventUnitPlaced, game.EventLayerSelected, game.EventActionSelected:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// HandleEvent implements game.EventSink.
func (el *EventLogger) HandleEvent(e game.Event) {
	ev := el.log.WithLevel(levelFor(e.Kind))
	if ev == nil {
		return
	}
	ev = ev.Int("seq", e.Seq).
		Str("game", e.Game).
		Int("turn", e.Turn)
	if e.Actor != game.NoPlayer {
		ev = ev.Int("actor", e.Actor)
	}
	if e.Subject != game.NoPlayer {
		ev = ev.Int("subject", e.Subject)
	}
	switch e.Kind {
	case game.EventGameStarted, game.EventBattleStarted, game.EventTurnEnded,
		game.EventLockedIn, game.EventRandomPlaced, game.EventPlacementCleared:
	case game.EventActionSelected:
		ev = ev.Stringer("action", e.Action)
	case game.EventRecon:
		ev = ev.Stringer("layer", e.Layer).
			Str("cell", game.CellName(e.Cell)).
			Int("occupied", e.Occupied).
			Int("cleared", e.Cleared)
	case game.EventQueryAnswered:
		ev = ev.Stringer("layer", e.Layer).
			Stringer("query", e.Query).
			Str("line", e.Query.LineLabel(e.Line)).
			Bool("answer", e.Answer)
	default:
		ev = ev.Stringer("layer", e.Layer)
		if e.Cell != game.NoCell && !e.Hidden() {
			ev = ev.Str("cell", game.CellName(e.Cell))
		}
		if e.Unit != "" {
			ev = ev.Str("unit", string(e.Unit))
		}
	}
	ev.Msg(e.Kind.String())
}
