package game

import (
	"fmt"
	"slices"
	"strings"
)

// EventKind names what happened.
type EventKind uint8

const (
	EventGameStarted EventKind = iota
	EventUnitPlaced
	EventRandomPlaced
	EventPlacementCleared
	EventLockedIn
	EventBattleStarted
	EventLayerSelected
	EventActionSelected
	EventHit
	EventMiss
	EventSunk
	EventDisabled
	EventVictory
	EventRecon
	EventQueryAnswered
	EventReturned
	EventTurnEnded
	eventKindCount // sentinel
)

var eventKindNames = [eventKindCount]string{
	EventGameStarted:      "game_started",
	EventUnitPlaced:       "unit_placed",
	EventRandomPlaced:     "random_placed",
	EventPlacementCleared: "placement_cleared",
	EventLockedIn:         "locked_in",
	EventBattleStarted:    "battle_started",
	EventLayerSelected:    "layer_selected",
	EventActionSelected:   "action_selected",
	EventHit:              "hit",
	EventMiss:             "miss",
	EventSunk:             "sunk",
	EventDisabled:         "disabled",
	EventVictory:          "victory",
	EventRecon:            "recon",
	EventQueryAnswered:    "query_answered",
	EventReturned:         "returned",
	EventTurnEnded:        "turn_ended",
}

func (k EventKind) String() string {
	if k < eventKindCount {
		return eventKindNames[k]
	}
	return "unknown"
}

// NoPlayer marks an event without an acting or affected player.
const NoPlayer = -1

// Event is a structured record of one state change. It carries data only;
// presentation layers decide how to word it.
type Event struct {
	Seq      int       // strictly increasing within a session
	Game     string    // game id the event belongs to
	Turn     int       // battle turn number, 0 during setup
	Kind     EventKind //
	Actor    int       // player who acted, or NoPlayer
	Subject  int       // player whose grid or unit was affected, or NoPlayer
	Layer    Layer     //
	Cell     int       // target or centre cell, or NoCell
	Unit     UnitID    // unit involved, if any
	UnitKind UnitKind  //
	Action   Action    // action_selected only
	Occupied int       // recon: occupied cells in the window
	Cleared  int       // recon: fog markers removed
	Query    QueryKind // query_answered only
	Line     int       // query: zero-based row or column scanned
	Answer   bool      // query: yes/no
}

// Hidden reports whether the event's cell is private to its actor. Placement
// cells would reveal a fleet, so shared logs print them as "--".
func (e Event) Hidden() bool { return e.Kind == EventUnitPlaced }

// String formats the event as a fixed-width log line.
//
//	[#012 T=03] P0   hit              air  C4   fighter
func (e Event) String() string {
	actor := "--"
	if e.Actor != NoPlayer {
		actor = fmt.Sprintf("P%d", e.Actor)
	}
	cell := "--"
	if e.Cell != NoCell && !e.Hidden() {
		cell = CellName(e.Cell)
	}
	var detail string
	switch e.Kind {
	case EventRecon:
		detail = fmt.Sprintf("occupied=%d cleared=%d", e.Occupied, e.Cleared)
	case EventQueryAnswered:
		detail = fmt.Sprintf("%s %s answer=%t", e.Query, e.Query.LineLabel(e.Line), e.Answer)
	case EventActionSelected:
		detail = e.Action.String()
	default:
		detail = string(e.Unit)
	}
	return fmt.Sprintf("[#%03d T=%02d] %-4s %-17s %-4s %-4s %s",
		e.Seq, e.Turn, actor, e.Kind, e.Layer, cell, detail)
}

// EventSink receives every event a session emits, in order.
type EventSink interface {
	HandleEvent(e Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(e Event)

// HandleEvent calls f(e).
func (f EventSinkFunc) HandleEvent(e Event) { f(e) }

// EventLog collects a session's events. It is unbounded; presentation layers
// that want a short scroll-back take the tail themselves.
type EventLog struct {
	entries []Event
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog { return &EventLog{} }

// Add records an event.
func (el *EventLog) Add(e Event) { el.entries = append(el.entries, e) }

// Len returns the number of recorded events.
func (el *EventLog) Len() int { return len(el.entries) }

// Entries returns a copy of all recorded events.
func (el *EventLog) Entries() []Event { return slices.Clone(el.entries) }

// Filter returns events of any of the given kinds. No kinds matches everything.
func (el *EventLog) Filter(kinds ...EventKind) []Event {
	var out []Event
	for _, e := range el.entries {
		if len(kinds) == 0 || containsKind(kinds, e.Kind) {
			out = append(out, e)
		}
	}
	return out
}

func containsKind(kinds []EventKind, k EventKind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

// FilterActor returns events performed by player.
func (el *EventLog) FilterActor(player int) []Event {
	var out []Event
	for _, e := range el.entries {
		if e.Actor == player {
			out = append(out, e)
		}
	}
	return out
}

// Since returns events with Seq greater than seq.
func (el *EventLog) Since(seq int) []Event {
	var out []Event
	for _, e := range el.entries {
		if e.Seq > seq {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events are of kind k.
func (el *EventLog) Count(k EventKind) int { return len(el.Filter(k)) }

// LastOf returns the most recent event of kind k, or false if none.
func (el *EventLog) LastOf(k EventKind) (Event, bool) {
	for i := len(el.entries) - 1; i >= 0; i-- {
		if el.entries[i].Kind == k {
			return el.entries[i], true
		}
	}
	return Event{}, false
}

// Tail returns a copy of at most the n most recent events, newest last.
func (el *EventLog) Tail(n int) []Event {
	if n <= 0 {
		return nil
	}
	if n >= len(el.entries) {
		return slices.Clone(el.entries)
	}
	return slices.Clone(el.entries[len(el.entries)-n:])
}

// Format returns the full log as one string, one event per line.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
