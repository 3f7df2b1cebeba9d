package game

import (
	"strings"
	"testing"
)

func sampleLog() *EventLog {
	el := NewEventLog()
	kinds := []EventKind{EventGameStarted, EventHit, EventMiss, EventHit, EventTurnEnded, EventRecon}
	for i, k := range kinds {
		e := newEvent(k)
		e.Seq = i + 1
		e.Actor = i % 2
		el.Add(e)
	}
	return el
}

func TestEventLog_Filters(t *testing.T) {
	el := sampleLog()
	if el.Len() != 6 {
		t.Fatalf("len=%d", el.Len())
	}
	if got := len(el.Filter(EventHit, EventMiss)); got != 3 {
		t.Fatalf("hit|miss=%d, want 3", got)
	}
	if got := len(el.Filter()); got != 6 {
		t.Fatalf("empty filter=%d, want 6", got)
	}
	if got := len(el.FilterActor(1)); got != 3 {
		t.Fatalf("actor 1=%d, want 3", got)
	}
	since := el.Since(4)
	if len(since) != 2 || since[0].Kind != EventTurnEnded {
		t.Fatalf("since 4=%v", since)
	}
	if el.Count(EventHit) != 2 {
		t.Fatalf("count hit=%d", el.Count(EventHit))
	}
	last, ok := el.LastOf(EventHit)
	if !ok || last.Seq != 4 {
		t.Fatalf("last hit=%+v", last)
	}
	if _, ok := el.LastOf(EventVictory); ok {
		t.Fatal("no victory expected")
	}
	tail := el.Tail(2)
	if len(tail) != 2 || tail[1].Kind != EventRecon {
		t.Fatalf("tail=%v", tail)
	}
	if len(el.Tail(50)) != 6 {
		t.Fatal("tail larger than log should return everything")
	}
}

func TestEvent_String(t *testing.T) {
	e := newEvent(EventHit)
	e.Seq, e.Turn, e.Actor = 12, 3, 0
	e.Layer, e.Cell, e.Unit = LayerAir, ToIndex(2, 3), UnitFighter
	got := e.String()
	for _, want := range []string{"[#012 T=03]", "P0", "hit", "air", "C4", "fighter"} {
		if !strings.Contains(got, want) {
			t.Fatalf("%q missing %q", got, want)
		}
	}

	q := newEvent(EventQueryAnswered)
	q.Query, q.Line, q.Answer = QueryShipInColumn, 4, true
	if got := q.String(); !strings.Contains(got, "ship_col column E answer=true") || !strings.Contains(got, "--") {
		t.Fatalf("query line=%q", got)
	}
}

func TestEventLog_Format(t *testing.T) {
	s := newBattle(t)
	mustStrike(t, s, LayerSea, 12)
	out := s.Events().Format()
	if lines := strings.Count(out, "\n"); lines != s.Events().Len() {
		t.Fatalf("format has %d lines, log has %d events", lines, s.Events().Len())
	}
	if !strings.Contains(out, "battle_started") || !strings.Contains(out, "C2") {
		t.Fatalf("format missing content:\n%s", out)
	}
}

func TestEventLog_FormatHidesPlacementCells(t *testing.T) {
	s := newBattle(t)
	placed := s.Events().Filter(EventUnitPlaced)
	if len(placed) == 0 {
		t.Fatal("expected unit_placed events")
	}
	lines := strings.Split(s.Events().Format(), "\n")
	for _, line := range lines {
		if !strings.Contains(line, "unit_placed") {
			continue
		}
		for _, e := range placed {
			if strings.Contains(line, " "+CellName(e.Cell)+" ") {
				t.Fatalf("placement line reveals %s: %q", CellName(e.Cell), line)
			}
		}
	}
	if got := placed[0].String(); !strings.Contains(got, " -- ") {
		t.Fatalf("placement cell should print as --, got %q", got)
	}
}

func TestEventLog_ReturnsCopies(t *testing.T) {
	el := NewEventLog()
	for i := 1; i <= 3; i++ {
		e := newEvent(EventMiss)
		e.Seq = i
		el.Add(e)
	}
	el.Tail(2)[0].Kind = EventVictory
	el.Entries()[0].Kind = EventVictory
	if el.Count(EventVictory) != 0 {
		t.Fatal("callers must not be able to rewrite logged events")
	}
	if el.Tail(0) != nil || el.Tail(-1) != nil {
		t.Fatal("non-positive tail should be empty")
	}
}
