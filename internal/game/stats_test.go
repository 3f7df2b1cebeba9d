package game

import (
	"math"
	"strings"
	"testing"
)

// --- Summarize ---

func TestSummarize_CountsPerActor(t *testing.T) {
	s := newBattle(t)
	mustStrike(t, s, LayerSea, 12) // hit
	mustStrike(t, s, LayerSea, 55) // miss
	mustStrike(t, s, LayerAir, 66)
	mustStrike(t, s, LayerAir, 67) // recon plane disabled
	if _, err := s.Recon(LayerSea, 55); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AskQuery(QueryShipInRow, "10"); err != nil {
		t.Fatal(err)
	}
	mustEndTurn(t, s)
	mustStrike(t, s, LayerSea, 99) // P1 miss

	m := Summarize(s.Events().Entries())
	if m.Game != s.GameID() {
		t.Fatalf("game=%q", m.Game)
	}
	if m.Shots[0] != 4 || m.Hits[0] != 3 || m.Misses[0] != 1 {
		t.Fatalf("P0 shots=%d hits=%d misses=%d", m.Shots[0], m.Hits[0], m.Misses[0])
	}
	if m.Disabled[0] != 1 || m.Recons[0] != 1 || m.FogCleared[0] != 1 {
		t.Fatalf("P0 disabled=%d recons=%d fog=%d", m.Disabled[0], m.Recons[0], m.FogCleared[0])
	}
	if m.Queries[0] != 1 || m.QueryYes[0] != 1 {
		t.Fatalf("P0 queries=%d yes=%d", m.Queries[0], m.QueryYes[0])
	}
	if m.Shots[1] != 1 || m.Misses[1] != 1 {
		t.Fatalf("P1 shots=%d misses=%d", m.Shots[1], m.Misses[1])
	}
	if m.Turns != 2 || m.Finished() {
		t.Fatalf("turns=%d finished=%t", m.Turns, m.Finished())
	}
	if math.Abs(m.Accuracy(0)-0.75) > 1e-9 {
		t.Fatalf("accuracy=%.3f", m.Accuracy(0))
	}
	if m.Accuracy(1) != 0 {
		t.Fatalf("P1 accuracy=%.3f", m.Accuracy(1))
	}
}

func TestSummarize_VictoryAndReturns(t *testing.T) {
	s := newBattle(t)
	mustStrike(t, s, LayerAir, 66)
	mustStrike(t, s, LayerAir, 67)
	for i := 0; i < 4; i++ {
		mustEndTurn(t, s)
	}
	sinkAllBut(t, s, "")

	m := Summarize(s.Events().Entries())
	if m.Returns[1] != 1 || m.Returns[0] != 0 {
		t.Fatalf("returns=%v", m.Returns)
	}
	if m.Winner != 0 || !m.Finished() || m.Sunk[0] != 5 {
		t.Fatalf("winner=%d sunk=%v", m.Winner, m.Sunk)
	}
	out := m.String()
	if !strings.Contains(out, "winner=P0") || !strings.Contains(out, "sunk=5") {
		t.Fatalf("summary:\n%s", out)
	}
}

func TestSummarize_Empty(t *testing.T) {
	m := Summarize(nil)
	if m.Finished() || m.Turns != 0 || m.Accuracy(0) != 0 {
		t.Fatalf("empty summary %+v", m)
	}
	if !strings.Contains(m.String(), "winner=none") {
		t.Fatalf("summary=%q", m.String())
	}
}
