package game

import (
	"fmt"
	"strings"
)

// MatchStats aggregates one game's events per player. Index 0/1 is the
// player who performed the action (for Returns: the plane's owner).
type MatchStats struct {
	Game       string
	Turns      int
	Winner     int // NoPlayer if the game did not finish
	Shots      [2]int
	Hits       [2]int
	Misses     [2]int
	Sunk       [2]int // enemy ships sunk
	Disabled   [2]int // enemy planes disabled
	Returns    [2]int // own planes that came back
	Recons     [2]int
	FogCleared [2]int
	Queries    [2]int
	QueryYes   [2]int
}

// Accuracy returns hits/shots for player i, or 0 before any shot.
func (m MatchStats) Accuracy(i int) float64 {
	if m.Shots[i] == 0 {
		return 0
	}
	return float64(m.Hits[i]) / float64(m.Shots[i])
}

// Finished reports whether the game reached a victory.
func (m MatchStats) Finished() bool { return m.Winner != NoPlayer }

func inRange(i int) bool { return i == 0 || i == 1 }

// Summarize folds an event stream into MatchStats.
func Summarize(events []Event) MatchStats {
	m := MatchStats{Winner: NoPlayer}
	for _, e := range events {
		if m.Game == "" {
			m.Game = e.Game
		}
		if e.Turn > m.Turns {
			m.Turns = e.Turn
		}
		a := e.Actor
		switch e.Kind {
		case EventHit:
			if inRange(a) {
				m.Shots[a]++
				m.Hits[a]++
			}
		case EventMiss:
			if inRange(a) {
				m.Shots[a]++
				m.Misses[a]++
			}
		case EventSunk:
			if inRange(a) {
				m.Sunk[a]++
			}
		case EventDisabled:
			if inRange(a) {
				m.Disabled[a]++
			}
		case EventReturned:
			if inRange(e.Subject) {
				m.Returns[e.Subject]++
			}
		case EventRecon:
			if inRange(a) {
				m.Recons[a]++
				m.FogCleared[a] += e.Cleared
			}
		case EventQueryAnswered:
			if inRange(a) {
				m.Queries[a]++
				if e.Answer {
					m.QueryYes[a]++
				}
			}
		case EventVictory:
			m.Winner = a
		}
	}
	return m
}

// String renders a compact two-line summary.
func (m MatchStats) String() string {
	var sb strings.Builder
	winner := "none"
	if m.Finished() {
		winner = fmt.Sprintf("P%d", m.Winner)
	}
	fmt.Fprintf(&sb, "turns=%d winner=%s\n", m.Turns, winner)
	for i := 0; i < 2; i++ {
		fmt.Fprintf(&sb, "P%d shots=%d hits=%d acc=%.2f sunk=%d disabled=%d returns=%d recon=%d fog=%d queries=%d\n",
			i, m.Shots[i], m.Hits[i], m.Accuracy(i), m.Sunk[i], m.Disabled[i], m.Returns[i],
			m.Recons[i], m.FogCleared[i], m.Queries[i])
	}
	return sb.String()
}
