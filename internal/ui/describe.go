package ui

import (
	"fmt"

	"github.com/Garsondee/Skies-Seas/internal/game"
)

// Describe words an event for the battle log. Placement events never name a
// cell so the log can be shown to both players.
func Describe(e game.Event, names [2]string) string {
	actor := nameOf(names, e.Actor)
	subject := nameOf(names, e.Subject)
	switch e.Kind {
	case game.EventGameStarted:
		return "New game. " + names[0] + " places first."
	case game.EventUnitPlaced:
		return fmt.Sprintf("%s placed the %s.", actor, unitName(e.Unit))
	case game.EventRandomPlaced:
		return actor + " randomized their forces."
	case game.EventPlacementCleared:
		return actor + " cleared their placement."
	case game.EventLockedIn:
		return actor + " locked in."
	case game.EventBattleStarted:
		return "Battle begins. " + names[0] + " attacks first."
	case game.EventLayerSelected:
		return fmt.Sprintf("%s targets the %s layer.", actor, e.Layer)
	case game.EventActionSelected:
		return fmt.Sprintf("%s readies %s.", actor, e.Action)
	case game.EventHit:
		return fmt.Sprintf("%s hits a %s at %s (%s).", actor, e.UnitKind, game.CellName(e.Cell), e.Layer)
	case game.EventMiss:
		return fmt.Sprintf("%s misses at %s (%s).", actor, game.CellName(e.Cell), e.Layer)
	case game.EventSunk:
		return fmt.Sprintf("%s sinks %s's %s!", actor, subject, unitName(e.Unit))
	case game.EventDisabled:
		return fmt.Sprintf("%s downs %s's %s.", actor, subject, unitName(e.Unit))
	case game.EventVictory:
		return fmt.Sprintf("%s wins! %s has no ships left.", actor, subject)
	case game.EventRecon:
		return fmt.Sprintf("%s scans %s (%s): %d occupied, %d fog cleared.",
			actor, game.CellName(e.Cell), e.Layer, e.Occupied, e.Cleared)
	case game.EventQueryAnswered:
		return fmt.Sprintf("%s asks: %s? %s.", actor, questionText(e.Query, e.Layer, e.Line), yesNo(e.Answer))
	case game.EventReturned:
		return fmt.Sprintf("%s's %s is back in the air.", subject, unitName(e.Unit))
	case game.EventTurnEnded:
		return actor + " ends the turn."
	default:
		return e.String()
	}
}

func nameOf(names [2]string, i int) string {
	if i < 0 || i > 1 {
		return "-"
	}
	return names[i]
}

func unitName(id game.UnitID) string {
	if spec, ok := game.LookupSpec(id); ok {
		return spec.Name
	}
	return string(id)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// questionText phrases a superiority question without the trailing "?".
func questionText(q game.QueryKind, layer game.Layer, line int) string {
	if q.ShipsOnly() {
		return "any ship in " + q.LineLabel(line)
	}
	return fmt.Sprintf("anything on the %s layer in %s", layer, q.LineLabel(line))
}

// queryPrompt phrases a question before its line is chosen.
func queryPrompt(q game.QueryKind, layer game.Layer) string {
	line := "row 1-10"
	if q.ByColumn() {
		line = "column A-J"
	}
	if q.ShipsOnly() {
		return "any ship in " + line
	}
	return fmt.Sprintf("anything on the %s layer in %s", layer, line)
}
