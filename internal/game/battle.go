package game

import "fmt"

// checkTarget validates a strike or recon against the current turn.
func (s *Session) checkTarget(what string, layer Layer, index int) error {
	if err := s.requireBattle(what); err != nil {
		return err
	}
	if !layer.Valid() {
		return fmt.Errorf("%w: layer %d", ErrOutOfBounds, layer)
	}
	if !ValidIndex(index) {
		return fmt.Errorf("%w: index %d", ErrOutOfBounds, index)
	}
	if s.actionsPerTurn > 0 && s.actionsTaken >= s.actionsPerTurn {
		return fmt.Errorf("%w: %d of %d used", ErrActionSpent, s.actionsTaken, s.actionsPerTurn)
	}
	return nil
}

// Strike fires the active player's shot at the defender's layer. A hit
// never places fog; a miss always does. Sinking the defender's last ship ends
// the game. Planes can be disabled but never decide the game.
func (s *Session) Strike(layer Layer, index int) (Event, error) {
	if err := s.checkTarget("strike", layer, index); err != nil {
		return Event{}, err
	}
	attacker, defender := s.active, s.Defender()
	def := s.players[defender]
	ls := def.LayerState(layer)
	if ls.Targeted(index) {
		return Event{}, fmt.Errorf("%w: %s %s", ErrAlreadyTargeted, layer, CellName(index))
	}
	s.actionsTaken++

	e := newEvent(EventMiss)
	e.Actor, e.Subject = attacker, defender
	e.Layer, e.Cell = layer, index

	u := def.UnitAt(layer, index)
	if u == nil {
		ls.markMiss(index)
		return s.emit(e), nil
	}

	ls.markHit(index)
	e.Kind = EventHit
	e.Unit, e.UnitKind = u.ID, u.Kind
	hit := s.emit(e)

	switch u.Kind {
	case UnitPlane:
		if u.AllHit(ls) && u.DisabledTurns <= 0 {
			u.DisabledTurns = disableDuration
			d := e
			d.Kind = EventDisabled
			s.emit(d)
		}
	case UnitShip:
		if u.AllHit(ls) {
			d := e
			d.Kind = EventSunk
			s.emit(d)
		}
	}

	if def.RemainingShipCount() == 0 {
		s.phase = PhaseGameOver
		s.winner = attacker
		v := newEvent(EventVictory)
		v.Actor, v.Subject = attacker, defender
		v.Layer, v.Cell = layer, index
		s.emit(v)
	}
	return hit, nil
}

// Recon scans the 3×3 window around center on the defender's layer, clearing
// fog and counting occupied cells. Cells off the grid are skipped. It never
// marks hits or misses.
func (s *Session) Recon(layer Layer, center int) (Event, error) {
	if err := s.checkTarget("recon", layer, center); err != nil {
		return Event{}, err
	}
	defender := s.Defender()
	ls := s.players[defender].LayerState(layer)
	c := ToCoord(center)

	occupied, cleared := 0, 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := c.X+dx, c.Y+dy
			if !InBounds(x, y) {
				continue
			}
			idx := ToIndex(x, y)
			if ls.clearFog(idx) {
				cleared++
			}
			if ls.Occupied(idx) {
				occupied++
			}
		}
	}
	s.actionsTaken++

	e := newEvent(EventRecon)
	e.Actor, e.Subject = s.active, defender
	e.Layer, e.Cell = layer, center
	e.Occupied, e.Cleared = occupied, cleared
	return s.emit(e), nil
}

// EndTurn ticks the disable timers of the player whose turn is ending, then
// hands the turn over. A plane whose timer reaches zero returns: its hit marks
// are cleared on its owner's Air layer.
func (s *Session) EndTurn() (Event, error) {
	if err := s.requireBattle("end turn"); err != nil {
		return Event{}, err
	}
	owner := s.active
	p := s.players[owner]
	for _, u := range p.UnitsOf(UnitPlane) {
		if u.DisabledTurns <= 0 {
			continue
		}
		u.DisabledTurns--
		if u.DisabledTurns != 0 {
			continue
		}
		for _, idx := range u.Cells {
			p.Air.clearHit(idx)
		}
		r := newEvent(EventReturned)
		r.Subject = owner
		r.Layer = LayerAir
		r.Cell = u.Cells[0]
		r.Unit, r.UnitKind = u.ID, u.Kind
		s.emit(r)
	}

	e := newEvent(EventTurnEnded)
	e.Actor, e.Subject = owner, 1-owner
	ended := s.emit(e)

	s.active = 1 - owner
	s.turn++
	s.resetTurnKeepLayer()
	return ended, nil
}

// resetTurnKeepLayer clears per-turn state. The selected layer carries over
// so the next player sees the same grid the previous one was attacking.
func (s *Session) resetTurnKeepLayer() {
	s.action = ActionStrike
	s.queryUsed = false
	s.actionsTaken = 0
}

// AskQuery answers one yes/no superiority question for the active player.
// Check order: phase, superiority, already used, input.
func (s *Session) AskQuery(kind QueryKind, input string) (Event, error) {
	if err := s.requireBattle("query"); err != nil {
		return Event{}, err
	}
	if !s.HasSuperiority(s.active) {
		return Event{}, fmt.Errorf("%w: %d vs %d active planes", ErrNoSuperiority,
			s.ActivePlaneCount(s.active), s.ActivePlaneCount(s.Defender()))
	}
	if s.queryUsed {
		return Event{}, ErrQueryAlreadyUsed
	}
	ans, err := resolveQuery(s.players[s.Defender()], s.battleLayer, kind, input)
	if err != nil {
		return Event{}, err
	}
	s.queryUsed = true

	e := newEvent(EventQueryAnswered)
	e.Actor, e.Subject = s.active, s.Defender()
	e.Layer = ans.Layer
	e.Query, e.Line, e.Answer = ans.Kind, ans.Line, ans.Answer
	return s.emit(e), nil
}
