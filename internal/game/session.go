package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Phase is the game's top-level state. It only moves forward, except that
// StartNewGame returns to PhaseSetup.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseBattle
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseBattle:
		return "battle"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Action is what a click on the target grid does.
type Action uint8

const (
	ActionStrike Action = iota
	ActionRecon
)

func (a Action) String() string {
	if a == ActionRecon {
		return "recon"
	}
	return "strike"
}

// Default player names.
const (
	DefaultPlayerOne = "Player 1"
	DefaultPlayerTwo = "Player 2"
)

// Session owns one pass-and-play game: both players, the phase machine and
// the event log. It is not safe for concurrent use.
type Session struct {
	id          string
	phase       Phase
	names       [2]string
	players     [2]*Player
	setupPlayer int
	active      int
	turn        int
	winner      int

	// per-turn state
	battleLayer  Layer
	action       Action
	queryUsed    bool
	actionsTaken int

	actionsPerTurn int // 0 = unlimited

	log   *EventLog
	seq   int
	rng   *rand.Rand
	sinks []EventSink
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithSeed makes random placement deterministic.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game randomness, not security
	}
}

// WithPlayerNames sets the display names of both players.
func WithPlayerNames(one, two string) SessionOption {
	return func(s *Session) {
		if one != "" {
			s.names[0] = one
		}
		if two != "" {
			s.names[1] = two
		}
	}
}

// WithEventSink registers a sink that receives every event, including the
// initial game_started.
func WithEventSink(sink EventSink) SessionOption {
	return func(s *Session) {
		if sink != nil {
			s.sinks = append(s.sinks, sink)
		}
	}
}

// WithActionsPerTurn limits strikes plus recons per turn. 0 means unlimited.
func WithActionsPerTurn(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.actionsPerTurn = n
		}
	}
}

// NewSession creates a game in PhaseSetup.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		names: [2]string{DefaultPlayerOne, DefaultPlayerTwo},
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- game randomness
	}
	for _, o := range opts {
		o(s)
	}
	s.StartNewGame()
	return s
}

// AddSink registers another event sink.
func (s *Session) AddSink(sink EventSink) {
	if sink != nil {
		s.sinks = append(s.sinks, sink)
	}
}

// StartNewGame discards both players and restarts setup under a new game id.
// It is allowed in every phase.
func (s *Session) StartNewGame() Event {
	s.id = uuid.NewString()
	s.phase = PhaseSetup
	s.players = [2]*Player{NewPlayer(s.names[0]), NewPlayer(s.names[1])}
	s.setupPlayer = 0
	s.active = 0
	s.turn = 0
	s.winner = NoPlayer
	s.log = NewEventLog()
	s.resetTurn()
	return s.emit(newEvent(EventGameStarted))
}

func (s *Session) resetTurn() {
	s.battleLayer = LayerSea
	s.action = ActionStrike
	s.queryUsed = false
	s.actionsTaken = 0
}

func newEvent(kind EventKind) Event {
	return Event{Kind: kind, Actor: NoPlayer, Subject: NoPlayer, Cell: NoCell}
}

// emit stamps e, appends it to the log and fans it out to sinks.
func (s *Session) emit(e Event) Event {
	s.seq++
	e.Seq = s.seq
	e.Game = s.id
	e.Turn = s.turn
	s.log.Add(e)
	for _, sink := range s.sinks {
		sink.HandleEvent(e)
	}
	return e
}

// --- queries ---

// GameID returns the current game's identifier.
func (s *Session) GameID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// ActivePlayer returns the index of the player whose battle turn it is.
func (s *Session) ActivePlayer() int { return s.active }

// Defender returns the index of the player being attacked.
func (s *Session) Defender() int { return 1 - s.active }

// SetupPlayer returns the index of the player expected to lock in next.
func (s *Session) SetupPlayer() int { return s.setupPlayer }

// Turn returns the battle turn number, starting at 1. It is 0 during setup.
func (s *Session) Turn() int { return s.turn }

// BattleLayer returns the defender layer currently selected for attack.
func (s *Session) BattleLayer() Layer { return s.battleLayer }

// Action returns the action the next Target call performs.
func (s *Session) Action() Action { return s.action }

// QueryUsed reports whether the active player has spent this turn's query.
func (s *Session) QueryUsed() bool { return s.queryUsed }

// ActionsLeft returns the strikes/recons left this turn, or -1 if unlimited.
func (s *Session) ActionsLeft() int {
	if s.actionsPerTurn == 0 {
		return -1
	}
	return s.actionsPerTurn - s.actionsTaken
}

// Winner returns the winning player once the game is over.
func (s *Session) Winner() (int, bool) {
	return s.winner, s.phase == PhaseGameOver
}

// Events returns the event log of the current game.
func (s *Session) Events() *EventLog { return s.log }

// Player returns player i, or nil for an unknown index.
func (s *Session) Player(i int) *Player {
	if i < 0 || i > 1 {
		return nil
	}
	return s.players[i]
}

func (s *Session) player(i int) (*Player, error) {
	p := s.Player(i)
	if p == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, i)
	}
	return p, nil
}

// LayerView snapshots one layer of player i.
func (s *Session) LayerView(i int, layer Layer) (LayerView, error) {
	p, err := s.player(i)
	if err != nil {
		return LayerView{}, err
	}
	if !layer.Valid() {
		return LayerView{}, fmt.Errorf("%w: layer %d", ErrOutOfBounds, layer)
	}
	return p.View(layer), nil
}

// RemainingShipCount returns how many of player i's ships are not sunk.
func (s *Session) RemainingShipCount(i int) int {
	if p := s.Player(i); p != nil {
		return p.RemainingShipCount()
	}
	return 0
}

// ActivePlaneCount returns how many of player i's planes are not disabled.
func (s *Session) ActivePlaneCount(i int) int {
	if p := s.Player(i); p != nil {
		return p.ActivePlaneCount()
	}
	return 0
}

// HasSuperiority reports whether player i has strictly more active planes
// than the opponent. Ties give neither side superiority.
func (s *Session) HasSuperiority(i int) bool {
	if i < 0 || i > 1 {
		return false
	}
	return s.ActivePlaneCount(i) > s.ActivePlaneCount(1-i)
}

// --- setup commands ---

// editable returns player i if its placement may still change.
func (s *Session) editable(i int) (*Player, error) {
	if s.phase != PhaseSetup {
		return nil, fmt.Errorf("%w: placement during %s", ErrWrongPhase, s.phase)
	}
	p, err := s.player(i)
	if err != nil {
		return nil, err
	}
	if p.Locked {
		return nil, fmt.Errorf("%w: %s already locked in", ErrOutOfTurn, p.Name)
	}
	return p, nil
}

func (s *Session) editableUnit(i int, id UnitID) (*Player, *Unit, error) {
	p, err := s.editable(i)
	if err != nil {
		return nil, nil, err
	}
	u := p.Unit(id)
	if u == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownUnit, id)
	}
	return p, u, nil
}

func placedEvent(i int, u *Unit) Event {
	e := newEvent(EventUnitPlaced)
	e.Actor, e.Subject = i, i
	e.Layer = u.Layer
	e.Cell = u.Cells[0]
	e.Unit, e.UnitKind = u.ID, u.Kind
	return e
}

// PlaceUnit puts unit id of player i on exactly cells, moving it if it was
// already placed. cells must be the unit's footprint in one orientation,
// listed in any order.
func (s *Session) PlaceUnit(i int, id UnitID, cells []int) (Event, error) {
	p, u, err := s.editableUnit(i, id)
	if err != nil {
		return Event{}, err
	}
	for _, idx := range cells {
		if !ValidIndex(idx) {
			return Event{}, fmt.Errorf("%w: index %d", ErrOutOfBounds, idx)
		}
	}
	footprint, ok := canonicalFootprint(u.UnitSpec, cells)
	if !ok {
		return Event{}, fmt.Errorf("%w: %s", ErrShapeMismatch, id)
	}
	if err := canPlaceAs(p.LayerState(u.Layer), footprint, u.ID); err != nil {
		return Event{}, err
	}
	p.placeUnit(u, footprint)
	return s.emit(placedEvent(i, u)), nil
}

// PlaceUnitAt places unit id of player i with its origin cell at origin.
// On rejection any previous placement of the unit is left as it was.
func (s *Session) PlaceUnitAt(i int, id UnitID, origin Coord, o Orientation) (Event, error) {
	p, u, err := s.editableUnit(i, id)
	if err != nil {
		return Event{}, err
	}
	if _, err := p.placeAt(u, origin, o); err != nil {
		return Event{}, err
	}
	return s.emit(placedEvent(i, u)), nil
}

// RandomPlace replaces player i's placement with a random legal one.
func (s *Session) RandomPlace(i int) (Event, error) {
	p, err := s.editable(i)
	if err != nil {
		return Event{}, err
	}
	p.randomPlace(s.rng)
	e := newEvent(EventRandomPlaced)
	e.Actor, e.Subject = i, i
	return s.emit(e), nil
}

// ClearPlayer returns all of player i's units to unplaced.
func (s *Session) ClearPlayer(i int) (Event, error) {
	p, err := s.editable(i)
	if err != nil {
		return Event{}, err
	}
	p.clear()
	e := newEvent(EventPlacementCleared)
	e.Actor, e.Subject = i, i
	return s.emit(e), nil
}

// LockIn finishes setup for player i. Player 0 locks first; when player 1
// locks the battle starts with player 0 active.
func (s *Session) LockIn(i int) (Event, error) {
	if s.phase != PhaseSetup {
		return Event{}, fmt.Errorf("%w: lock in during %s", ErrWrongPhase, s.phase)
	}
	p, err := s.player(i)
	if err != nil {
		return Event{}, err
	}
	if i != s.setupPlayer {
		return Event{}, fmt.Errorf("%w: player %d must lock in first", ErrOutOfTurn, s.setupPlayer)
	}
	if !p.IsComplete() {
		return Event{}, fmt.Errorf("%w: %s", ErrIncompletePlacement, p.Name)
	}
	p.Locked = true
	e := newEvent(EventLockedIn)
	e.Actor, e.Subject = i, i
	locked := s.emit(e)
	if i == 0 {
		s.setupPlayer = 1
		return locked, nil
	}
	s.phase = PhaseBattle
	s.active = 0
	s.turn = 1
	s.resetTurn()
	s.emit(newEvent(EventBattleStarted))
	return locked, nil
}

// --- battle selection ---

func (s *Session) requireBattle(what string) error {
	if s.phase != PhaseBattle {
		return fmt.Errorf("%w: %s during %s", ErrWrongPhase, what, s.phase)
	}
	return nil
}

// SelectLayer chooses which defender layer the active player targets.
func (s *Session) SelectLayer(layer Layer) (Event, error) {
	if err := s.requireBattle("select layer"); err != nil {
		return Event{}, err
	}
	if !layer.Valid() {
		return Event{}, fmt.Errorf("%w: layer %d", ErrOutOfBounds, layer)
	}
	s.battleLayer = layer
	e := newEvent(EventLayerSelected)
	e.Actor, e.Subject = s.active, s.Defender()
	e.Layer = layer
	return s.emit(e), nil
}

// SelectAction chooses what Target does.
func (s *Session) SelectAction(a Action) (Event, error) {
	if err := s.requireBattle("select action"); err != nil {
		return Event{}, err
	}
	if a != ActionStrike && a != ActionRecon {
		return Event{}, fmt.Errorf("%w: action %d", ErrOutOfBounds, a)
	}
	s.action = a
	e := newEvent(EventActionSelected)
	e.Actor = s.active
	e.Layer = s.battleLayer
	e.Action = a
	return s.emit(e), nil
}

// Target performs the selected action on the selected layer at index.
func (s *Session) Target(index int) (Event, error) {
	if s.action == ActionRecon {
		return s.Recon(s.battleLayer, index)
	}
	return s.Strike(s.battleLayer, index)
}
