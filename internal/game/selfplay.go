package game

import (
	"fmt"
	"math/rand"
	"strconv"
)

// SelfPlay is a headless harness that plays both seats with uniformly random
// legal actions. It drives the same Session commands a front-end would and is
// used by tests and the headless report.
type SelfPlay struct {
	Session *Session

	rng         *rand.Rand
	seed        int64
	maxTurns    int
	reconChance float64
	airChance   float64
	queries     bool
	checkInvars bool
	sessionOpts []SessionOption
}

// SelfPlayOption is a builder function applied to a SelfPlay before its
// session is created.
type SelfPlayOption func(*SelfPlay)

// WithSelfPlaySeed seeds both the harness and the session.
func WithSelfPlaySeed(seed int64) SelfPlayOption {
	return func(sp *SelfPlay) { sp.seed = seed }
}

// WithMaxTurns caps the game length; a capped game ends without a winner.
func WithMaxTurns(n int) SelfPlayOption {
	return func(sp *SelfPlay) {
		if n > 0 {
			sp.maxTurns = n
		}
	}
}

// WithReconChance sets the probability of a recon instead of a strike.
func WithReconChance(p float64) SelfPlayOption {
	return func(sp *SelfPlay) { sp.reconChance = p }
}

// WithAirChance sets the probability of attacking the Air layer.
func WithAirChance(p float64) SelfPlayOption {
	return func(sp *SelfPlay) { sp.airChance = p }
}

// WithQueries makes a player with superiority ask one random question per turn.
func WithQueries(on bool) SelfPlayOption {
	return func(sp *SelfPlay) { sp.queries = on }
}

// WithInvariantChecks verifies board invariants after every action.
func WithInvariantChecks(on bool) SelfPlayOption {
	return func(sp *SelfPlay) { sp.checkInvars = on }
}

// WithSessionOptions forwards options to the underlying Session.
func WithSessionOptions(opts ...SessionOption) SelfPlayOption {
	return func(sp *SelfPlay) { sp.sessionOpts = append(sp.sessionOpts, opts...) }
}

// NewSelfPlay builds a harness with a fresh session in PhaseSetup.
func NewSelfPlay(opts ...SelfPlayOption) *SelfPlay {
	sp := &SelfPlay{
		seed:        1,
		maxTurns:    1000,
		reconChance: 0.1,
		airChance:   0.25,
	}
	for _, o := range opts {
		o(sp)
	}
	sp.rng = rand.New(rand.NewSource(sp.seed)) // #nosec G404 -- test harness
	sessOpts := append([]SessionOption{WithSeed(sp.seed)}, sp.sessionOpts...)
	sp.Session = NewSession(sessOpts...)
	return sp
}

// Setup randomly places and locks in both players.
func (sp *SelfPlay) Setup() error {
	for i := 0; i < 2; i++ {
		if _, err := sp.Session.RandomPlace(i); err != nil {
			return err
		}
		if _, err := sp.Session.LockIn(i); err != nil {
			return err
		}
	}
	return nil
}

// Run plays a full game and returns its statistics.
func (sp *SelfPlay) Run() (MatchStats, error) {
	s := sp.Session
	if s.Phase() == PhaseSetup {
		if err := sp.Setup(); err != nil {
			return MatchStats{}, err
		}
	}
	for s.Phase() == PhaseBattle && s.Turn() <= sp.maxTurns {
		if err := sp.takeTurn(); err != nil {
			return Summarize(s.Events().Entries()), err
		}
		if s.Phase() != PhaseBattle {
			break
		}
		if _, err := s.EndTurn(); err != nil {
			return Summarize(s.Events().Entries()), err
		}
		if err := sp.check(); err != nil {
			return Summarize(s.Events().Entries()), err
		}
	}
	return Summarize(s.Events().Entries()), nil
}

func (sp *SelfPlay) check() error {
	if !sp.checkInvars {
		return nil
	}
	return CheckInvariants(sp.Session)
}

// takeTurn performs an optional query and exactly one strike or recon.
func (sp *SelfPlay) takeTurn() error {
	s := sp.Session
	if sp.queries && s.HasSuperiority(s.ActivePlayer()) {
		kind := QueryKind(1 + sp.rng.Intn(int(queryKindCount)-1))
		input := strconv.Itoa(1 + sp.rng.Intn(GridSize))
		if kind.ByColumn() {
			input = ColumnLabel(sp.rng.Intn(GridSize))
		}
		if _, err := s.AskQuery(kind, input); err != nil {
			return fmt.Errorf("query %s %q: %w", kind, input, err)
		}
	}

	def := s.Player(s.Defender())
	layer := LayerSea
	if sp.rng.Float64() < sp.airChance && len(untargeted(def.Air)) > 0 {
		layer = LayerAir
	}
	if _, err := s.SelectLayer(layer); err != nil {
		return err
	}

	if sp.rng.Float64() < sp.reconChance {
		if _, err := s.SelectAction(ActionRecon); err != nil {
			return err
		}
		if _, err := s.Target(sp.rng.Intn(CellCount)); err != nil {
			return err
		}
		return sp.check()
	}

	free := untargeted(def.LayerState(layer))
	if len(free) == 0 {
		return nil
	}
	if _, err := s.Target(free[sp.rng.Intn(len(free))]); err != nil {
		return err
	}
	return sp.check()
}

func untargeted(ls *LayerState) []int {
	var out []int
	for i := 0; i < CellCount; i++ {
		if !ls.Targeted(i) {
			out = append(out, i)
		}
	}
	return out
}

// CheckInvariants verifies the board rules that every command must preserve:
// no hit+miss or hit+fog cells, every placed unit owns exactly its footprint,
// no stray owners, and disabled planes are fully hit.
func CheckInvariants(s *Session) error {
	for pi := 0; pi < 2; pi++ {
		p := s.Player(pi)
		for _, layer := range []Layer{LayerSea, LayerAir} {
			ls := p.LayerState(layer)
			owned := 0
			for idx, c := range ls.Cells {
				if c.Flags&CellHit != 0 && c.Flags&CellMiss != 0 {
					return fmt.Errorf("P%d %s %s: hit and miss", pi, layer, CellName(idx))
				}
				if c.Flags&CellHit != 0 && c.Flags&CellFog != 0 {
					return fmt.Errorf("P%d %s %s: fog on hit", pi, layer, CellName(idx))
				}
				if c.Flags&CellHit != 0 && c.Owner == "" {
					return fmt.Errorf("P%d %s %s: hit on empty cell", pi, layer, CellName(idx))
				}
				if c.Owner != "" {
					owned++
					if u := p.Units[c.Owner]; u == nil || u.Layer != layer || !u.Covers(idx) {
						return fmt.Errorf("P%d %s %s: stray owner %q", pi, layer, CellName(idx), c.Owner)
					}
				}
			}
			want := 0
			for _, u := range p.Units {
				if u.Layer != layer || !u.Placed {
					continue
				}
				if len(u.Cells) != u.Size() {
					return fmt.Errorf("P%d %s: has %d cells, want %d", pi, u.ID, len(u.Cells), u.Size())
				}
				want += u.Size()
			}
			if owned != want {
				return fmt.Errorf("P%d %s: %d owned cells, units cover %d", pi, layer, owned, want)
			}
		}
		for _, u := range p.UnitsOf(UnitPlane) {
			if u.Disabled() && !u.AllHit(p.Air) {
				return fmt.Errorf("P%d %s disabled but not fully hit", pi, u.ID)
			}
		}
	}
	return nil
}
