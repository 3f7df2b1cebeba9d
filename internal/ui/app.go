// Package ui is the pass-and-play desktop front-end. It turns input into
// Session commands and draws Session views; it holds no game rules.
package ui

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Skies-Seas/internal/game"
)

// App implements ebiten.Game on top of a Session.
type App struct {
	session *game.Session
	log     zerolog.Logger
	panel   *LogPanel
	names   [2]string

	// passing hides both boards until the next player confirms.
	passing bool

	// setup selection
	setupLayer game.Layer
	selected   game.UnitID
	orient     game.Orientation

	// superiority question being typed
	typing     bool
	queryKind  game.QueryKind
	queryInput string

	status    string
	statusErr bool
}

// NewApp wires the app to s and replays the events s already emitted.
func NewApp(s *game.Session, log zerolog.Logger) *App {
	names := [2]string{s.Player(0).Name, s.Player(1).Name}
	a := &App{
		session: s,
		log:     log.With().Str("component", "ui").Logger(),
		panel:   NewLogPanel(names),
		names:   names,
	}
	for _, e := range s.Events().Entries() {
		a.panel.HandleEvent(e)
	}
	s.AddSink(a.panel)
	a.resetSelection()
	return a
}

func justPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (a *App) resetSelection() {
	a.passing = true
	a.typing = false
	a.queryKind = game.QueryNone
	a.queryInput = ""
	a.orient = game.Horizontal
	a.setupLayer = game.LayerSea
	a.selected = game.UnitCarrier
}

// do reports a command result in the status line.
func (a *App) do(e game.Event, err error) bool {
	if err != nil {
		a.status, a.statusErr = err.Error(), true
		a.log.Debug().Err(err).Stringer("kind", game.KindOf(err)).Msg("Command rejected")
		return false
	}
	a.status, a.statusErr = Describe(e, a.names), false
	return true
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.typing && a.session.Phase() == game.PhaseBattle && !a.passing {
		a.updateQueryInput()
		return nil
	}

	switch {
	case justPressed(ebiten.KeyN):
		a.session.StartNewGame()
		a.resetSelection()
		a.status, a.statusErr = "New game.", false
		return nil
	case justPressed(ebiten.KeyK):
		a.copyLog()
		return nil
	}

	switch {
	case a.passing && a.session.Phase() != game.PhaseGameOver:
		if justPressed(ebiten.KeySpace) || justPressed(ebiten.KeyEnter) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			a.passing = false
			a.status = ""
		}
	case a.session.Phase() == game.PhaseSetup:
		a.updateSetup()
	case a.session.Phase() == game.PhaseBattle:
		a.updateBattle()
	default:
		a.passing = false
	}
	return nil
}

func (a *App) copyLog() {
	if err := clipboard.WriteAll(a.session.Events().Format()); err != nil {
		a.status, a.statusErr = "Clipboard unavailable: "+err.Error(), true
		a.log.Warn().Err(err).Msg("Copy log failed")
		return
	}
	a.status, a.statusErr = fmt.Sprintf("Copied %d log lines.", a.session.Events().Len()), false
}

// --- setup ---

func (a *App) selectSetupLayer(l game.Layer) {
	a.setupLayer = l
	p := a.session.Player(a.session.SetupPlayer())
	if u := p.NextUnplaced(l); u != nil {
		a.selected = u.ID
		return
	}
	if units := layerUnits(l); len(units) > 0 {
		a.selected = units[0].ID
	}
}

// layerUnits lists the catalog units that live on l, in catalog order.
func layerUnits(l game.Layer) []game.UnitSpec {
	var out []game.UnitSpec
	for _, spec := range game.Catalog() {
		if spec.Layer == l {
			out = append(out, spec)
		}
	}
	return out
}

// nextUnit returns the unit after id on l, wrapping around.
func nextUnit(l game.Layer, id game.UnitID) game.UnitID {
	units := layerUnits(l)
	for i, spec := range units {
		if spec.ID == id {
			return units[(i+1)%len(units)].ID
		}
	}
	if len(units) == 0 {
		return id
	}
	return units[0].ID
}

func (a *App) updateSetup() {
	s := a.session
	p := s.SetupPlayer()

	switch {
	case justPressed(ebiten.KeyR):
		a.orient = a.orient.Toggle()
	case justPressed(ebiten.Key1):
		a.selectSetupLayer(game.LayerSea)
	case justPressed(ebiten.Key2):
		a.selectSetupLayer(game.LayerAir)
	case justPressed(ebiten.KeyTab):
		a.selected = nextUnit(a.setupLayer, a.selected)
	case justPressed(ebiten.KeyX):
		a.do(s.RandomPlace(p))
	case justPressed(ebiten.KeyBackspace):
		if a.do(s.ClearPlayer(p)) {
			a.selectSetupLayer(a.setupLayer)
		}
	case justPressed(ebiten.KeyL):
		if a.do(s.LockIn(p)) {
			a.resetSelection()
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	for _, l := range []game.Layer{game.LayerSea, game.LayerAir} {
		idx, ok := setupGrid(l).CellAt(x, y)
		if !ok {
			continue
		}
		if l != a.setupLayer {
			a.selectSetupLayer(l)
		}
		if a.do(s.PlaceUnitAt(p, a.selected, game.ToCoord(idx), a.orient)) {
			if next := s.Player(p).NextUnplaced(l); next != nil {
				a.selected = next.ID
			}
		}
		return
	}
}

// --- battle ---

func (a *App) updateBattle() {
	s := a.session
	switch {
	case justPressed(ebiten.KeyS):
		a.do(s.SelectLayer(game.LayerSea))
	case justPressed(ebiten.KeyA):
		a.do(s.SelectLayer(game.LayerAir))
	case justPressed(ebiten.KeyF):
		a.do(s.SelectAction(game.ActionStrike))
	case justPressed(ebiten.KeyC):
		a.do(s.SelectAction(game.ActionRecon))
	case justPressed(ebiten.KeyQ):
		a.typing = true
		a.queryKind = a.queryKind.Next()
		a.queryInput = ""
	case justPressed(ebiten.KeyE):
		if a.do(s.EndTurn()) {
			a.passing = true
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if idx, ok := targetGrid.CellAt(ebiten.CursorPosition()); ok {
		a.do(s.Target(idx))
	}
}

// acceptQueryRune reports whether r may be typed for a question of kind q.
func acceptQueryRune(q game.QueryKind, r rune) bool {
	if q.ByColumn() {
		r = unicode.ToUpper(r)
		return r >= 'A' && r < 'A'+game.GridSize
	}
	return r >= '0' && r <= '9'
}

// maxQueryInput is the longest answer a question takes: "J" or "10".
func maxQueryInput(q game.QueryKind) int {
	if q.ByColumn() {
		return 1
	}
	return 2
}

func (a *App) updateQueryInput() {
	switch {
	case justPressed(ebiten.KeyEscape):
		a.typing = false
		a.queryInput = ""
		return
	case justPressed(ebiten.KeyQ):
		a.queryKind = a.queryKind.Next()
		a.queryInput = ""
		return
	case justPressed(ebiten.KeyBackspace):
		if a.queryInput != "" {
			a.queryInput = a.queryInput[:len(a.queryInput)-1]
		}
		return
	case justPressed(ebiten.KeyEnter) || justPressed(ebiten.KeyNumpadEnter):
		e, err := a.session.AskQuery(a.queryKind, a.queryInput)
		a.queryInput = ""
		a.do(e, err)
		// Bad input keeps the prompt open for another try.
		if !errors.Is(err, game.ErrInvalidQueryInput) {
			a.typing = false
		}
		return
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if acceptQueryRune(a.queryKind, r) && len(a.queryInput) < maxQueryInput(a.queryKind) {
			a.queryInput += strings.ToUpper(string(r))
		}
	}
}

// Layout implements ebiten.Game.
func (a *App) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}
