package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Skies-Seas/internal/game"
)

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	a.panel.Draw(screen, screenWidth-logPanelWidth, screenHeight)

	s := a.session
	switch {
	case a.passing:
		a.drawPass(screen)
	case s.Phase() == game.PhaseSetup:
		a.drawSetup(screen)
	case s.Phase() == game.PhaseBattle:
		a.drawBattle(screen)
	default:
		a.drawGameOver(screen)
	}
	a.drawStatus(screen)
}

func (a *App) drawHeader(screen *ebiten.Image, title, help string) {
	drawText(screen, "SKIES & SEAS: FOG OF WAR", margin, 22, colDim)
	drawText(screen, title, margin, 44, colText)
	drawText(screen, help, margin, 64, colDim)
}

func (a *App) drawStatus(screen *ebiten.Image) {
	if a.status == "" || a.passing {
		return
	}
	clr := colGood
	if a.statusErr {
		clr = colError
	}
	drawText(screen, a.status, margin, screenHeight-16, clr)
}

func (a *App) drawPass(screen *ebiten.Image) {
	s := a.session
	switch s.Phase() {
	case game.PhaseSetup:
		p := s.SetupPlayer()
		drawOverlay(screen,
			fmt.Sprintf("%s: place your forces", a.names[p]),
			"The other player should look away.",
			"Press Space to continue.")
	case game.PhaseBattle:
		p := s.ActivePlayer()
		drawOverlay(screen,
			fmt.Sprintf("Pass the device to %s", a.names[p]),
			fmt.Sprintf("Turn %d", s.Turn()),
			"Press Space when ready.")
	}
}

func (a *App) drawSetup(screen *ebiten.Image) {
	s := a.session
	p := s.SetupPlayer()
	pl := s.Player(p)
	a.drawHeader(screen,
		fmt.Sprintf("%s: setup (%s)", a.names[p], a.orient),
		"Click to place  R rotate  1/2 layer  Tab next unit  X random  Backspace clear  L lock in  N new")

	for _, l := range []game.Layer{game.LayerSea, game.LayerAir} {
		title := fmt.Sprintf("Your %s", l)
		if l == a.setupLayer {
			title += "  <"
		}
		drawGrid(screen, setupGrid(l), pl.View(l), title)
	}
	a.drawPlacementPreview(screen, pl)

	y := setupSea.Y + setupSea.Size() + 36
	for _, spec := range game.Catalog() {
		u := pl.Unit(spec.ID)
		mark := "  "
		if spec.ID == a.selected {
			mark = "> "
		}
		state := "not placed"
		if u.Placed {
			state = "placed at " + game.CellName(u.Cells[0])
		}
		clr := colDim
		if spec.ID == a.selected {
			clr = colText
		}
		line := fmt.Sprintf("%s%-12s %-5s size %d  %s", mark, spec.Name, spec.Layer, spec.Size(), state)
		drawText(screen, line, margin, y, clr)
		y += 16
	}
}

func (a *App) drawPlacementPreview(screen *ebiten.Image, pl *game.Player) {
	x, y := ebiten.CursorPosition()
	g := setupGrid(a.setupLayer)
	idx, ok := g.CellAt(x, y)
	if !ok {
		return
	}
	u := pl.Unit(a.selected)
	if u == nil {
		return
	}
	cells, err := u.Footprint(game.ToCoord(idx), a.orient)
	if err != nil {
		highlightCells(screen, g, []int{idx}, colPreviewBad)
		return
	}
	clr := colPreviewOK
	for _, c := range cells {
		if owner := pl.LayerState(u.Layer).Owner(c); owner != "" && owner != u.ID {
			clr = colPreviewBad
			break
		}
	}
	highlightCells(screen, g, cells, clr)
}

func (a *App) drawBattle(screen *ebiten.Image) {
	s := a.session
	me, them := s.ActivePlayer(), s.Defender()
	layer := s.BattleLayer()

	a.drawHeader(screen,
		fmt.Sprintf("Turn %d: %s attacks %s's %s with %s", s.Turn(), a.names[me], a.names[them], layer, s.Action()),
		"Click target  S/A layer  F strike  C recon  Q question  E end turn  N new")

	view, err := s.LayerView(them, layer)
	if err == nil {
		drawGrid(screen, targetGrid, view.Masked(), fmt.Sprintf("Enemy %s", layer))
	}
	if s.Action() == game.ActionRecon {
		if idx, ok := targetGrid.CellAt(ebiten.CursorPosition()); ok {
			highlightCells(screen, targetGrid, reconWindow(idx), colRecon)
		}
	}

	own := s.Player(me)
	drawGrid(screen, ownSea, own.View(game.LayerSea), "Your sea")
	drawGrid(screen, ownAir, own.View(game.LayerAir), "Your air")

	a.drawScoreboard(screen, me, them)
}

func (a *App) drawScoreboard(screen *ebiten.Image, me, them int) {
	s := a.session
	x, y := margin, targetGrid.Y+targetGrid.Size()+30
	for _, i := range []int{me, them} {
		line := fmt.Sprintf("%-10s ships %d/5  planes %d/3", a.names[i], s.RemainingShipCount(i), s.ActivePlaneCount(i))
		drawText(screen, line, x, y, playerColor(i))
		y += 18
	}

	switch {
	case s.HasSuperiority(me) && s.QueryUsed():
		drawText(screen, "Air superiority: question used this turn.", x, y, colDim)
	case s.HasSuperiority(me):
		drawText(screen, "Air superiority: press Q to ask a question.", x, y, colGood)
	default:
		drawText(screen, "No air superiority.", x, y, colDim)
	}
	y += 18

	if left := s.ActionsLeft(); left >= 0 {
		drawText(screen, fmt.Sprintf("Actions left this turn: %d", left), x, y, colDim)
		y += 18
	}

	if a.typing {
		prompt := fmt.Sprintf("Ask: %s? %s_   Enter ask  Q change  Esc cancel",
			queryPrompt(a.queryKind, s.BattleLayer()), a.queryInput)
		drawText(screen, prompt, x, y, colText)
	}
}

func (a *App) drawGameOver(screen *ebiten.Image) {
	s := a.session
	w, _ := s.Winner()
	a.drawHeader(screen,
		fmt.Sprintf("%s wins after %d turns", a.names[w], s.Turn()),
		"N new game  K copy log")

	// Both fleets are revealed.
	for i, g := range []gridRect{
		{X: margin, Y: hudTop, Cell: 36},
		{X: margin + 440, Y: hudTop, Cell: 36},
	} {
		drawGrid(screen, g, s.Player(i).View(game.LayerSea), fmt.Sprintf("%s sea", a.names[i]))
	}
	stats := game.Summarize(s.Events().Entries())
	y := hudTop + 36*game.GridSize + 40
	for i := 0; i < 2; i++ {
		line := fmt.Sprintf("%-10s shots %d  hits %d  accuracy %.0f%%  recons %d  questions %d",
			a.names[i], stats.Shots[i], stats.Hits[i], 100*stats.Accuracy(i), stats.Recons[i], stats.Queries[i])
		drawText(screen, line, margin, y, playerColor(i))
		y += 18
	}
}
