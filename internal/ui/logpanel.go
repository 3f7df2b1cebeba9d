package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Skies-Seas/internal/game"
)

const (
	logPanelWidth = 320
	logMaxEntries = 80
	logLineHeight = 14
	logWrapWidth  = 48 // DebugPrint glyphs are 6px wide
)

// logEntry is one described event in the panel.
type logEntry struct {
	Seq   int
	Actor int
	Text  string
}

// LogPanel is a ring buffer of described events rendered on the right side
// of the window. Selection chatter is skipped; a new game clears it.
type LogPanel struct {
	names   [2]string
	entries []logEntry
	head    int
	count   int
}

// NewLogPanel creates an empty panel.
func NewLogPanel(names [2]string) *LogPanel {
	return &LogPanel{
		names:   names,
		entries: make([]logEntry, logMaxEntries),
	}
}

// HandleEvent implements game.EventSink.
func (lp *LogPanel) HandleEvent(e game.Event) {
	switch e.Kind {
	case game.EventLayerSelected, game.EventActionSelected:
		return
	case game.EventGameStarted:
		lp.head, lp.count = 0, 0
	}
	lp.add(logEntry{Seq: e.Seq, Actor: e.Actor, Text: Describe(e, lp.names)})
}

func (lp *LogPanel) add(le logEntry) {
	lp.entries[lp.head] = le
	lp.head = (lp.head + 1) % logMaxEntries
	if lp.count < logMaxEntries {
		lp.count++
	}
}

// Recent returns entries oldest first.
func (lp *LogPanel) Recent() []logEntry {
	result := make([]logEntry, lp.count)
	for i := 0; i < lp.count; i++ {
		idx := (lp.head - lp.count + i + logMaxEntries) % logMaxEntries
		result[i] = lp.entries[idx]
	}
	return result
}

// Draw renders the panel at panelX, newest entries at the bottom.
func (lp *LogPanel) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 8, G: 12, B: 20, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 100, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 18, color.RGBA{R: 18, G: 28, B: 44, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "BATTLE LOG  (K: copy)", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 18, float32(panelX+logPanelWidth), 18, 1.0, color.RGBA{R: 50, G: 80, B: 110, A: 200}, false)

	type line struct {
		actor  int
		text   string
		recent bool
	}
	entries := lp.Recent()
	var lines []line
	for i, e := range entries {
		recent := i >= len(entries)-3
		for _, l := range wrapText(e.Text, logWrapWidth) {
			lines = append(lines, line{actor: e.Actor, text: l, recent: recent})
		}
	}

	maxVisible := (panelH - 24) / logLineHeight
	if len(lines) > maxVisible {
		lines = lines[len(lines)-maxVisible:]
	}

	y := 22
	for _, l := range lines {
		if l.recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 24, G: 36, B: 56, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, playerColor(l.actor), false)
		ebitenutil.DebugPrintAt(screen, l.text, panelX+12, y-1)
		y += logLineHeight
	}
}
