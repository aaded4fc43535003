package bowmaster

import (
	"fmt"

	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/engine"
)

// playButton is the PLAY button area in world units.
var playButton = core.RectF{X: 300, Y: 350, W: 200, H: 60}

// menuScreen is the title room. Confirm, Fire or a click on PLAY starts the
// first-turn draw.
type menuScreen struct {
	engine.Base
	w       *world
	leaving bool
}

func newMenuScreen(w *world) *menuScreen {
	m := &menuScreen{w: w}
	m.Init(layerUI, tagManager)
	return m
}

func (m *menuScreen) Update(s *engine.Scene) error {
	if m.leaving {
		return nil
	}
	in := m.w.input
	start := in.Has(core.ActionConfirm) || in.Has(core.ActionFire)
	if m.w.clicked(core.MouseLeft) && playButton.ContainsPoint(m.w.mouse()) {
		start = true
	}
	if !start {
		return nil
	}
	m.leaving = true
	return m.w.goTo(s, roomChifoumi, m.w.populateChifoumi)
}

func (m *menuScreen) Draw(dst *core.Screen) {
	_, titleY := m.w.cell(core.Vec2{Y: 150})
	dst.DrawTextCentered(titleY, "B O W M A S T E R   D U E L", core.ColorBrightWhite)
	dst.DrawTextCentered(titleY+1, "»───────────►", core.ColorBrown)

	box := m.w.rect(playButton)
	box.H = max(box.H, 3)
	box.W = max(box.W, 10)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightBlue)
	label := "PLAY"
	dst.DrawTextColored(box.X+(box.W-len(label))/2, box.Y+box.H/2, label, core.ColorBrightWhite)

	dst.DrawTextCentered(dst.Height()-2, "Enter / click PLAY to start  •  Ctrl+C to quit", core.ColorGray)
}

// endScreen is shown in the victory and defeat rooms.
type endScreen struct {
	engine.Base
	w       *world
	victory bool
}

func newEndScreen(w *world, victory bool) *endScreen {
	e := &endScreen{w: w, victory: victory}
	e.Init(layerUI, tagManager)
	return e
}

func (e *endScreen) Draw(dst *core.Screen) {
	sess := e.w.session
	h := dst.Height()

	title, color := "DEFEAT", core.ColorBrightRed
	if e.victory {
		title, color = "VICTORY! You finished the game!", core.ColorBrightYellow
	}
	dst.DrawTextCentered(h/3, title, color)
	dst.DrawTextCentered(h/3+2, fmt.Sprintf("Score: %d  |  Level %d", sess.Score, sess.Level), core.ColorBrightWhite)
	dst.DrawTextCentered(h/3+3, fmt.Sprintf("Hits %d/%d  (%.0f%%)", sess.Hits[SidePlayer], sess.Shots[SidePlayer], sess.Accuracy()*100), core.ColorGray)
	dst.DrawTextCentered(h/3+5, "Press R to restart", core.ColorGray)
}
