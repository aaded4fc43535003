package bowmaster

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bowmaster/internal/config"
	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/engine"
	"github.com/vovakirdan/bowmaster/internal/physics"
)

// Room names.
const (
	roomMenu     = "menu"
	roomChifoumi = "chifoumi"
	roomDuel     = "duel"
	roomVictory  = "victory"
	roomDefeat   = "defeat"
)

var rooms = []string{roomMenu, roomChifoumi, roomDuel, roomVictory, roomDefeat}

// Entity tags.
const (
	tagManager  = "manager"
	tagPlayer   = "player"
	tagEnemy    = "enemy"
	tagArrow    = "arrow"
	tagJoystick = "joystick"
	tagBanner   = "banner"
)

// Draw layers, back to front.
const (
	layerArena   = 0
	layerFighter = 10
	layerArrow   = 20
	layerHUD     = 30
	layerUI      = 40
)

// world is the state every entity of a game shares.
type world struct {
	cfg        config.BowmasterConfig
	session    *Session
	difficulty *config.DifficultyManager
	ballistics physics.Ballistics
	transition *engine.Transition
	rng        *rand.Rand
	logger     *log.Logger

	view        core.Viewport
	input       core.InputFrame
	prevButtons [3]bool
	ticks       int
	pending     *roomRequest
}

// mouse returns the pointer position in world units.
func (w *world) mouse() core.Vec2 {
	return w.view.ToWorld(w.input.Mouse.X, w.input.Mouse.Y)
}

// clicked reports a button press that started this frame.
func (w *world) clicked(b core.MouseButton) bool {
	return w.input.Button(b) && !w.prevButtons[b]
}

// released reports a button release that happened this frame.
func (w *world) released(b core.MouseButton) bool {
	return !w.input.Button(b) && w.prevButtons[b]
}

// cell maps a world point to screen cell coordinates.
func (w *world) cell(p core.Vec2) (int, int) {
	return w.view.ToCell(p)
}

// rect maps a world rectangle to the cells it covers.
func (w *world) rect(r core.RectF) core.Rect {
	return w.view.ToRect(r)
}

// roomRequest is a fade asked for while another one was running.
type roomRequest struct {
	target   string
	populate func(*engine.Scene) error
}

// goTo repopulates target and starts a fade towards it. While another fade
// runs the request is queued, the latest one winning, and started by
// flushPending once that fade is over.
func (w *world) goTo(s *engine.Scene, target string, populate func(*engine.Scene) error) error {
	if w.transition.Active() {
		w.pending = &roomRequest{target: target, populate: populate}
		w.logger.Debug("transition queued", "to", target, "running", w.transition.Target())
		return nil
	}
	return w.startFade(s, target, populate)
}

// flushPending starts the queued fade, if any, when no fade is running.
func (w *world) flushPending(s *engine.Scene) error {
	if w.pending == nil || w.transition.Active() {
		return nil
	}
	req := w.pending
	w.pending = nil
	return w.startFade(s, req.target, req.populate)
}

func (w *world) startFade(s *engine.Scene, target string, populate func(*engine.Scene) error) error {
	if err := s.ClearRoom(target); err != nil {
		return err
	}
	if populate != nil {
		if err := populate(s); err != nil {
			return fmt.Errorf("populate %s: %w", target, err)
		}
	}
	w.logger.Debug("transition", "from", s.CurrentRoom(), "to", target)
	return w.transition.Start(target)
}

func (w *world) populateMenu(s *engine.Scene) error {
	return s.BindTo(roomMenu, newMenuScreen(w))
}

func (w *world) populateChifoumi(s *engine.Scene) error {
	return s.BindTo(roomChifoumi, newChifoumiRound(w))
}

func (w *world) populateDuel(s *engine.Scene) error {
	player := newArcher(w)
	enemy := newEnemy(w)
	joystick := newJoystick(w)
	for _, e := range []engine.Entity{
		newArena(w),
		player,
		enemy,
		joystick,
		newDuelController(w, player, enemy, joystick),
	} {
		if err := s.BindTo(roomDuel, e); err != nil {
			return err
		}
	}
	return nil
}

func (w *world) populateEnd(room string) func(*engine.Scene) error {
	return func(s *engine.Scene) error {
		return s.BindTo(room, newEndScreen(w, room == roomVictory))
	}
}
