// Package bowmaster implements Bowmaster Duel, a turn-based archery duel.
// A rock-paper-scissors draw decides who shoots first; the player aims with
// an on-screen joystick or the aim keys, and clears a level by downing the
// enemy and walking to the flag.
package bowmaster

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bowmaster/internal/config"
	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/engine"
	"github.com/vovakirdan/bowmaster/internal/physics"
	"github.com/vovakirdan/bowmaster/internal/registry"
)

// Minimum terminal size the duel can be drawn on.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes game and scene logging to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the Bowmaster Duel game logic.
type Game struct {
	cfg        config.BowmasterConfig
	configured bool
	runtime    core.RuntimeConfig

	scene *engine.Scene
	world *world
	frame *core.Screen // off-screen buffer the transition composites

	paused bool
	err    error
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game using cfg as is.
func NewWithConfig(cfg config.BowmasterConfig) *Game {
	return &Game{cfg: cfg, configured: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bowmaster"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bowmaster Duel"
}

// Reset builds the rooms and starts on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.err = nil

	if !g.configured {
		cfg, err := config.LoadBowmaster(configPath)
		if err != nil {
			logger.Warn("using default config", "err", err)
			cfg = config.DefaultBowmasterConfig()
		}
		g.cfg = cfg
	}
	cfg := g.cfg
	if difficultyPreset != "" && !g.configured {
		config.ApplyBowmasterPreset(&cfg, difficultyPreset)
	}

	gameLog := logger.With("game", g.ID())
	g.scene = engine.NewScene(gameLog)
	w := &world{
		cfg:        cfg,
		session:    newSession(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		ballistics: physics.Ballistics{Gravity: cfg.Physics.Gravity, FloorY: cfg.Physics.FloorY},
		rng:        rand.New(rand.NewSource(runtime.Seed)),
		logger:     gameLog,
		view:       core.NewViewport(cfg.World.Width, cfg.World.Height, runtime.ScreenW, runtime.ScreenH),
		input:      core.NewInputFrame(),
	}
	w.transition = engine.NewTransition(g.scene, engine.TransitionOptions{
		Rate:  cfg.Transition.Rate,
		Sigma: cfg.Transition.Sigma,
		Shake: cfg.Transition.Shake,
		Seed:  runtime.Seed,
	})
	g.world = w
	g.frame = core.NewScreen(runtime.ScreenW, runtime.ScreenH)

	for _, name := range rooms {
		if err := g.scene.CreateRoom(name); err != nil {
			g.fail(err)
			return
		}
	}
	if err := w.populateMenu(g.scene); err != nil {
		g.fail(err)
		return
	}
	if err := g.scene.SwitchRoom(roomMenu); err != nil {
		g.fail(err)
		return
	}
	gameLog.Debug("reset", "seed", runtime.Seed, "screen", [2]int{runtime.ScreenW, runtime.ScreenH})
}

// Step advances the scene and the running transition by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.scene == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	w := g.world
	w.input = in
	dt := in.DT()

	if err := g.scene.Update(dt); err != nil {
		g.fail(err)
		return core.StepResult{State: g.State()}
	}
	if err := w.transition.Advance(dt); err != nil {
		g.fail(err)
		return core.StepResult{State: g.State()}
	}
	if err := w.flushPending(g.scene); err != nil {
		g.fail(err)
		return core.StepResult{State: g.State()}
	}
	w.prevButtons = in.Buttons
	w.ticks++

	return core.StepResult{State: g.State()}
}

// fail ends the game on an engine error.
func (g *Game) fail(err error) {
	g.err = err
	logger.Error("game stopped", "err", err)
}

// Render draws the current room off-screen and composites it onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.scene == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	w := g.world
	w.view = core.NewViewport(w.cfg.World.Width, w.cfg.World.Height, dst.Width(), dst.Height())
	g.frame.Resize(dst.Width(), dst.Height())
	g.frame.Clear()
	g.scene.Draw(g.frame)

	if g.paused {
		drawCenteredMessage(g.frame, "PAUSED", "Press P to resume")
	}
	if g.err != nil {
		drawCenteredMessage(g.frame, "ENGINE ERROR", g.err.Error())
	}

	w.transition.Composite(dst, g.frame)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}

// Room returns the name of the current room.
func (g *Game) Room() string {
	if g.scene == nil {
		return ""
	}
	return g.scene.CurrentRoom()
}

// Session returns the running session.
func (g *Game) Session() *Session {
	if g.world == nil {
		return nil
	}
	return g.world.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Paused: g.paused,
		Err:    g.err,
	}
	if s := g.Session(); s != nil {
		state.Score = s.Score
	}
	state.GameOver = g.err != nil || slices.Contains([]string{roomVictory, roomDefeat}, g.Room())
	return state
}

// Register the game with the registry
func init() {
	registry.Register("bowmaster", func() registry.Game {
		return New()
	})
}
