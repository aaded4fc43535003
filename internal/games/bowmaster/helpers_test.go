package bowmaster

import (
	"testing"

	"github.com/vovakirdan/bowmaster/internal/config"
	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/engine"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

func newTestGame(t *testing.T, mutate func(*config.BowmasterConfig)) *Game {
	t.Helper()
	cfg := config.DefaultBowmasterConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)
	if err := g.State().Err; err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	return g
}

// newTestDuel starts a game directly in the duel room.
func newTestDuel(t *testing.T, starter Side, mutate func(*config.BowmasterConfig)) (*Game, *duelController) {
	t.Helper()
	g := newTestGame(t, mutate)
	g.world.session.Starter = starter
	if err := g.world.populateDuel(g.scene); err != nil {
		t.Fatalf("populateDuel() error: %v", err)
	}
	if err := g.scene.SwitchRoom(roomDuel); err != nil {
		t.Fatal(err)
	}
	c, ok := engine.FirstAs[*duelController](g.scene, tagManager)
	if !ok {
		t.Fatal("duel room has no controller")
	}
	return g, c
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func step(t *testing.T, g *Game, actions ...core.Action) core.StepResult {
	t.Helper()
	res := g.Step(input(actions...))
	if res.State.Err != nil {
		t.Fatalf("Step() error: %v", res.State.Err)
	}
	return res
}

func stepN(t *testing.T, g *Game, n int) {
	t.Helper()
	for range n {
		step(t, g)
	}
}

// runUntilRoom steps without input until room is current.
func runUntilRoom(t *testing.T, g *Game, room string, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		step(t, g)
		if g.Room() == room {
			return i
		}
	}
	t.Fatalf("room %q not reached within %d frames (in %q)", room, limit, g.Room())
	return 0
}
