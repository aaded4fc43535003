package bowmaster

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/bowmaster/internal/config"
	"github.com/vovakirdan/bowmaster/internal/core"
)

func TestResetStartsOnMenu(t *testing.T) {
	g := newTestGame(t, nil)

	if g.Room() != roomMenu {
		t.Errorf("Room() after Reset = %q, expected %q", g.Room(), roomMenu)
	}
	for _, name := range rooms {
		if !g.scene.HasRoom(name) {
			t.Errorf("room %q missing after Reset", name)
		}
	}
	state := g.State()
	if state.GameOver || state.Paused || state.Score != 0 {
		t.Errorf("State() after Reset = %+v, expected a fresh game", state)
	}
}

func TestMenuConfirmFadesToChifoumi(t *testing.T) {
	g := newTestGame(t, nil)

	step(t, g, core.ActionConfirm)
	if !g.world.transition.Active() {
		t.Fatal("Confirm on the menu should start a transition")
	}
	if g.Room() != roomMenu {
		t.Errorf("Room() right after Confirm = %q, expected the menu until the midpoint", g.Room())
	}

	frames := runUntilRoom(t, g, roomChifoumi, 100)
	if frames != 50 {
		t.Errorf("switched to chifoumi %d frames after the Confirm frame, expected 50", frames)
	}
}

func TestMenuClickOnPlay(t *testing.T) {
	g := newTestGame(t, nil)

	// Outside the button: nothing happens.
	in := core.NewInputFrame()
	in.Mouse.X, in.Mouse.Y = 2, 2
	in.Buttons[core.MouseLeft] = true
	g.Step(in)
	if g.world.transition.Active() {
		t.Fatal("a click outside PLAY should not start the game")
	}

	// Release, then click inside the button.
	g.Step(core.NewInputFrame())
	in = core.NewInputFrame()
	in.Mouse.X, in.Mouse.Y = 40, 15
	in.Buttons[core.MouseLeft] = true
	g.Step(in)
	if g.world.transition.Target() != roomChifoumi {
		t.Errorf("transition target after clicking PLAY = %q, expected %q", g.world.transition.Target(), roomChifoumi)
	}
}

func TestFullFlowReachesDuel(t *testing.T) {
	g := newTestGame(t, nil)
	step(t, g, core.ActionConfirm)
	runUntilRoom(t, g, roomChifoumi, 100)
	runUntilRoom(t, g, roomDuel, 300)

	if g.scene.Len(roomDuel) == 0 {
		t.Fatal("duel room is empty")
	}
	if _, ok := g.scene.First(tagPlayer); !ok {
		t.Error("duel room has no player")
	}
	if _, ok := g.scene.First(tagEnemy); !ok {
		t.Error("duel room has no enemy")
	}
}

func TestShortRevealStillReachesDuel(t *testing.T) {
	// The round is decided while the fade into chifoumi is still running.
	g := newTestGame(t, func(c *config.BowmasterConfig) {
		c.Chifoumi.RevealFrames = 10
	})
	step(t, g, core.ActionConfirm)
	runUntilRoom(t, g, roomDuel, 400)

	if _, ok := g.scene.First(tagPlayer); !ok {
		t.Error("duel room has no player")
	}
}

func TestRoomRequestDuringFadeIsQueued(t *testing.T) {
	g := newTestGame(t, nil)
	step(t, g, core.ActionConfirm)
	if !g.world.transition.Active() {
		t.Fatal("confirm on the menu did not start a fade")
	}

	if err := g.world.goTo(g.scene, roomDefeat, g.world.populateEnd(roomDefeat)); err != nil {
		t.Fatalf("goTo() during a fade = %v, expected nil", err)
	}
	if got := g.world.transition.Target(); got != roomChifoumi {
		t.Errorf("transition target = %q, expected %q", got, roomChifoumi)
	}
	if g.world.pending == nil || g.world.pending.target != roomDefeat {
		t.Fatalf("pending = %+v, expected a request for %q", g.world.pending, roomDefeat)
	}

	runUntilRoom(t, g, roomDefeat, 300)
	if g.world.pending != nil {
		t.Errorf("pending = %+v after the queued fade ran, expected nil", g.world.pending)
	}
}

func TestGameDeterminism(t *testing.T) {
	script := make([]core.InputFrame, 1200)
	for i := range script {
		script[i] = core.NewInputFrame()
		switch {
		case i == 0:
			script[i].Set(core.ActionConfirm)
		case i%97 == 0:
			script[i].Set(core.ActionFire)
		case i%13 == 0:
			script[i].Set(core.ActionRight)
		}
	}

	run := func() (*Game, Session) {
		g := newTestGame(t, nil)
		for _, in := range script {
			g.Step(in)
		}
		return g, *g.Session()
	}

	g1, s1 := run()
	g2, s2 := run()

	if s1 != s2 {
		t.Errorf("Determinism failed: sessions differ.\nRun1=%+v\nRun2=%+v", s1, s2)
	}
	if g1.Room() != g2.Room() || g1.scene.Frame() != g2.scene.Frame() {
		t.Errorf("Determinism failed: room/frame %q/%d vs %q/%d", g1.Room(), g1.scene.Frame(), g2.Room(), g2.scene.Frame())
	}
	if s1.Shots[SidePlayer] == 0 {
		t.Error("script never reached a player shot; the test exercises nothing")
	}
}

func TestGameReset(t *testing.T) {
	g, c := newTestDuel(t, SidePlayer, nil)
	step(t, g, core.ActionFire)
	c.enemy.damage(100)

	g.Reset(testRuntime)

	if g.Room() != roomMenu {
		t.Errorf("Room() after Reset = %q, expected %q", g.Room(), roomMenu)
	}
	if s := g.Session(); s.Score != 0 || s.Shots != [2]int{} || s.Level != 1 {
		t.Errorf("Reset should start a fresh session, got %+v", *s)
	}
	if g.scene.Frame() != 0 {
		t.Errorf("Reset should clear the frame counter, got %d", g.scene.Frame())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, nil)
	stepN(t, g, 3)

	step(t, g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("Pause should pause the game")
	}
	frame := g.scene.Frame()
	stepN(t, g, 10)
	if g.scene.Frame() != frame {
		t.Errorf("scene advanced while paused: %d -> %d", frame, g.scene.Frame())
	}

	step(t, g, core.ActionPause)
	if g.State().Paused {
		t.Error("second Pause should resume")
	}
}

func TestFatalErrorEndsGame(t *testing.T) {
	g := newTestGame(t, nil)
	g.fail(errors.New("boom"))

	frame := g.scene.Frame()
	res := g.Step(core.NewInputFrame())
	if res.State.Err == nil || !res.State.GameOver {
		t.Errorf("State after a fatal error = %+v, expected Err and GameOver", res.State)
	}
	if g.scene.Frame() != frame {
		t.Error("Step should not advance after a fatal error")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	step(t, g)

	dst := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(dst)
	if !strings.Contains(dst.String(), "PLAY") {
		t.Error("menu render should show the PLAY button")
	}
	if dst.Overlay() != 0 {
		t.Errorf("Overlay() without a transition = %v, expected 0", dst.Overlay())
	}

	step(t, g, core.ActionConfirm)
	stepN(t, g, 49)
	g.Render(dst)
	if dst.Overlay() < 0.9 {
		t.Errorf("Overlay() at the transition midpoint = %v, expected near 1", dst.Overlay())
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("tiny screens should show a size warning")
	}
}

func TestRenderDuel(t *testing.T) {
	g, _ := newTestDuel(t, SidePlayer, nil)
	step(t, g)

	dst := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(dst)
	out := dst.String()
	for _, want := range []string{"Level 1/3", "Score 0", "Turn: Player", "⚑"} {
		if !strings.Contains(out, want) {
			t.Errorf("duel render is missing %q", want)
		}
	}
}
