package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/bowmaster/internal/core"
)

// switchRecorder counts switch requests and records the frame they came at.
type switchRecorder struct {
	rooms    map[string]bool
	switches []string
	frames   []int
	frame    int
}

func newSwitchRecorder(rooms ...string) *switchRecorder {
	r := &switchRecorder{rooms: map[string]bool{}}
	for _, name := range rooms {
		r.rooms[name] = true
	}
	return r
}

func (r *switchRecorder) HasRoom(name string) bool { return r.rooms[name] }

func (r *switchRecorder) SwitchRoom(name string) error {
	if !r.rooms[name] {
		return ErrUnknownRoom
	}
	r.switches = append(r.switches, name)
	r.frames = append(r.frames, r.frame)
	return nil
}

func TestTransitionInactiveByDefault(t *testing.T) {
	tr := NewTransition(newSwitchRecorder("duel"), TransitionOptions{})

	if tr.Active() || tr.Phase() != Inactive {
		t.Errorf("new transition phase = %v, expected inactive", tr.Phase())
	}
	if tr.Opacity() != 0 {
		t.Errorf("Opacity() = %v while inactive, expected 0", tr.Opacity())
	}
	if dx, dy := tr.Offset(); dx != 0 || dy != 0 {
		t.Errorf("Offset() = (%d, %d) while inactive, expected (0, 0)", dx, dy)
	}
	if err := tr.Advance(1); err != nil || tr.Active() {
		t.Error("Advance() on an inactive transition should do nothing")
	}
}

func TestTransitionSixtyHertzScenario(t *testing.T) {
	rooms := newSwitchRecorder("duel")
	tr := NewTransition(rooms, TransitionOptions{})

	if err := tr.Start("duel"); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if tr.Phase() != 0 {
		t.Errorf("Phase() after Start = %v, expected 0", tr.Phase())
	}

	endFrame := 0
	prev := 0.0
	for frame := 1; frame <= 120 && endFrame == 0; frame++ {
		rooms.frame = frame
		if err := tr.Advance(1); err != nil {
			t.Fatalf("Advance() error at frame %d: %v", frame, err)
		}
		if !tr.Active() {
			endFrame = frame
			break
		}
		if tr.Phase() < prev {
			t.Fatalf("phase decreased at frame %d: %v -> %v", frame, prev, tr.Phase())
		}
		prev = tr.Phase()
	}

	if len(rooms.switches) != 1 {
		t.Fatalf("room switches = %d, expected exactly 1", len(rooms.switches))
	}
	if rooms.frames[0] != 51 {
		t.Errorf("room switch at frame %d, expected 51", rooms.frames[0])
	}
	if endFrame != 100 {
		t.Errorf("transition ended at frame %d, expected 100", endFrame)
	}
	if tr.Target() != "" {
		t.Errorf("Target() = %q after completion, expected empty", tr.Target())
	}
}

func TestTransitionLargeStepSwitchesAndFinishes(t *testing.T) {
	rooms := newSwitchRecorder("duel")
	tr := NewTransition(rooms, TransitionOptions{})
	if err := tr.Start("duel"); err != nil {
		t.Fatal(err)
	}

	if err := tr.Advance(250); err != nil {
		t.Fatal(err)
	}

	if len(rooms.switches) != 1 {
		t.Errorf("switches = %d, expected the midpoint switch even when jumping past it", len(rooms.switches))
	}
	if tr.Active() {
		t.Error("phase clamped at 1 should end the transition")
	}
}

func TestTransitionRestartWhileRunningIsRejected(t *testing.T) {
	rooms := newSwitchRecorder("duel", "menu")
	tr := NewTransition(rooms, TransitionOptions{})
	if err := tr.Start("duel"); err != nil {
		t.Fatal(err)
	}
	for range 10 {
		if err := tr.Advance(1); err != nil {
			t.Fatal(err)
		}
	}
	phase := tr.Phase()

	err := tr.Start("menu")
	if !errors.Is(err, ErrTransitionActive) {
		t.Fatalf("Start() while running error = %v, expected ErrTransitionActive", err)
	}
	if tr.Phase() != phase || tr.Target() != "duel" {
		t.Errorf("rejected Start changed state: phase %v target %q", tr.Phase(), tr.Target())
	}
}

func TestTransitionUnknownTarget(t *testing.T) {
	tr := NewTransition(newSwitchRecorder("duel"), TransitionOptions{})

	if err := tr.Start("nowhere"); !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("Start(unknown) error = %v, expected ErrUnknownRoom", err)
	}
	if tr.Active() {
		t.Error("failed Start should leave the transition inactive")
	}
}

func TestTransitionOpacityBell(t *testing.T) {
	tr := NewTransition(newSwitchRecorder("duel"), TransitionOptions{})
	if err := tr.Start("duel"); err != nil {
		t.Fatal(err)
	}

	start := tr.Opacity()
	if start > 0.01 {
		t.Errorf("Opacity() at phase 0 = %v, expected near zero", start)
	}

	var peak, atQuarter float64
	for frame := 1; frame <= 99; frame++ {
		if err := tr.Advance(1); err != nil {
			t.Fatal(err)
		}
		switch frame {
		case 25:
			atQuarter = tr.Opacity()
		case 50:
			peak = tr.Opacity()
		}
	}
	end := tr.Opacity()

	if math.Abs(peak-1) > 1e-6 {
		t.Errorf("Opacity() at the midpoint = %v, expected 1", peak)
	}
	if atQuarter <= start || atQuarter >= peak {
		t.Errorf("Opacity() at a quarter = %v, expected between %v and %v", atQuarter, start, peak)
	}
	if end > 0.01 {
		t.Errorf("Opacity() near the end = %v, expected near zero", end)
	}
}

func TestTransitionShakeBounds(t *testing.T) {
	tr := NewTransition(newSwitchRecorder("duel"), TransitionOptions{Shake: 2, Seed: 7})
	if err := tr.Start("duel"); err != nil {
		t.Fatal(err)
	}

	for range 200 {
		dx, dy := tr.Offset()
		if dx < -2 || dx > 2 || dy < -2 || dy > 2 {
			t.Fatalf("Offset() = (%d, %d), expected within [-2, 2]", dx, dy)
		}
	}

	still := NewTransition(newSwitchRecorder("duel"), TransitionOptions{Shake: -1})
	if err := still.Start("duel"); err != nil {
		t.Fatal(err)
	}
	if dx, dy := still.Offset(); dx != 0 || dy != 0 {
		t.Errorf("Offset() with shake disabled = (%d, %d), expected (0, 0)", dx, dy)
	}
}

func TestTransitionComposite(t *testing.T) {
	tr := NewTransition(newSwitchRecorder("duel"), TransitionOptions{})
	frame := core.NewScreen(4, 1)
	frame.DrawText(0, 0, "abcd")
	display := core.NewScreen(4, 1)

	tr.Composite(display, frame)

	if display.Row(0) != "abcd" {
		t.Errorf("inactive Composite row = %q, expected an unshaken copy", display.Row(0))
	}
	if display.Overlay() != 0 {
		t.Errorf("inactive Composite overlay = %v, expected 0", display.Overlay())
	}

	if err := tr.Start("duel"); err != nil {
		t.Fatal(err)
	}
	for range 50 {
		if err := tr.Advance(1); err != nil {
			t.Fatal(err)
		}
	}
	tr.Composite(display, frame)
	if display.Overlay() < 0.99 {
		t.Errorf("Composite overlay at the midpoint = %v, expected about 1", display.Overlay())
	}
}

func TestTransitionDrivesScene(t *testing.T) {
	s := NewScene(nil)
	mustRoom(t, s, "duel")
	tr := NewTransition(s, TransitionOptions{})
	if err := tr.Start("duel"); err != nil {
		t.Fatal(err)
	}

	for frame := 1; frame <= 100; frame++ {
		mustUpdate(t, s)
		if err := tr.Advance(1); err != nil {
			t.Fatal(err)
		}
		want := DefaultRoom
		if frame >= 51 {
			want = "duel"
		}
		if s.CurrentRoom() != want {
			t.Fatalf("frame %d: CurrentRoom() = %q, expected %q", frame, s.CurrentRoom(), want)
		}
	}
}
