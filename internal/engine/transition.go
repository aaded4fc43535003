package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/bowmaster/internal/core"
)

// ErrTransitionActive is returned by Start while a transition is running.
var ErrTransitionActive = errors.New("transition already running")

// Inactive is the phase value of an idle transition.
const Inactive = -1.0

// phases closer than this to a threshold count as having reached it, so that
// summed float increments land on the intended frame.
const phaseEpsilon = 1e-9

// RoomSwitcher is the part of the Scene a transition drives.
type RoomSwitcher interface {
	HasRoom(name string) bool
	SwitchRoom(name string) error
}

// TransitionOptions tunes a Transition. Zero fields take defaults.
type TransitionOptions struct {
	Rate  float64 // phase increase per delta unit (default 0.01)
	Sigma float64 // width of the opacity bell (default 0.15)
	Shake int     // camera shake amplitude in cells; negative disables (default 1)
	Seed  int64
}

func (o TransitionOptions) withDefaults() TransitionOptions {
	if o.Rate <= 0 {
		o.Rate = 0.01
	}
	if o.Sigma <= 0 {
		o.Sigma = 0.15
	}
	if o.Shake == 0 {
		o.Shake = 1
	}
	if o.Shake < 0 {
		o.Shake = 0
	}
	return o
}

// Transition fades the screen to opaque and back, switching rooms at the
// midpoint. Phase runs from 0 to 1 while active and is Inactive otherwise.
type Transition struct {
	rooms    RoomSwitcher
	opts     TransitionOptions
	rng      *rand.Rand
	phase    float64
	target   string
	switched bool
}

// NewTransition creates an idle transition driving rooms.
func NewTransition(rooms RoomSwitcher, opts TransitionOptions) *Transition {
	opts = opts.withDefaults()
	return &Transition{
		rooms: rooms,
		opts:  opts,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		phase: Inactive,
	}
}

// Start begins a transition towards target. A request made while another
// transition runs is rejected with ErrTransitionActive and changes nothing.
func (t *Transition) Start(target string) error {
	if t.Active() {
		return fmt.Errorf("engine: start transition to %q (running to %q): %w", target, t.target, ErrTransitionActive)
	}
	if !t.rooms.HasRoom(target) {
		return fmt.Errorf("engine: start transition: room %q: %w", target, ErrUnknownRoom)
	}
	t.phase = 0
	t.target = target
	t.switched = false
	return nil
}

// Active reports whether a transition is running.
func (t *Transition) Active() bool {
	return t.phase >= 0
}

// Phase returns the current phase, or Inactive.
func (t *Transition) Phase() float64 {
	return t.phase
}

// Target returns the destination room of the running transition.
func (t *Transition) Target() string {
	if !t.Active() {
		return ""
	}
	return t.target
}

// Advance moves the phase forward by Rate*dt. The room switch happens once,
// on the first frame the phase passes one half; reaching 1 ends the
// transition.
func (t *Transition) Advance(dt float64) error {
	if !t.Active() {
		return nil
	}

	t.phase = math.Min(t.phase+t.opts.Rate*dt, 1)
	if t.phase >= 1-phaseEpsilon {
		t.phase = 1
	}

	if !t.switched && t.phase > 0.5+phaseEpsilon {
		t.switched = true
		if err := t.rooms.SwitchRoom(t.target); err != nil {
			return fmt.Errorf("engine: transition midpoint: %w", err)
		}
	}

	if t.phase == 1 {
		t.phase = Inactive
		t.target = ""
		t.switched = false
	}
	return nil
}

// Opacity returns the overlay opacity: a Gaussian bell centred on the
// midpoint, 0 when inactive.
func (t *Transition) Opacity() float64 {
	if !t.Active() {
		return 0
	}
	d := t.phase - 0.5
	return math.Exp(-(d * d) / (2 * t.opts.Sigma * t.opts.Sigma))
}

// Offset returns this frame's camera shake offset in cells. It is (0, 0)
// while inactive.
func (t *Transition) Offset() (int, int) {
	if !t.Active() || t.opts.Shake == 0 {
		return 0, 0
	}
	n := 2*t.opts.Shake + 1
	return t.rng.Intn(n) - t.opts.Shake, t.rng.Intn(n) - t.opts.Shake
}

// Composite copies the off-screen frame onto the display buffer, shaken while
// active, and applies the fade overlay.
func (t *Transition) Composite(display, frame *core.Screen) {
	display.Clear()
	dx, dy := t.Offset()
	display.Blit(frame, dx, dy)
	display.SetOverlay(t.Opacity())
}
