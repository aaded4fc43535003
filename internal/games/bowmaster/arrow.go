package bowmaster

import (
	"math"

	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/engine"
)

// Arrow replays a sampled trajectory. Whether it hit was decided when it was
// fired; the replay stops at the first sample inside the target.
type Arrow struct {
	engine.Base
	w       *world
	shooter Side
	points  []core.Vec2
	stop    int
	hit     bool
	cursor  float64
}

func newArrow(w *world, shooter Side, points []core.Vec2, hitAt int) *Arrow {
	a := &Arrow{w: w, shooter: shooter, points: points, stop: len(points) - 1}
	if hitAt >= 0 && hitAt < len(points) {
		a.stop, a.hit = hitAt, true
	}
	a.Init(layerArrow, tagArrow)
	return a
}

// Hit reports whether the replay ends inside its target.
func (a *Arrow) Hit() bool {
	return a.hit
}

// Done reports whether the replay reached its last sample.
func (a *Arrow) Done() bool {
	return a.cursor >= float64(a.stop)
}

// Head returns the current tip position.
func (a *Arrow) Head() (core.Vec2, bool) {
	if len(a.points) == 0 {
		return core.Vec2{}, false
	}
	return a.points[int(math.Floor(a.cursor))], true
}

func (a *Arrow) Update(s *engine.Scene) error {
	if len(a.points) == 0 {
		a.Kill()
		return nil
	}
	a.cursor = math.Min(a.cursor+a.w.cfg.Physics.ReplayRate*s.DT(), float64(a.stop))
	return nil
}

func (a *Arrow) Draw(dst *core.Screen) {
	head, ok := a.Head()
	if !ok {
		return
	}
	trail := core.ColorYellow
	if a.shooter == SideEnemy {
		trail = core.ColorRed
	}
	for _, p := range a.points[:int(math.Floor(a.cursor))] {
		x, y := a.w.cell(p)
		dst.SetColored(x, y, '·', trail)
	}
	x, y := a.w.cell(head)
	dst.SetColored(x, y, '➤', core.ColorBrightWhite)
}
