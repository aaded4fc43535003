package bowmaster

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/engine"
)

// Joystick is the on-screen aim control. Dragging the knob away from the
// base sets the angle (direction) and power (distance, capped at the
// radius); the aim keys nudge both. Releasing the knob keeps the aim.
type Joystick struct {
	engine.Base
	w        *world
	base     core.Vec2
	radius   float64
	maxPower float64
	angle    float64
	power    float64
	dragging bool
}

func newJoystick(w *world) *Joystick {
	c := w.cfg.Combat
	j := &Joystick{
		w:        w,
		base:     core.Vec2{X: c.JoystickX, Y: c.JoystickY},
		radius:   c.JoystickRadius,
		maxPower: c.MaxPower,
		angle:    45,
		power:    c.MaxPower * 0.6,
	}
	j.Init(layerHUD, tagJoystick)
	return j
}

// Angle returns the aim in degrees, counter-clockwise from the positive x axis.
func (j *Joystick) Angle() float64 {
	return j.angle
}

// Power returns the aim power in [0, maxPower].
func (j *Joystick) Power() float64 {
	return j.power
}

// Dragging reports whether the knob is held.
func (j *Joystick) Dragging() bool {
	return j.dragging
}

// bounds is the clickable square around the base.
func (j *Joystick) bounds() core.RectF {
	return core.RectF{X: j.base.X - j.radius, Y: j.base.Y - j.radius, W: 2 * j.radius, H: 2 * j.radius}
}

// Knob returns the knob position for the current aim.
func (j *Joystick) Knob() core.Vec2 {
	r := j.radius * j.power / j.maxPower
	theta := core.Radians(j.angle)
	return core.Vec2{X: j.base.X + r*math.Cos(theta), Y: j.base.Y - r*math.Sin(theta)}
}

// pointAt aims at a world point, measured from the base.
func (j *Joystick) pointAt(p core.Vec2) {
	d := p.Sub(j.base)
	j.angle = core.Degrees(math.Atan2(j.base.Y-p.Y, d.X))
	j.power = math.Min(d.Len()/j.radius, 1) * j.maxPower
}

func (j *Joystick) Update(s *engine.Scene) error {
	if j.w.session.Turn != SidePlayer {
		j.dragging = false
		return nil
	}

	in := j.w.input
	combat := j.w.cfg.Combat
	switch {
	case in.Has(core.ActionAimUp):
		j.angle += combat.AngleStep
	case in.Has(core.ActionAimDown):
		j.angle -= combat.AngleStep
	}
	switch {
	case in.Has(core.ActionPowerUp):
		j.power += combat.PowerStep
	case in.Has(core.ActionPowerDown):
		j.power -= combat.PowerStep
	}
	j.angle = core.ClampF(j.angle, -180, 180)
	j.power = core.ClampF(j.power, 0, j.maxPower)

	if j.w.clicked(core.MouseLeft) && j.bounds().ContainsPoint(j.w.mouse()) {
		j.dragging = true
	}
	if j.w.released(core.MouseLeft) {
		j.dragging = false
	}
	if j.dragging {
		j.pointAt(j.w.mouse())
	}
	return nil
}

func (j *Joystick) Draw(dst *core.Screen) {
	if j.w.session.Turn != SidePlayer {
		return
	}
	box := j.w.rect(j.bounds())
	color := core.ColorGray
	if j.dragging {
		color = core.ColorBrightWhite
	}
	dst.DrawBox(box, color)
	bx, by := j.w.cell(j.base)
	dst.SetColored(bx, by, '+', core.ColorGray)
	kx, ky := j.w.cell(j.Knob())
	dst.SetColored(kx, ky, '●', core.ColorBrightYellow)

	label := fmt.Sprintf("%d° | %d m/s", int(j.angle), int(j.power))
	dst.DrawTextColored(box.X, box.Bottom(), label, core.ColorBrightWhite)
}
