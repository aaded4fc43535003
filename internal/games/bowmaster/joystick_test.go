package bowmaster

import (
	"math"
	"testing"

	"github.com/vovakirdan/bowmaster/internal/core"
)

func TestJoystickPointAt(t *testing.T) {
	_, c := newTestDuel(t, SidePlayer, nil)
	j := c.joystick
	maxPower := j.maxPower

	tests := []struct {
		name  string
		d     core.Vec2
		angle float64
		power float64
	}{
		{"right at full radius", core.Vec2{X: 40}, 0, maxPower},
		{"up and right", core.Vec2{X: 20, Y: -20}, 45, math.Hypot(20, 20) / 40 * maxPower},
		{"straight up beyond the radius", core.Vec2{Y: -100}, 90, maxPower},
		{"left", core.Vec2{X: -20}, 180, maxPower / 2},
		{"centre", core.Vec2{}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			j.pointAt(j.base.Add(tc.d))
			if math.Abs(j.Angle()-tc.angle) > 1e-9 || math.Abs(j.Power()-tc.power) > 1e-9 {
				t.Errorf("pointAt(%v) = (%v, %v), expected (%v, %v)", tc.d, j.Angle(), j.Power(), tc.angle, tc.power)
			}
		})
	}
}

func TestJoystickKnobStaysWithinRadius(t *testing.T) {
	_, c := newTestDuel(t, SidePlayer, nil)
	j := c.joystick

	j.pointAt(j.base.Add(core.Vec2{X: 300, Y: 300}))
	if d := j.Knob().Sub(j.base).Len(); math.Abs(d-j.radius) > 1e-9 {
		t.Errorf("knob distance = %v, expected capped at the radius %v", d, j.radius)
	}
}

func TestJoystickKeys(t *testing.T) {
	g, c := newTestDuel(t, SidePlayer, nil)
	j := c.joystick
	angle, power := j.Angle(), j.Power()
	combat := g.world.cfg.Combat

	g.Step(input(core.ActionAimUp, core.ActionPowerUp))
	if j.Angle() != angle+combat.AngleStep || j.Power() != power+combat.PowerStep {
		t.Errorf("after AimUp+PowerUp = (%v, %v), expected (%v, %v)", j.Angle(), j.Power(), angle+combat.AngleStep, power+combat.PowerStep)
	}

	for range 100 {
		g.Step(input(core.ActionPowerUp))
	}
	if j.Power() != j.maxPower {
		t.Errorf("Power() = %v, expected clamped to %v", j.Power(), j.maxPower)
	}
}

func TestJoystickMouseDrag(t *testing.T) {
	g, c := newTestDuel(t, SidePlayer, nil)
	j := c.joystick
	bx, by := g.world.cell(j.base)

	press := core.NewInputFrame()
	press.Mouse.X, press.Mouse.Y = bx, by
	press.Buttons[core.MouseLeft] = true
	g.Step(press)
	if !j.Dragging() {
		t.Fatal("pressing on the base should grab the knob")
	}

	drag := core.NewInputFrame()
	drag.Mouse.X, drag.Mouse.Y = bx+4, by
	drag.Buttons[core.MouseLeft] = true
	g.Step(drag)
	aimed := j.Angle()
	if j.Power() != j.maxPower {
		t.Errorf("Power() = %v after dragging past the radius, expected %v", j.Power(), j.maxPower)
	}
	if aimed < -45 || aimed > 45 {
		t.Errorf("Angle() = %v after dragging right, expected a flat shot", aimed)
	}

	release := core.NewInputFrame()
	release.Mouse.X, release.Mouse.Y = bx+4, by
	g.Step(release)
	if j.Dragging() {
		t.Error("releasing the button should drop the knob")
	}
	if j.Angle() != aimed {
		t.Errorf("Angle() = %v after release, expected the aim to be kept at %v", j.Angle(), aimed)
	}
}

func TestJoystickIgnoresEnemyTurn(t *testing.T) {
	g, c := newTestDuel(t, SideEnemy, nil)
	j := c.joystick
	angle := j.Angle()

	g.Step(input(core.ActionAimUp))
	if j.Angle() != angle {
		t.Errorf("Angle() = %v on the enemy turn, expected %v", j.Angle(), angle)
	}
}
