package bowmaster

import (
	"math"

	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/engine"
)

// fighter is the body and health shared by both duelists. Pos is the
// midpoint of the bottom edge.
type fighter struct {
	engine.Base
	body      engine.Body
	w         *world
	width     float64
	height    float64
	health    int
	maxHealth int
	grounded  bool
	color     core.Color
	spawn     core.Vec2
}

func (f *fighter) Body() *engine.Body {
	return &f.body
}

// Rect returns the hitbox in world units.
func (f *fighter) Rect() core.RectF {
	return core.RectFromMidBottom(f.body.Pos, f.width, f.height)
}

// Center is where shots leave from.
func (f *fighter) Center() core.Vec2 {
	return f.Rect().Center()
}

// Health returns the remaining health.
func (f *fighter) Health() int {
	return f.health
}

// Down reports whether the fighter has no health left.
func (f *fighter) Down() bool {
	return f.health <= 0
}

// damage removes health, never below zero.
func (f *fighter) damage(n int) {
	f.health = max(f.health-n, 0)
}

// respawn puts the fighter back on its spawn point at full health.
func (f *fighter) respawn() {
	f.body = engine.Body{Pos: f.spawn}
	f.health = f.maxHealth
	f.grounded = true
}

// fall applies gravity and lands on the ground line. The scene has already
// integrated this frame's velocity.
func (f *fighter) fall(gravity, groundY, dt float64) {
	f.body.Vel.Y += gravity * dt
	if f.body.Pos.Y >= groundY {
		f.body.Pos.Y = groundY
		f.body.Vel.Y = 0
		f.grounded = true
	}
}

// keepInside clamps the fighter horizontally to the world.
func (f *fighter) keepInside(worldW float64) {
	f.body.Pos.X = core.ClampF(f.body.Pos.X, f.width/2, worldW-f.width/2)
}

func (f *fighter) Draw(dst *core.Screen) {
	r := f.w.rect(f.Rect())
	dst.DrawRect(r, '█', f.color)

	// Health bar one row above the body, as wide as the sprite.
	barY := r.Y - 1
	filled := int(math.Ceil(float64(r.W) * float64(f.health) / float64(f.maxHealth)))
	dst.DrawHLine(r.X, barY, r.W, '▁', core.ColorRed)
	dst.DrawHLine(r.X, barY, filled, '▁', core.ColorGreen)
}

// Archer is the player's fighter.
type Archer struct {
	fighter
}

func newArcher(w *world) *Archer {
	p := w.cfg.Player
	a := &Archer{fighter: fighter{
		w:         w,
		width:     p.Width,
		height:    p.Height,
		maxHealth: p.Health,
		color:     core.ColorBrightGreen,
		spawn:     core.Vec2{X: p.X, Y: p.GroundY},
	}}
	a.Init(layerFighter, tagPlayer)
	a.respawn()
	return a
}

// Update walks and jumps on the player's turn and falls at all times.
// Velocities set here move the body on the next frame's integration.
func (a *Archer) Update(s *engine.Scene) error {
	p := a.w.cfg.Player

	a.fall(p.Gravity, p.GroundY, s.DT())
	a.keepInside(a.w.cfg.World.Width)

	a.body.Vel.X = 0
	if !a.controllable() {
		return nil
	}
	in := a.w.input
	if in.Has(core.ActionLeft) {
		a.body.Vel.X -= p.MoveSpeed
	}
	if in.Has(core.ActionRight) {
		a.body.Vel.X += p.MoveSpeed
	}
	if in.Has(core.ActionJump) && a.grounded {
		a.body.Vel.Y = p.JumpImpulse
		a.grounded = false
	}
	return nil
}

// controllable reports whether input moves the archer this frame.
func (a *Archer) controllable() bool {
	return a.w.session.Turn == SidePlayer && !a.Down()
}

// Enemy is the computer-controlled fighter.
type Enemy struct {
	fighter
}

func newEnemy(w *world) *Enemy {
	p, e := w.cfg.Player, w.cfg.Enemy
	en := &Enemy{fighter: fighter{
		w:         w,
		width:     e.Width,
		height:    e.Height,
		maxHealth: e.Health,
		color:     core.ColorBrightRed,
		spawn:     core.Vec2{X: e.X, Y: p.GroundY},
	}}
	en.Init(layerFighter, tagEnemy)
	en.respawn()
	return en
}

func (e *Enemy) Update(s *engine.Scene) error {
	e.fall(e.w.cfg.Player.Gravity, e.w.cfg.Player.GroundY, s.DT())
	return nil
}

// Aim picks the next shot at target. The random shot of the configured
// ranges is mirrored when the target stands to the left, then blended
// towards the best solved angle at full power as difficulty rises.
func (e *Enemy) Aim(target core.Vec2) (angle, power float64) {
	cfg := e.w.cfg.Enemy
	rng := e.w.rng

	lo, hi := cfg.MinAngle, cfg.MaxAngle
	angle = lo + rng.Float64()*(hi-lo)
	power = cfg.MinPower + rng.Float64()*(cfg.MaxPower-cfg.MinPower)

	origin := e.Center()
	if target.X < origin.X {
		angle = 180 - angle
		lo, hi = 180-hi, 180-lo
	}

	blend := e.w.difficulty.AimBlend(e.w.session.Score, e.w.ticks)
	if blend <= 0 {
		return angle, power
	}

	ph := e.w.cfg.Physics
	solved, _ := e.w.ballistics.AimAt(origin, target, cfg.MaxPower*ph.SpeedScale, lo, hi, ph.Samples, ph.SampleDt)
	jitter := e.w.difficulty.Jitter(e.w.session.Score, e.w.ticks)
	solved += (rng.Float64()*2 - 1) * jitter

	angle = core.ClampF(lerp(angle, solved, blend), lo, hi)
	power = lerp(power, cfg.MaxPower, blend)
	return angle, power
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
