package bowmaster

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/engine"
	"github.com/vovakirdan/bowmaster/internal/physics"
)

// arena draws the ground line and the goal flag.
type arena struct {
	engine.Base
	w *world
}

func newArena(w *world) *arena {
	a := &arena{w: w}
	a.Init(layerArena)
	return a
}

func (a *arena) Draw(dst *core.Screen) {
	cfg := a.w.cfg
	_, gy := a.w.cell(core.Vec2{Y: cfg.Player.GroundY})
	dst.DrawHLine(0, gy, dst.Width(), '▀', core.ColorBrown)

	fx, _ := a.w.cell(core.Vec2{X: cfg.Levels.GoalX})
	dst.SetColored(fx, gy-1, '|', core.ColorGray)
	dst.SetColored(fx, gy-2, '⚑', core.ColorBrightYellow)
}

// banner shows a line of text for a number of frames, then dies.
type banner struct {
	engine.Base
	text   string
	color  core.Color
	frames float64
}

func newBanner(text string, color core.Color, frames float64) *banner {
	b := &banner{text: text, color: color, frames: frames}
	b.Init(layerUI, tagBanner)
	return b
}

func (b *banner) Update(s *engine.Scene) error {
	b.frames -= s.DT()
	if b.frames <= 0 {
		b.Kill()
	}
	return nil
}

func (b *banner) Draw(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/3, b.text, b.color)
}

const bannerFrames = 90

// duelController runs turns, shots and level progression. It is bound
// after the fighters, so it sees their movement of the current frame.
type duelController struct {
	engine.Base
	w         *world
	player    *Archer
	enemy     *Enemy
	joystick  *Joystick
	turnTimer float64
	enemyShot bool
	started   bool
	over      bool
}

func newDuelController(w *world, player *Archer, enemy *Enemy, joystick *Joystick) *duelController {
	c := &duelController{w: w, player: player, enemy: enemy, joystick: joystick}
	c.Init(layerHUD, tagManager)
	w.session.Turn = w.session.Starter
	return c
}

func (c *duelController) Update(s *engine.Scene) error {
	if c.over {
		return nil
	}
	sess := c.w.session
	cfg := c.w.cfg

	if !c.started {
		c.started = true
		c.announceTurn(s)
	}

	if c.player.Down() {
		c.over = true
		c.w.logger.Info("defeat", "level", sess.Level, "score", sess.Score)
		return c.w.goTo(s, roomDefeat, c.w.populateEnd(roomDefeat))
	}

	switch sess.Turn {
	case SidePlayer:
		if c.enemy.Down() {
			if c.player.Center().X >= cfg.Levels.GoalX {
				return c.completeLevel(s)
			}
			return nil
		}
		if c.w.input.Has(core.ActionFire) {
			c.shoot(s, SidePlayer, c.player.Center(), c.joystick.Angle(), c.joystick.Power(), &c.enemy.fighter)
			if c.enemy.Down() {
				s.Bind(newBanner("Walk to the flag!", core.ColorBrightYellow, bannerFrames))
				return nil
			}
			c.startTurn(s, SideEnemy)
		}

	case SideEnemy:
		if !c.enemyShot {
			c.enemyShot = true
			angle, power := c.enemy.Aim(c.player.Center())
			c.shoot(s, SideEnemy, c.enemy.Center(), angle, power, &c.player.fighter)
		}
		c.turnTimer += s.DT()
		if c.turnTimer > float64(cfg.Combat.TurnFrames) {
			c.startTurn(s, SidePlayer)
		}
	}
	return nil
}

// shoot samples a launch, applies damage on a hit and binds the arrow that
// replays it.
func (c *duelController) shoot(s *engine.Scene, side Side, origin core.Vec2, angle, power float64, target *fighter) {
	ph := c.w.cfg.Physics
	samples := c.w.ballistics.Samples(origin, angle, power*ph.SpeedScale, ph.Samples, ph.SampleDt)
	box := target.Rect()

	hit := physics.CollidesAny(samples, box)
	points := slices.Collect(samples)
	hitAt := -1
	if hit {
		hitAt = physics.FirstHit(points, box)
		target.damage(c.w.cfg.Combat.Damage)
	}
	c.w.session.recordShot(side, hit, c.w.cfg.Combat.HitScore)
	s.Bind(newArrow(c.w, side, points, hitAt))

	c.w.logger.Info("shot", "side", side, "angle", fmt.Sprintf("%.1f", angle), "power", fmt.Sprintf("%.1f", power),
		"hit", hit, "target_health", target.Health())
}

// startTurn hands the turn over. Arrows of the finished exchange are
// removed when the player gets the turn back.
func (c *duelController) startTurn(s *engine.Scene, side Side) {
	c.w.session.Turn = side
	c.turnTimer = 0
	c.enemyShot = false
	if side == SidePlayer {
		c.clearArrows(s)
	}
	c.w.logger.Debug("turn", "side", side, "frame", s.Frame())
	c.announceTurn(s)
}

func (c *duelController) announceTurn(s *engine.Scene) {
	if c.w.session.Turn == SidePlayer {
		s.Bind(newBanner("Your turn", core.ColorBrightGreen, bannerFrames/2))
		return
	}
	s.Bind(newBanner("Enemy turn", core.ColorBrightRed, bannerFrames/2))
}

func (c *duelController) clearArrows(s *engine.Scene) {
	for _, a := range engine.FilterAs[*Arrow](s, tagArrow) {
		a.Kill()
	}
}

// completeLevel scores the level and either resets the field for the next
// one or leaves for the victory screen.
func (c *duelController) completeLevel(s *engine.Scene) error {
	sess := c.w.session
	cfg := c.w.cfg
	cleared := sess.Level
	if !sess.completeLevel(cfg.Combat.LevelScore, cfg.Levels.Count) {
		c.over = true
		c.w.logger.Info("victory", "score", sess.Score, "accuracy", sess.Accuracy())
		return c.w.goTo(s, roomVictory, c.w.populateEnd(roomVictory))
	}

	c.w.logger.Info("level complete", "level", cleared, "next", sess.Level, "score", sess.Score)
	c.player.respawn()
	c.enemy.respawn()
	c.clearArrows(s)
	sess.Turn = SidePlayer
	c.turnTimer = 0
	c.enemyShot = false
	s.Bind(newBanner(fmt.Sprintf("Level %d", sess.Level), core.ColorBrightYellow, bannerFrames))
	return nil
}

// Draw renders the HUD line and the goal hint.
func (c *duelController) Draw(dst *core.Screen) {
	sess := c.w.session
	hud := fmt.Sprintf(" Level %d/%d  Score %d  Turn: %s ", sess.Level, c.w.cfg.Levels.Count, sess.Score, sess.Turn)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	health := fmt.Sprintf("You %d  Enemy %d ", c.player.Health(), c.enemy.Health())
	dst.DrawTextColored(dst.Width()-len(health)-1, 0, health, core.ColorGray)

	if sess.Turn == SidePlayer && c.enemy.Down() {
		dst.DrawTextCentered(1, "Enemy down: walk to the flag →", core.ColorBrightYellow)
	}
}
