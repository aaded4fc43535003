package bowmaster

import (
	"fmt"

	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/engine"
)

// Choice is a rock-paper-scissors hand.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

// Choices lists every hand in draw order.
var Choices = [...]Choice{Rock, Paper, Scissors}

// String returns the hand's name.
func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

func (c Choice) glyph() []string {
	switch c {
	case Rock:
		return []string{" ___ ", "(___)"}
	case Paper:
		return []string{" ___ ", "|___|"}
	default:
		return []string{"\\ / ", " X  "}
	}
}

// Outcome is the result of a round.
type Outcome int

const (
	Draw Outcome = iota
	PlayerWins
	EnemyWins
)

// String returns the outcome's name.
func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "player"
	case EnemyWins:
		return "enemy"
	default:
		return "draw"
	}
}

// Starter returns who opens the duel. A draw lets the player start.
func (o Outcome) Starter() Side {
	if o == EnemyWins {
		return SideEnemy
	}
	return SidePlayer
}

// DetermineWinner scores a round: each hand beats the one before it in
// Choices, cyclically.
func DetermineWinner(player, enemy Choice) Outcome {
	switch (int(player) - int(enemy) + len(Choices)) % len(Choices) {
	case 0:
		return Draw
	case 1:
		return PlayerWins
	default:
		return EnemyWins
	}
}

// chifoumiRound shows both hands, then hands the first turn to the winner.
type chifoumiRound struct {
	engine.Base
	w       *world
	player  Choice
	enemy   Choice
	outcome Outcome
	timer   float64
	leaving bool
}

func newChifoumiRound(w *world) *chifoumiRound {
	r := &chifoumiRound{
		w:      w,
		player: Choices[w.rng.Intn(len(Choices))],
		enemy:  Choices[w.rng.Intn(len(Choices))],
	}
	r.Init(layerUI, tagManager)
	r.outcome = DetermineWinner(r.player, r.enemy)
	return r
}

func (r *chifoumiRound) Update(s *engine.Scene) error {
	if r.leaving {
		return nil
	}
	r.timer += s.DT()
	if r.timer <= float64(r.w.cfg.Chifoumi.RevealFrames) {
		return nil
	}

	r.leaving = true
	r.w.session.Starter = r.outcome.Starter()
	r.w.logger.Info("chifoumi", "player", r.player, "enemy", r.enemy, "outcome", r.outcome, "starter", r.w.session.Starter)
	return r.w.goTo(s, roomDuel, r.w.populateDuel)
}

func (r *chifoumiRound) Draw(dst *core.Screen) {
	h := dst.Height()
	w := dst.Width()

	var headline string
	switch r.outcome {
	case Draw:
		headline = "Draw! Player starts!"
	default:
		headline = fmt.Sprintf("%s starts!", r.outcome.Starter())
	}
	dst.DrawTextCentered(h/5, headline, core.ColorBrightWhite)

	boxW, boxH := 13, 6
	top := (h - boxH) / 2
	hands := []struct {
		x     int
		label string
		hand  Choice
		color core.Color
	}{
		{w/4 - boxW/2, "You", r.player, core.ColorGreen},
		{3*w/4 - boxW/2, "Enemy", r.enemy, core.ColorRed},
	}
	for _, hd := range hands {
		dst.DrawBox(core.NewRect(hd.x, top, boxW, boxH), hd.color)
		for i, line := range hd.hand.glyph() {
			dst.DrawTextColored(hd.x+(boxW-len(line))/2, top+1+i, line, hd.color)
		}
		name := hd.hand.String()
		dst.DrawTextColored(hd.x+(boxW-len(name))/2, top+boxH-2, name, core.ColorBrightWhite)
		dst.DrawTextColored(hd.x+(boxW-len(hd.label))/2, top+boxH, hd.label, hd.color)
	}
}
