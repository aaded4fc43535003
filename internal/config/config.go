// Package config provides YAML-based game configuration loading and
// difficulty management for the duel.
package config

import (
	"errors"
	"fmt"
)

// BowmasterConfig contains all configuration for the Bowmaster duel.
type BowmasterConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Combat     CombatConfig     `yaml:"combat"`
	Chifoumi   ChifoumiConfig   `yaml:"chifoumi"`
	Levels     LevelsConfig     `yaml:"levels"`
	Transition TransitionConfig `yaml:"transition"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig is the size of the simulated world, mapped onto the terminal.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines projectile parameters.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`     // Projectile gravity, units/s²
	FloorY     float64 `yaml:"floor_y"`     // Samples below this line are dropped
	SpeedScale float64 `yaml:"speed_scale"` // Launch speed = power * speed_scale
	Samples    int     `yaml:"samples"`     // Trajectory samples per shot
	SampleDt   float64 `yaml:"sample_dt"`   // Seconds between samples
	ReplayRate float64 `yaml:"replay_rate"` // Samples an arrow advances per frame
}

// PlayerConfig defines the archer's body and movement.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	GroundY     float64 `yaml:"ground_y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Gravity     float64 `yaml:"gravity"`      // Per frame²
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
	MoveSpeed   float64 `yaml:"move_speed"`   // Per frame
	Health      int     `yaml:"health"`
}

// EnemyConfig defines the opponent and its shot ranges.
type EnemyConfig struct {
	X        float64 `yaml:"x"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Health   int     `yaml:"health"`
	MinAngle float64 `yaml:"min_angle"`
	MaxAngle float64 `yaml:"max_angle"`
	MinPower float64 `yaml:"min_power"`
	MaxPower float64 `yaml:"max_power"`
}

// CombatConfig defines turns, damage, scoring and aiming.
type CombatConfig struct {
	Damage         int     `yaml:"damage"`
	TurnFrames     int     `yaml:"turn_frames"` // Length of the enemy turn
	HitScore       int     `yaml:"hit_score"`
	LevelScore     int     `yaml:"level_score"`
	MaxPower       float64 `yaml:"max_power"`
	AngleStep      float64 `yaml:"angle_step"` // Degrees per aim key press
	PowerStep      float64 `yaml:"power_step"`
	JoystickX      float64 `yaml:"joystick_x"`
	JoystickY      float64 `yaml:"joystick_y"`
	JoystickRadius float64 `yaml:"joystick_radius"`
}

// ChifoumiConfig defines the first-turn draw.
type ChifoumiConfig struct {
	RevealFrames int `yaml:"reveal_frames"`
}

// LevelsConfig defines level progression.
type LevelsConfig struct {
	Count int     `yaml:"count"`
	GoalX float64 `yaml:"goal_x"`
}

// TransitionConfig tunes the fade between rooms.
type TransitionConfig struct {
	Rate  float64 `yaml:"rate"`
	Sigma float64 `yaml:"sigma"`
	Shake int     `yaml:"shake"` // Cells; negative disables
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines how difficulty changes the enemy's aim.
type ScalingConfig struct {
	AimBlend float64 `yaml:"aim_blend"` // Weight of the solved shot at max difficulty
	Jitter   float64 `yaml:"jitter"`    // Degrees of aim noise at zero difficulty
}

// Validate reports values the game cannot run with.
func (c BowmasterConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size %vx%v must be positive", c.World.Width, c.World.Height))
	}
	if c.Physics.Samples <= 0 || c.Physics.SampleDt <= 0 {
		errs = append(errs, errors.New("physics.samples and physics.sample_dt must be positive"))
	}
	if c.Player.Health <= 0 || c.Enemy.Health <= 0 {
		errs = append(errs, errors.New("health must be positive"))
	}
	if c.Enemy.MinAngle > c.Enemy.MaxAngle || c.Enemy.MinPower > c.Enemy.MaxPower {
		errs = append(errs, errors.New("enemy ranges are inverted"))
	}
	if c.Levels.Count < 1 {
		errs = append(errs, fmt.Errorf("levels.count = %d, need at least 1", c.Levels.Count))
	}
	if c.Combat.TurnFrames < 1 || c.Combat.JoystickRadius <= 0 {
		errs = append(errs, errors.New("combat.turn_frames and combat.joystick_radius must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid bowmaster config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
