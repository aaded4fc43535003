package config

import (
	_ "embed"
)

//go:embed defaults/bowmaster.yaml
var defaultBowmasterYAML []byte

// DefaultBowmasterConfig returns the default Bowmaster configuration.
func DefaultBowmasterConfig() BowmasterConfig {
	return BowmasterConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:    9.81,
			FloorY:     600,
			SpeedScale: 1.6, // Lets a 50-power shot cross the 600-unit field
			Samples:    120,
			SampleDt:   0.1,
			ReplayRate: 1.5,
		},
		Player: PlayerConfig{
			X:           100,
			GroundY:     550,
			Width:       40,
			Height:      60,
			Gravity:     0.5,
			JumpImpulse: -10,
			MoveSpeed:   5,
			Health:      100,
		},
		Enemy: EnemyConfig{
			X:        700,
			Width:    40,
			Height:   60,
			Health:   100,
			MinAngle: 20,
			MaxAngle: 60,
			MinPower: 30,
			MaxPower: 50,
		},
		Combat: CombatConfig{
			Damage:         20,
			TurnFrames:     100,
			HitScore:       100,
			LevelScore:     500,
			MaxPower:       50,
			AngleStep:      2,
			PowerStep:      2,
			JoystickX:      100,
			JoystickY:      120,
			JoystickRadius: 40,
		},
		Chifoumi: ChifoumiConfig{
			RevealFrames: 180,
		},
		Levels: LevelsConfig{
			Count: 3,
			GoalX: 750,
		},
		Transition: TransitionConfig{
			Rate:  0.01,
			Sigma: 0.15,
			Shake: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				AimBlend: 0.9,
				Jitter:   8,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bowmaster":
		return defaultBowmasterYAML
	default:
		return nil
	}
}
