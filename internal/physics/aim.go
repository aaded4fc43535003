package physics

import (
	"math"

	"github.com/vovakirdan/bowmaster/internal/core"
)

// AimStep is the angle resolution of AimAt, in degrees.
const AimStep = 0.5

// AimAt searches launch angles in [minDeg, maxDeg] for the one whose sampled
// trajectory passes closest to target. It returns that angle and the
// closest sampled distance. An empty range returns minDeg and +Inf.
func (b Ballistics) AimAt(origin, target core.Vec2, speed, minDeg, maxDeg float64, steps int, stepDt float64) (float64, float64) {
	bestAngle, bestMiss := minDeg, math.Inf(1)
	for deg := minDeg; deg <= maxDeg; deg += AimStep {
		miss := math.Inf(1)
		for p := range b.Samples(origin, deg, speed, steps, stepDt) {
			miss = math.Min(miss, p.Sub(target).Len())
		}
		if miss < bestMiss {
			bestAngle, bestMiss = deg, miss
		}
	}
	return bestAngle, bestMiss
}
