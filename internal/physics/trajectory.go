// Package physics computes projectile trajectories and discrete hit tests.
// Screen convention: y grows downward, so an upward launch decreases y.
package physics

import (
	"iter"
	"math"
	"slices"

	"github.com/vovakirdan/bowmaster/internal/core"
)

const (
	Gravity       = 9.81 // Downward acceleration in world units per second²
	FloorY        = 600  // Samples below this line are not produced
	DefaultSteps  = 50
	DefaultStepDt = 0.1
)

// Ballistics holds the constants of a trajectory model.
type Ballistics struct {
	Gravity float64
	FloorY  float64
}

// Default is the standard model used by the package-level functions.
var Default = Ballistics{Gravity: Gravity, FloorY: FloorY}

// Point returns the position at time t of a projectile launched from origin
// at angleDeg (counter-clockwise from the positive x axis) with speed.
func (b Ballistics) Point(origin core.Vec2, angleDeg, speed, t float64) core.Vec2 {
	theta := core.Radians(angleDeg)
	return core.Vec2{
		X: origin.X + speed*math.Cos(theta)*t,
		Y: origin.Y - (speed*math.Sin(theta)*t - 0.5*b.Gravity*t*t),
	}
}

// Samples yields up to steps points taken at t = i*stepDt. It stops, without
// yielding it, at the first point lower than the floor. The sequence can be
// ranged over any number of times.
func (b Ballistics) Samples(origin core.Vec2, angleDeg, speed float64, steps int, stepDt float64) iter.Seq[core.Vec2] {
	return func(yield func(core.Vec2) bool) {
		for i := range steps {
			p := b.Point(origin, angleDeg, speed, float64(i)*stepDt)
			if p.Y > b.FloorY {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Trajectory collects the default sampling of a launch.
func (b Ballistics) Trajectory(origin core.Vec2, angleDeg, speed float64) []core.Vec2 {
	return slices.Collect(b.Samples(origin, angleDeg, speed, DefaultSteps, DefaultStepDt))
}

// Point evaluates the default model.
func Point(origin core.Vec2, angleDeg, speed, t float64) core.Vec2 {
	return Default.Point(origin, angleDeg, speed, t)
}

// Samples samples the default model.
func Samples(origin core.Vec2, angleDeg, speed float64, steps int, stepDt float64) iter.Seq[core.Vec2] {
	return Default.Samples(origin, angleDeg, speed, steps, stepDt)
}

// Trajectory collects the default sampling of the default model.
func Trajectory(origin core.Vec2, angleDeg, speed float64) []core.Vec2 {
	return Default.Trajectory(origin, angleDeg, speed)
}

// CollidesAny reports whether any point lies inside r, edges included.
// Points are tested individually, so a fast projectile can skip over a thin
// target between two samples.
func CollidesAny(points iter.Seq[core.Vec2], r core.RectF) bool {
	for p := range points {
		if r.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// FirstHit returns the index of the first point inside r, or -1.
func FirstHit(points []core.Vec2, r core.RectF) int {
	return slices.IndexFunc(points, r.ContainsPoint)
}
