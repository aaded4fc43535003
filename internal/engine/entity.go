// Package engine implements the entity-scene runtime: named rooms of
// polymorphic entities updated once per frame, with deferred spawning and
// purging, tag queries, and a fade transition between rooms.
//
// Entities opt into behavior through small capability interfaces. Every value
// bound into a room is an Entity (usually by embedding Base); it may also be
// Updatable, Drawable and Physical in any combination.
package engine

import (
	"maps"
	"slices"

	"github.com/vovakirdan/bowmaster/internal/core"
)

// Entity is anything that can live in a room.
type Entity interface {
	Meta() *Base
}

// Updatable entities receive one Update call per frame while updatable.
// A returned error aborts the frame.
type Updatable interface {
	Update(s *Scene) error
}

// Drawable entities render themselves into the frame buffer.
type Drawable interface {
	Draw(dst *core.Screen)
}

// Physical entities own a Body that the scene integrates before Update.
type Physical interface {
	Body() *Body
}

// Base holds the lifecycle metadata shared by all entities.
// The zero value is an alive, updatable entity without tags.
type Base struct {
	dead      bool
	paused    bool
	tags      map[string]struct{}
	drawOrder float64
}

// NewBase returns an alive, updatable Base carrying the given tags.
func NewBase(drawOrder float64, tags ...string) Base {
	var b Base
	b.Init(drawOrder, tags...)
	return b
}

// Init resets the metadata to alive and updatable with the given tags.
func (b *Base) Init(drawOrder float64, tags ...string) {
	b.dead = false
	b.paused = false
	b.drawOrder = drawOrder
	b.tags = make(map[string]struct{}, len(tags))
	for _, t := range tags {
		b.tags[t] = struct{}{}
	}
}

// Meta makes every type embedding Base an Entity.
func (b *Base) Meta() *Base {
	return b
}

// Alive reports whether the entity survives the current frame.
func (b *Base) Alive() bool {
	return !b.dead
}

// Kill marks the entity for removal at the end of the current update pass.
func (b *Base) Kill() {
	b.dead = true
}

// Updatable reports whether the scene calls Update on this entity.
func (b *Base) Updatable() bool {
	return !b.paused
}

// SetUpdatable toggles update eligibility. Non-updatable entities stay in
// their room and are still drawn.
func (b *Base) SetUpdatable(on bool) {
	b.paused = !on
}

// AddTag attaches a label. Adding an existing tag is a no-op.
func (b *Base) AddTag(tag string) {
	if b.tags == nil {
		b.tags = make(map[string]struct{})
	}
	b.tags[tag] = struct{}{}
}

// RemoveTag detaches a label.
func (b *Base) RemoveTag(tag string) {
	delete(b.tags, tag)
}

// HasTag reports whether the entity carries tag.
func (b *Base) HasTag(tag string) bool {
	_, ok := b.tags[tag]
	return ok
}

// Tags returns the entity's labels in sorted order.
func (b *Base) Tags() []string {
	return slices.Sorted(maps.Keys(b.tags))
}

// DrawOrder returns the layering key; higher values draw on top.
func (b *Base) DrawOrder() float64 {
	return b.drawOrder
}

// SetDrawOrder changes the layering key.
func (b *Base) SetDrawOrder(z float64) {
	b.drawOrder = z
}

// Body is the kinematic state of a physical entity.
type Body struct {
	Pos core.Vec2
	Vel core.Vec2
}

// Integrate advances the position by the velocity scaled by dt.
func (b *Body) Integrate(dt float64) {
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt
}
