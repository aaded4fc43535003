package engine

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bowmaster/internal/core"
)

// DefaultRoom is the room a new Scene starts in.
const DefaultRoom = "default"

// Room graph errors. They signal programming mistakes and are not meant to be
// recovered from.
var (
	ErrUnknownRoom = errors.New("unknown room")
	ErrRoomExists  = errors.New("room already exists")
)

type room struct {
	name     string
	entities []Entity
}

// tagged yields the live entities of the room carrying tag, in room order.
func (r *room) tagged(tag string) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range r.entities {
			m := e.Meta()
			if m.Alive() && m.HasTag(tag) && !yield(e) {
				return
			}
		}
	}
}

// Scene owns the rooms of a game and drives the per-frame update of the
// current one. It is not safe for concurrent use; the game loop is the only
// caller.
type Scene struct {
	rooms       map[string]*room
	current     string
	roomChanged bool // set by SwitchRoom during an update pass

	dt       float64
	frame    uint64
	drawList []Entity

	logger *log.Logger
}

// NewScene creates a scene holding only DefaultRoom, which is current.
// A nil logger discards output.
func NewScene(logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scene{
		rooms:   map[string]*room{DefaultRoom: {name: DefaultRoom}},
		current: DefaultRoom,
		dt:      1,
		logger:  logger,
	}
}

// DT returns the delta scale of the frame being updated.
func (s *Scene) DT() float64 {
	return s.dt
}

// Frame returns the number of completed update passes.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Logger returns the scene's logger so entities can report events.
func (s *Scene) Logger() *log.Logger {
	return s.logger
}

// CreateRoom adds an empty room. Creating a name twice is an error.
func (s *Scene) CreateRoom(name string) error {
	if _, ok := s.rooms[name]; ok {
		return fmt.Errorf("engine: create room %q: %w", name, ErrRoomExists)
	}
	s.rooms[name] = &room{name: name}
	s.logger.Debug("room created", "room", name)
	return nil
}

// HasRoom reports whether a room exists.
func (s *Scene) HasRoom(name string) bool {
	_, ok := s.rooms[name]
	return ok
}

// CurrentRoom returns the name of the current room.
func (s *Scene) CurrentRoom() string {
	return s.current
}

// Rooms returns all room names, sorted.
func (s *Scene) Rooms() []string {
	return slices.Sorted(maps.Keys(s.rooms))
}

func (s *Scene) room(name string) (*room, error) {
	r, ok := s.rooms[name]
	if !ok {
		return nil, fmt.Errorf("engine: room %q: %w", name, ErrUnknownRoom)
	}
	return r, nil
}

// Bind appends e to the current room. Entities bound during an update pass
// are first updated on the next frame.
func (s *Scene) Bind(e Entity) {
	r := s.rooms[s.current]
	r.entities = append(r.entities, e)
}

// BindTo appends e to the named room.
func (s *Scene) BindTo(name string, e Entity) error {
	r, err := s.room(name)
	if err != nil {
		return err
	}
	r.entities = append(r.entities, e)
	return nil
}

// Filter returns the live entities of the current room tagged with tag, in
// room order. The result is a fresh slice that later binds do not affect;
// it is nil when nothing matches.
func (s *Scene) Filter(tag string) []Entity {
	return slices.Collect(s.rooms[s.current].tagged(tag))
}

// FilterIn is Filter over a named room.
func (s *Scene) FilterIn(name, tag string) ([]Entity, error) {
	r, err := s.room(name)
	if err != nil {
		return nil, err
	}
	return slices.Collect(r.tagged(tag)), nil
}

// First returns the first live entity of the current room tagged with tag.
func (s *Scene) First(tag string) (Entity, bool) {
	for e := range s.rooms[s.current].tagged(tag) {
		return e, true
	}
	return nil, false
}

// FilterAs returns the tagged live entities of the current room that have
// concrete type T.
func FilterAs[T Entity](s *Scene, tag string) []T {
	var out []T
	for e := range s.rooms[s.current].tagged(tag) {
		if t, ok := e.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// FirstAs returns the first tagged live entity of the current room of type T.
func FirstAs[T Entity](s *Scene, tag string) (T, bool) {
	for e := range s.rooms[s.current].tagged(tag) {
		if t, ok := e.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Entities returns a copy of a room's sequence, dead entities included.
func (s *Scene) Entities(name string) ([]Entity, error) {
	r, err := s.room(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(r.entities), nil
}

// Len returns the number of entities held by a room, or 0 for unknown rooms.
func (s *Scene) Len(name string) int {
	if r, ok := s.rooms[name]; ok {
		return len(r.entities)
	}
	return 0
}

// ClearRoom kills every entity of a room. They are purged by the next pass
// over that room.
func (s *Scene) ClearRoom(name string) error {
	r, err := s.room(name)
	if err != nil {
		return err
	}
	for _, e := range r.entities {
		e.Meta().Kill()
	}
	return nil
}

// SwitchRoom makes name the current room. When called during an update pass,
// the pass does not compact the room it started on.
func (s *Scene) SwitchRoom(name string) error {
	if _, err := s.room(name); err != nil {
		return err
	}
	s.logger.Debug("room switch", "from", s.current, "to", name, "frame", s.frame)
	s.current = name
	s.roomChanged = true
	return nil
}

// Update runs one frame over the current room.
//
// The pass iterates a snapshot of the room, so entities bound meanwhile wait
// for the next frame. Physical bodies are integrated right before their
// entity's Update. Afterwards the room is compacted to its live entities,
// unless SwitchRoom ran during the pass, in which case the old room is left
// as is. An Update error stops the pass and skips compaction.
func (s *Scene) Update(dt float64) error {
	s.dt = dt
	s.roomChanged = false

	r := s.rooms[s.current]
	// Liveness is decided once, here. Entities killed while their room was
	// not current, or before a guarded frame, are left out; entities killed
	// later in this pass still get their update and draw.
	snapshot := slices.DeleteFunc(slices.Clone(r.entities), func(e Entity) bool {
		return !e.Meta().Alive()
	})

	for _, e := range snapshot {
		m := e.Meta()
		if !m.Updatable() {
			continue
		}
		if p, ok := e.(Physical); ok {
			p.Body().Integrate(dt)
		}
		if u, ok := e.(Updatable); ok {
			if err := u.Update(s); err != nil {
				return fmt.Errorf("engine: update room %q frame %d: %w", r.name, s.frame, err)
			}
		}
	}

	s.drawList = snapshot
	s.frame++

	if s.roomChanged {
		s.roomChanged = false
		return nil
	}

	before := len(r.entities)
	r.entities = slices.DeleteFunc(r.entities, func(e Entity) bool {
		return !e.Meta().Alive()
	})
	if purged := before - len(r.entities); purged > 0 {
		s.logger.Debug("entities purged", "room", r.name, "count", purged, "left", len(r.entities))
	}
	return nil
}

// Draw renders the entities of the last update pass, lowest draw order first.
// Entities killed during that pass are drawn this one last time; entities
// bound during it are not drawn yet.
func (s *Scene) Draw(dst *core.Screen) {
	slices.SortStableFunc(s.drawList, func(a, b Entity) int {
		return cmp.Compare(a.Meta().DrawOrder(), b.Meta().DrawOrder())
	})
	for _, e := range s.drawList {
		if d, ok := e.(Drawable); ok {
			d.Draw(dst)
		}
	}
}
