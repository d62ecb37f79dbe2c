package space

// PlayerId encodes both the slot generation (upper 32 bits) and the slot
// index (lower 32 bits). Generations start at 1, so the zero PlayerId never
// refers to a registered player.
type PlayerId uint64

// NewPlayerId creates a PlayerId from a generation and a slot index.
func NewPlayerId(generation uint32, slot uint32) PlayerId {
	return PlayerId(uint64(generation)<<32 | uint64(slot))
}

// Generation extracts the generation from the player ID.
func (id PlayerId) Generation() uint32 {
	return uint32(id >> 32)
}

// Slot extracts the slot index from the player ID.
func (id PlayerId) Slot() uint32 {
	return uint32(id & 0xFFFFFFFF)
}

// Event is an opaque platform event handed through to players. Concrete
// surface bindings define what it actually holds.
type Event any

// Form is an opaque handle to a surface's drawing primitives. The loop never
// draws anything itself; players fetch the Form from their space and assert
// the concrete type provided by the surface binding.
type Form any

// Animator is the per-frame capability of a player. The time and frame delta
// are in the host clock's units (milliseconds for the provided schedulers).
// A non-nil error stops the whole loop; there is no per-player isolation.
type Animator interface {
	Animate(time, ft float64, s *Space) error
}

// Resizer is notified whenever the space's bound changes. Players added after
// the bound is initialized receive the current size immediately.
type Resizer interface {
	Resize(size Pt, ev Event)
}

// Actor receives pointer and input actions dispatched by the surface binding.
type Actor interface {
	Action(kind string, x, y float64, ev Event)
}

// Starter is invoked once, when the space's bound first becomes known.
type Starter interface {
	Start(bound Bound, s *Space)
}

// AnimateFunc adapts a bare per-frame function into an Animator, so a
// function can be registered directly with Space.Add.
type AnimateFunc func(time, ft float64, s *Space) error

// Animate calls f.
func (f AnimateFunc) Animate(time, ft float64, s *Space) error {
	return f(time, ft, s)
}
