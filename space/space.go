package space

import (
	"context"
	"fmt"
	"time"
)

const (
	// Forever disables the end-time threshold: the loop never stops on
	// its own.
	Forever = -1

	// DefaultPlayOnceDuration is how long PlayOnce runs, in loop time
	// units, when no positive duration is given.
	DefaultPlayOnceDuration = 5000
)

// Space coordinates a frame loop over a dynamic set of registered players.
// It owns the bounding region, the timing bookkeeping and the pause/stop
// state machine; drawing is delegated to an optional Surface and frame
// callbacks to an optional FrameScheduler.
//
// A Space is not safe for concurrent use. All calls are expected to come
// from the goroutine driving the frames, which includes player callbacks
// running inside a frame.
type Space struct {
	players *registry
	surface Surface
	sched   FrameScheduler
	frame   FrameHandle

	bound      Bound
	boundReady bool

	prevTime   float64
	frameDelta float64
	endTime    float64

	paused     bool
	refresh    bool
	refreshSet bool
	ended      bool
	err        error

	pointer Pt

	scratch     []PlayerId
	totalFrames int64
}

// New creates an idle space with no surface and no scheduler. Such a space
// is host-driven: the host calls Play once per frame itself.
func New() *Space {
	return &Space{
		players: newRegistry(),
		endTime: Forever,
	}
}

// BindSurface attaches the concrete drawing surface.
func (s *Space) BindSurface(sf Surface) *Space {
	s.surface = sf
	return s
}

// BindScheduler attaches a frame-callback facility. Once bound, Play
// reschedules itself through it, making the loop self-perpetuating.
func (s *Space) BindScheduler(fs FrameScheduler) *Space {
	s.sched = fs
	return s
}

// Add registers a player. The player may implement any subset of Animator,
// Resizer, Actor and Starter; a bare func(time, ft float64, s *Space) error
// can be registered by wrapping it in AnimateFunc. Capabilities are
// discovered once, at registration.
//
// If the bound is already initialized the player's Start and Resize
// capabilities fire immediately, so late joiners don't miss the initial
// layout. Adding the first player switches the refresh flag on unless the
// caller configured it explicitly. Add never fails; the returned id is
// unique for the lifetime of the space and is the handle for Remove.
func (s *Space) Add(p any) PlayerId {
	id := s.players.add(p)
	if s.boundReady {
		if slot := s.players.resolve(id); slot != nil && slot.starter != nil {
			slot.starter.Start(s.bound, s)
		}
		if slot := s.players.resolve(id); slot != nil && slot.resizer != nil {
			slot.resizer.Resize(s.bound.Size, nil)
		}
	}
	if !s.refreshSet {
		s.refresh = true
		s.refreshSet = true
	}
	return id
}

// With registers players and returns the space for chained configuration.
func (s *Space) With(players ...any) *Space {
	for _, p := range players {
		s.Add(p)
	}
	return s
}

// Remove deregisters the player with the given id. Unknown or stale ids are
// a no-op, so Remove is idempotent.
func (s *Space) Remove(id PlayerId) {
	s.players.remove(id)
}

// RemoveAll clears the whole player registry.
func (s *Space) RemoveAll() {
	s.players.removeAll()
}

// PlayerCount returns the number of registered players.
func (s *Space) PlayerCount() int {
	return s.players.len()
}

// Play advances one frame at the host timestamp now. When a scheduler is
// bound the next frame is scheduled first, so the loop keeps itself alive.
// While paused the callback keeps firing but all per-frame work is skipped.
//
// The frame delta is now minus the previous timestamp; it is not clamped,
// so a regressing host clock produces a negative delta. A player error
// cancels the pending callback and is returned; the error is sticky and
// every later Play returns it until Replay.
func (s *Space) Play(now float64) error {
	if s.err != nil {
		return s.err
	}
	if s.ended {
		return nil
	}
	if s.sched != nil {
		s.frame = s.sched.Schedule(s.step)
	}
	if s.paused {
		return nil
	}
	s.frameDelta = now - s.prevTime
	s.prevTime = now
	if err := s.playItems(now); err != nil {
		s.cancelFrame()
		s.err = err
		s.ended = true
		return err
	}
	return nil
}

func (s *Space) step(now float64) {
	s.Play(now)
}

// playItems runs one frame's worth of player work: clear the surface when
// refreshing, then every animator in insertion order, then the end-time
// check. The registry is snapshotted at frame start, so players added from
// inside a callback first run on the next frame; players removed mid-frame
// are skipped immediately via the generation check.
func (s *Space) playItems(now float64) error {
	if s.refresh {
		s.Clear()
	}

	s.scratch = s.players.snapshot(s.scratch)
	for _, id := range s.scratch {
		slot := s.players.resolve(id)
		if slot == nil || slot.animator == nil {
			continue
		}
		animator := slot.animator
		name := slot.stats.name

		start := time.Now()
		err := animator.Animate(now, s.frameDelta, s)
		duration := time.Since(start)

		// The callback may have grown the arena; re-resolve before
		// touching the slot again.
		if slot = s.players.resolve(id); slot != nil {
			slot.stats.record(duration)
		}
		if err != nil {
			return fmt.Errorf("player %s: %w", name, err)
		}
	}
	s.totalFrames++

	if s.endTime >= 0 && now > s.endTime {
		s.cancelFrame()
		s.ended = true
	}
	return nil
}

// Run drives the loop from a wall-clock ticker until the loop stops on its
// own, a player fails, or ctx is cancelled. Times passed to players are
// milliseconds since Run started. An interval of zero or less means 60
// frames per second. Run is meant for spaces without a bound scheduler;
// everything stays on the calling goroutine.
func (s *Space) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	epoch := time.Now()
	if err := s.Play(0); err != nil {
		return err
	}
	for !s.ended {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			if err := s.Play(float64(t.Sub(epoch)) / float64(time.Millisecond)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Pause suspends per-frame work. The frame callback keeps firing, so
// resuming is cheap.
func (s *Space) Pause() *Space {
	s.paused = true
	return s
}

// TogglePause flips the pause flag and reports the new state.
func (s *Space) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Resume clears the pause flag unconditionally.
func (s *Space) Resume() *Space {
	s.paused = false
	return s
}

// Paused reports whether per-frame work is currently suspended.
func (s *Space) Paused() bool {
	return s.paused
}

// Stop arms the end-time threshold. Zero stops on the very next tick,
// Forever (-1) never stops, and a positive value stops once the loop clock
// passes it.
func (s *Space) Stop(after float64) *Space {
	s.endTime = after
	return s
}

// PlayOnce starts the loop and arms a stop after duration time units. A
// duration of zero or less uses DefaultPlayOnceDuration.
func (s *Space) PlayOnce(duration float64) error {
	if duration <= 0 {
		duration = DefaultPlayOnceDuration
	}
	err := s.Play(0)
	s.Stop(duration)
	return err
}

// Replay restarts the loop after a natural stop or a player failure: the
// end-time threshold is reset to Forever, the clock bookkeeping starts
// over, and the first frame plays immediately.
func (s *Space) Replay() error {
	s.endTime = Forever
	s.ended = false
	s.err = nil
	s.prevTime = 0
	s.frameDelta = 0
	return s.Play(0)
}

// Refresh configures whether the surface is cleared before each frame.
// Players that accumulate trails want this off.
func (s *Space) Refresh(b bool) *Space {
	s.refresh = b
	s.refreshSet = true
	return s
}

// Err returns the sticky error from a failed frame, if any. Useful when the
// loop is driven by a scheduler and Play's return value has no caller.
func (s *Space) Err() error {
	return s.err
}

// Resize sets the space's bounding box and propagates the new size: first
// to the surface, then to every player with a Resize capability. The first
// call also fires every player's Start capability. Negative size components
// are clamped to zero.
func (s *Space) Resize(size Pt, ev Event) *Space {
	size = clampSize(size)
	first := !s.boundReady
	s.bound = Bound{Size: size}
	s.boundReady = true

	if s.surface != nil {
		s.surface.Resize(size, ev)
	}

	ids := s.players.snapshot(nil)
	if first {
		for _, id := range ids {
			if slot := s.players.resolve(id); slot != nil && slot.starter != nil {
				slot.starter.Start(s.bound, s)
			}
		}
	}
	for _, id := range ids {
		if slot := s.players.resolve(id); slot != nil && slot.resizer != nil {
			slot.resizer.Resize(size, ev)
		}
	}
	return s
}

// DispatchAction fans an input action out to every player with an Action
// capability, in insertion order. Surface bindings call this from their
// input handling; the kind strings are binding-defined ("move", "down",
// "up", "drag", ...).
func (s *Space) DispatchAction(kind string, x, y float64, ev Event) {
	for _, id := range s.players.snapshot(nil) {
		if slot := s.players.resolve(id); slot != nil && slot.actor != nil {
			slot.actor.Action(kind, x, y, ev)
		}
	}
}

// SetPointer records the last known pointer position. Mutated by the input
// binding only.
func (s *Space) SetPointer(p Pt) {
	s.pointer = p
}

// Pointer returns the last known pointer position.
func (s *Space) Pointer() Pt {
	return s.pointer
}

// OuterBound returns a copy of the space's full bounding box.
func (s *Space) OuterBound() Bound {
	return s.bound
}

// InnerBound returns the content-safe drawing area: same size as the outer
// bound, origin offset by the magnitude of the size vector along x. The
// offset reserves a header strip for out-of-band UI.
func (s *Space) InnerBound() Bound {
	return Bound{
		Origin: Pt{X: s.bound.Size.Mag()},
		Size:   s.bound.Size,
	}
}

// Size returns a copy of the bounding box's size.
func (s *Space) Size() Pt {
	return s.bound.Size
}

// Center returns half the size vector.
func (s *Space) Center() Pt {
	return s.bound.Size.Scale(0.5)
}

// Width returns the bounding box width.
func (s *Space) Width() float64 {
	return s.bound.Size.X
}

// Height returns the bounding box height.
func (s *Space) Height() float64 {
	return s.bound.Size.Y
}

// Time returns the loop timestamp of the most recent frame.
func (s *Space) Time() float64 {
	return s.prevTime
}

// FrameDelta returns the time elapsed between the two most recent frames.
func (s *Space) FrameDelta() float64 {
	return s.frameDelta
}

// Clear delegates to the surface. A space without a surface clears nothing.
func (s *Space) Clear() *Space {
	if s.surface != nil {
		s.surface.Clear()
	}
	return s
}

// Form returns the surface's drawing handle, or nil without a surface.
func (s *Space) Form() Form {
	if s.surface != nil {
		return s.surface.Form()
	}
	return nil
}

func (s *Space) cancelFrame() {
	if s.frame != nil {
		s.frame.Cancel()
		s.frame = nil
	}
}
