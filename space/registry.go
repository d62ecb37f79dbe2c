package space

import (
	"reflect"
	"time"

	"github.com/kamstrup/intmap"
)

// playerSlot holds one registered player. Capabilities are discovered once,
// at registration, so the per-frame path is plain nil checks.
type playerSlot struct {
	generation uint32
	live       bool

	animator Animator
	resizer  Resizer
	actor    Actor
	starter  Starter

	stats playerStatsInternal
}

type playerStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// registry is an arena of player slots. Slot indices are stable; removal
// marks the slot dead and bumps its generation on reuse, so a stale PlayerId
// can never resolve to a different player. Insertion order is preserved in a
// separate id list with tombstones, compacted when it grows stale-heavy.
type registry struct {
	slots []playerSlot
	free  []uint32
	order []PlayerId
	pos   *intmap.Map[PlayerId, int]
}

func newRegistry() *registry {
	return &registry{
		pos: intmap.New[PlayerId, int](16),
	}
}

func (r *registry) add(p any) PlayerId {
	slot := playerSlot{live: true}
	if a, ok := p.(Animator); ok {
		slot.animator = a
	}
	if rz, ok := p.(Resizer); ok {
		slot.resizer = rz
	}
	if ac, ok := p.(Actor); ok {
		slot.actor = ac
	}
	if st, ok := p.(Starter); ok {
		slot.starter = st
	}
	slot.stats = playerStatsInternal{
		name:        playerName(p),
		minDuration: time.Duration(1<<63 - 1),
	}

	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
		slot.generation = r.slots[idx].generation + 1
		r.slots[idx] = slot
	} else {
		idx = uint32(len(r.slots))
		slot.generation = 1
		r.slots = append(r.slots, slot)
	}

	id := NewPlayerId(r.slots[idx].generation, idx)
	if len(r.order) > 2*r.pos.Len()+8 {
		r.compact()
	}
	r.pos.Put(id, len(r.order))
	r.order = append(r.order, id)
	return id
}

// remove is idempotent: a stale or unknown id is a no-op.
func (r *registry) remove(id PlayerId) {
	pos, ok := r.pos.Get(id)
	if !ok {
		return
	}
	r.pos.Del(id)
	r.order[pos] = 0

	idx := id.Slot()
	slot := &r.slots[idx]
	slot.live = false
	slot.animator = nil
	slot.resizer = nil
	slot.actor = nil
	slot.starter = nil
	r.free = append(r.free, idx)
}

func (r *registry) removeAll() {
	for _, id := range r.order {
		if id != 0 {
			r.remove(id)
		}
	}
	r.order = r.order[:0]
}

func (r *registry) len() int {
	return r.pos.Len()
}

// resolve returns the slot for id, or nil if the id is stale or unknown.
func (r *registry) resolve(id PlayerId) *playerSlot {
	idx := id.Slot()
	if int(idx) >= len(r.slots) {
		return nil
	}
	slot := &r.slots[idx]
	if !slot.live || slot.generation != id.Generation() {
		return nil
	}
	return slot
}

// snapshot copies the live ids in insertion order. The loop iterates the
// snapshot, so players added mid-frame are first invoked on the next frame.
func (r *registry) snapshot(dst []PlayerId) []PlayerId {
	dst = dst[:0]
	for _, id := range r.order {
		if id != 0 {
			dst = append(dst, id)
		}
	}
	return dst
}

// compact rewrites the order list without tombstones and fixes positions.
func (r *registry) compact() {
	w := 0
	for _, id := range r.order {
		if id == 0 {
			continue
		}
		r.order[w] = id
		r.pos.Put(id, w)
		w++
	}
	r.order = r.order[:w]
}

func playerName(p any) string {
	t := reflect.TypeOf(p)
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
