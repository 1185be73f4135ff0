// Package registry maps correlation identifiers to the callbacks
// registered for them.
//
// The registry is the only shared mutable structure in the correlation
// core. All operations are atomic per key: Register claims an
// identifier exactly once, Take removes a registration exactly once,
// and the default-slot setters replace the identifier-0 slot
// wholesale while preserving untouched fields.
package registry

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"

	sdkerrors "github.com/wagiedev/tdlib-client-go/internal/errors"
	"github.com/wagiedev/tdlib-client-go/internal/message"
)

// DefaultID is the reserved correlation identifier for the standing
// subscriber to unsolicited notifications. It is never allocated to a
// request and its slot is never removed by dispatch.
const DefaultID uint64 = 0

// Slot bundles the callback interest registered for one correlation
// identifier. Any field may be nil; a nil callback at dispatch time is
// a no-op, not an error.
type Slot struct {
	// OnResult receives success envelopes.
	OnResult func(message.Envelope)

	// OnError receives error envelopes.
	OnError func(message.Envelope)

	// OnClose fires when the transport delivers its close signal.
	// Only meaningful on the default slot.
	OnClose func()
}

// Registry is a concurrent map from correlation identifier to Slot.
// The zero value is not usable; create one with New.
type Registry struct {
	slots *xsync.MapOf[uint64, *Slot]
}

// New creates a registry containing the permanent, initially empty
// default slot.
func New() *Registry {
	r := &Registry{slots: xsync.NewMapOf[uint64, *Slot]()}
	r.slots.Store(DefaultID, &Slot{})

	return r
}

// Register inserts the slot for a freshly allocated identifier.
//
// A collision means identifier allocation is broken, so the returned
// ErrDuplicateRequestID is an invariant violation, not a condition to
// retry.
func (r *Registry) Register(id uint64, slot *Slot) error {
	if slot == nil {
		slot = &Slot{}
	}

	if _, loaded := r.slots.LoadOrStore(id, slot); loaded {
		return fmt.Errorf("%w: %d", sdkerrors.ErrDuplicateRequestID, id)
	}

	return nil
}

// Take atomically removes and returns the slot for id. It reports
// false if the id is absent: already dispatched, never registered, or
// unknown. The default slot cannot be taken.
func (r *Registry) Take(id uint64) (*Slot, bool) {
	if id == DefaultID {
		return nil, false
	}

	return r.slots.LoadAndDelete(id)
}

// Default returns the current default slot without removing it.
func (r *Registry) Default() *Slot {
	slot, _ := r.slots.Load(DefaultID)
	if slot == nil {
		// The default slot is stored at construction and only ever
		// replaced, never deleted.
		return &Slot{}
	}

	return slot
}

// SetOnResult replaces the default slot's result callback, preserving
// the other two fields.
func (r *Registry) SetOnResult(fn func(message.Envelope)) {
	r.replaceDefault(func(s *Slot) { s.OnResult = fn })
}

// SetOnError replaces the default slot's error callback, preserving
// the other two fields.
func (r *Registry) SetOnError(fn func(message.Envelope)) {
	r.replaceDefault(func(s *Slot) { s.OnError = fn })
}

// SetOnClose replaces the default slot's close callback, preserving
// the other two fields.
func (r *Registry) SetOnClose(fn func()) {
	r.replaceDefault(func(s *Slot) { s.OnClose = fn })
}

// replaceDefault swaps the default slot atomically. The previous slot
// value is copied first so concurrent dispatch always observes a
// complete slot, never a partially updated one.
func (r *Registry) replaceDefault(apply func(*Slot)) {
	r.slots.Compute(DefaultID, func(old *Slot, loaded bool) (*Slot, bool) {
		next := &Slot{}
		if loaded && old != nil {
			*next = *old
		}

		apply(next)

		return next, false
	})
}
