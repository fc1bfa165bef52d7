// Package arena is a slot table of values addressed by stable handles.
//
// Released slots are threaded onto a free-list and handed out again by later
// allocations, so a long-lived table does not grow past its peak population.
// Handles are plain integers: holding one keeps nothing alive, and the
// garbage collector never sees a cycle between slots.
package arena

import "fmt"

// Handle refers to a slot in an Arena. The zero value is None.
type Handle int

// None is the handle that refers to no slot.
const None Handle = 0

type slot[T any] struct {
	value T
	// Next free slot while this one is on the free-list.
	nextFree Handle
	live     bool
}

// Arena is a table of T. The zero value is an empty arena ready to use.
//
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  Handle
	live  int
}

// Len returns the number of allocated, not yet freed slots.
func (a *Arena[T]) Len() int { return a.live }

// Cap returns the number of slots in the table, live or free.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Alloc stores v in a slot and returns its handle. Slots released by Free are
// reused before the table grows.
func (a *Arena[T]) Alloc(v T) Handle {
	h := a.free
	if h != None {
		s := &a.slots[h-1]
		a.free = s.nextFree
		s.nextFree = None
	} else {
		a.slots = append(a.slots, slot[T]{})
		h = Handle(len(a.slots))
	}
	s := &a.slots[h-1]
	s.value = v
	s.live = true
	a.live++
	return h
}

// Get returns a pointer to the value held in h. The pointer is valid until the
// next Alloc, Free or Reset.
//
// Get panics if h is None or does not refer to a live slot.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.mustLive(h).value
}

// Free releases the slot held by h and zeroes its value.
//
// Free panics if h is None or the slot is already free.
func (a *Arena[T]) Free(h Handle) {
	s := a.mustLive(h)
	var zero T
	s.value = zero
	s.live = false
	s.nextFree = a.free
	a.free = h
	a.live--
}

// Reset drops every slot.
func (a *Arena[T]) Reset() {
	a.slots = nil
	a.free = None
	a.live = 0
}

func (a *Arena[T]) mustLive(h Handle) *slot[T] {
	if h <= None || int(h) > len(a.slots) {
		panic(fmt.Sprintf("arena: invalid handle %d", h))
	}
	s := &a.slots[h-1]
	if !s.live {
		panic(fmt.Sprintf("arena: handle %d is not allocated", h))
	}
	return s
}
