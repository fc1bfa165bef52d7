// Package dllist provides a generic doubly linked list with explicit copy and move semantics.
//
// Each List owns its nodes outright. Clone and Assign build an entirely new chain, so mutating a
// copy never shows through to the original. Move, MoveFrom and Swap hand a chain over between lists
// in constant time, and the list that gave its chain away is left empty.
//
// Nodes live in a per-list slot table and link to each other by handle. The forward link owns the
// node it points at: a node is released exactly when it is unlinked from the forward chain. The
// backward link is only used to walk towards the head and has no say in when a node is released.
package dllist

import (
	"github.com/rakibulrs/dllist/internal/arena"
)

type node[T any] struct {
	value T
	// next owns the following node; prev only refers to the preceding one.
	next arena.Handle
	prev arena.Handle
}

// List is a doubly linked list of T. The zero value is an empty list ready to use.
//
// A List must not be copied by value, since the copy would share node storage with the original.
// Use Clone to copy and Move to transfer.
//
// The read-only methods (Len, IsEmpty, HasElements, Front, Back, Get, Find, Values, Clone, String,
// WriteTo and Equal) treat a nil *List as empty. Mutating a nil *List panics.
//
// List's methods must not be called concurrently.
type List[T comparable] struct {
	_ noCopy

	nodes arena.Arena[node[T]]
	head  arena.Handle
	tail  arena.Handle
	size  int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding values in the given order.
func Of[T comparable](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Clone returns a copy of l that shares no nodes with it.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	if l == nil {
		return c
	}
	for h := l.head; h != arena.None; {
		n := l.nodes.Get(h)
		c.PushBack(n.value)
		h = n.next
	}
	return c
}

// Move returns a list holding the contents src held, leaving src empty. Nothing is copied.
func Move[T comparable](src *List[T]) *List[T] {
	l := New[T]()
	l.Swap(src)
	return l
}

// Assign replaces the contents of l with a copy of the contents of src. Assigning a list to itself
// does nothing.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	c := src.Clone()
	l.Swap(c)
}

// MoveFrom replaces the contents of l with the contents of src and leaves src empty. The nodes l
// held before are released. Moving a list into itself does nothing.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}
	l.Swap(src)
	src.Clear()
}

// Swap exchanges the contents of l and other.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	l.nodes, other.nodes = other.nodes, l.nodes
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.size, other.size = other.size, l.size
}

// Clear removes every element from l.
func (l *List[T]) Clear() {
	l.nodes.Reset()
	l.head = arena.None
	l.tail = arena.None
	l.size = 0
}

// PushBack adds v to the back of l.
func (l *List[T]) PushBack(v T) {
	h := l.nodes.Alloc(node[T]{value: v, prev: l.tail})
	if l.tail != arena.None {
		l.nodes.Get(l.tail).next = h
	} else {
		l.head = h
	}
	l.tail = h
	l.size++
}

// PushFront adds v to the front of l.
func (l *List[T]) PushFront(v T) {
	h := l.nodes.Alloc(node[T]{value: v, next: l.head})
	if l.head != arena.None {
		l.nodes.Get(l.head).prev = h
	} else {
		l.tail = h
	}
	l.head = h
	l.size++
}

// PopBack removes the element at the back of l and returns it. If l is empty, PopBack does nothing
// and returns false in the second return.
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == arena.None {
		var zero T
		return zero, false
	}
	old := l.tail
	n := l.nodes.Get(old)
	v := n.value
	if old == l.head {
		l.head = arena.None
		l.tail = arena.None
	} else {
		l.tail = n.prev
		l.nodes.Get(l.tail).next = arena.None
	}
	l.nodes.Free(old)
	l.size--
	return v, true
}

// PopFront removes the element at the front of l and returns it. If l is empty, PopFront does
// nothing and returns false in the second return.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == arena.None {
		var zero T
		return zero, false
	}
	old := l.head
	n := l.nodes.Get(old)
	v := n.value
	if old == l.tail {
		l.head = arena.None
		l.tail = arena.None
	} else {
		l.head = n.next
		l.nodes.Get(l.head).prev = arena.None
	}
	l.nodes.Free(old)
	l.size--
	return v, true
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// IsEmpty returns true if l has no elements.
func (l *List[T]) IsEmpty() bool { return l == nil || l.head == arena.None }

// HasElements returns true if l has at least one element.
func (l *List[T]) HasElements() bool { return !l.IsEmpty() }

// Front returns the element at the front of l, or false in the second return if l is empty.
func (l *List[T]) Front() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.nodes.Get(l.head).value, true
}

// Back returns the element at the back of l, or false in the second return if l is empty.
func (l *List[T]) Back() (T, bool) {
	if l.IsEmpty() {
		var zero T
		return zero, false
	}
	return l.nodes.Get(l.tail).value, true
}

// Get returns the element at position index, counting from 0 at the front. It walks the list from
// the front and so takes time linear in index.
//
// Get returns an error wrapping ErrOutOfRange if l is empty or index is not in [0, l.Len()).
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if l.IsEmpty() {
		return zero, errEmpty(index)
	}
	if index < 0 || index >= l.size {
		return zero, errIndex(index, l.size)
	}
	h := l.head
	for i := 0; i < index; i++ {
		h = l.nodes.Get(h).next
	}
	return l.nodes.Get(h).value, nil
}

// Find returns true if any element of l is equal to v.
func (l *List[T]) Find(v T) bool {
	if l == nil {
		return false
	}
	for h := l.head; h != arena.None; {
		n := l.nodes.Get(h)
		if n.value == v {
			return true
		}
		h = n.next
	}
	return false
}

// Values returns the elements of l from front to back in a new slice.
func (l *List[T]) Values() []T {
	if l == nil {
		return []T{}
	}
	out := make([]T, 0, l.size)
	for h := l.head; h != arena.None; {
		n := l.nodes.Get(h)
		out = append(out, n.value)
		h = n.next
	}
	return out
}

// noCopy may be embedded into structs which must not be copied after first use. go vet's copylocks
// check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
