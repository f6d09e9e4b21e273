package dt

import (
	"iter"

	"github.com/tychoish/chain/ft"
	"github.com/tychoish/chain/irt"
)

// Cursor is a position in a traversal of a list. Every cursor is
// independent: any number of cursors can walk the same list at the
// same time without affecting each other.
//
// A cursor belongs to the list's structure at the time it was
// created. Once the list has had elements inserted or deleted (or has
// been cleared), Next returns ErrStaleCursor until Reset is called.
//
//	cur := list.Cursor()
//	for value, err := cur.Next(); err == nil; value, err = cur.Next() {
//		// operate
//	}
type Cursor[T comparable] struct {
	list    *List[T]
	current *node[T]
	started bool
	version uint64
}

// Cursor returns a cursor positioned before the first element of the
// list.
func (l *List[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{list: l}
	c.Reset()
	return c
}

// Next advances the cursor and returns the element at the new
// position. At the end of the list Next returns ErrIteratorExhausted,
// and continues to do so on subsequent calls.
func (c *Cursor[T]) Next() (T, error) {
	switch {
	case c.list == nil:
		return ft.Zero[T](), ErrIteratorExhausted
	case c.version != c.list.version:
		c.current = nil
		return ft.Zero[T](), ErrStaleCursor
	case !c.started:
		c.started = true
		c.current = c.list.head
	case c.current != nil:
		c.current = c.current.next
	}

	if c.current == nil {
		return ft.Zero[T](), ErrIteratorExhausted
	}

	return c.current.item, nil
}

// Reset moves the cursor back before the first element and
// resynchronizes it with the current structure of the list.
func (c *Cursor[T]) Reset() {
	c.current = nil
	c.started = false
	if c.list != nil {
		c.version = c.list.version
	}
}

// Ok reports whether the cursor is positioned on an element.
func (c *Cursor[T]) Ok() bool { return c.current != nil }

// Value returns the element at the cursor's current position, or the
// zero value when the cursor is not on an element.
func (c *Cursor[T]) Value() T {
	if c.current == nil {
		return ft.Zero[T]()
	}
	return c.current.item
}

// Iterator returns a native go iterator over the elements of the
// list, in order. Each call produces an independent traversal. The
// traversal ends early if the list gains or loses elements while it
// is in progress.
func (l *List[T]) Iterator() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := l.Cursor()
		for value, err := cur.Next(); err == nil; value, err = cur.Next() {
			if !yield(value) {
				return
			}
		}
	}
}

// Seq is an alias for Iterator.
func (l *List[T]) Seq() iter.Seq[T] { return l.Iterator() }

// All returns an iterator over the positions and elements of the
// list.
func (l *List[T]) All() iter.Seq2[int, T] { return irt.WithIndex(l.Iterator()) }
