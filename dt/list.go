package dt

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tychoish/chain/ers"
	"github.com/tychoish/chain/ft"
	"github.com/tychoish/chain/irt"
)

// List provides a singly linked list with the access patterns of a
// slice. The list tracks its tail, so PushBack and PushFront are both
// O(1) operations; every positional operation traverses from the
// head.
//
// The zero value is an empty list ready to use. Read operations on a
// nil list behave as they would on an empty one, while modifying a
// nil list panics.
type List[T comparable] struct {
	head    *node[T]
	tail    *node[T]
	size    int
	version uint64
}

// NewList builds a list from the items in the sequence, in order. A
// nil sequence produces an empty list.
func NewList[T comparable](seq iter.Seq[T]) *List[T] {
	out := &List[T]{}
	if seq != nil {
		out.Extend(seq)
	}
	return out
}

// NewListFrom builds a list from a variadic sequence of items.
func NewListFrom[T comparable](items ...T) *List[T] { return NewList(irt.Args(items...)) }

// NewListFromAny builds a list from a value of unknown type. The
// source may be nil (producing an empty list), a slice of T, an
// iter.Seq[T] (or a plain function of the same shape), another
// *List[T], or any type that provides a Seq() iter.Seq[T] method.
// All other values produce an ErrInvalidConstruction error.
func NewListFromAny[T comparable](src any) (*List[T], error) {
	switch in := src.(type) {
	case nil:
		return &List[T]{}, nil
	case []T:
		return NewListFrom(in...), nil
	case iter.Seq[T]:
		return NewList(in), nil
	case func(func(T) bool):
		return NewList(in), nil
	case *List[T]:
		return in.Copy(), nil
	case interface{ Seq() iter.Seq[T] }:
		return NewList(in.Seq()), nil
	default:
		return nil, ers.Wrapf(ErrInvalidConstruction, "cannot build a list of %T from %T", ft.Zero[T](), src)
	}
}

// Len returns the length of the list. As the insert and delete
// operations track the length of the list, this is an O(1)
// operation.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Get returns the element at the index. Negative indexes count from
// the end of the list, so Get(-1) is the last element.
func (l *List[T]) Get(index int) (T, error) {
	idx, err := l.resolve(index)
	if err != nil {
		return ft.Zero[T](), err
	}
	return l.nodeAt(idx).item, nil
}

// Set overwrites the element at the index. Negative indexes count
// from the end of the list. Set does not change the structure of the
// list, and so does not invalidate cursors.
func (l *List[T]) Set(index int, value T) error {
	idx, err := l.resolve(index)
	if err != nil {
		return err
	}
	l.nodeAt(idx).item = value
	return nil
}

// Front returns the first element of the list without traversal.
func (l *List[T]) Front() (T, error) {
	if l.Len() == 0 {
		return ft.Zero[T](), ers.Wrap(ErrIndexOutOfBounds, "front of empty list")
	}
	return l.head.item, nil
}

// Back returns the last element of the list without traversal.
func (l *List[T]) Back() (T, error) {
	if l.Len() == 0 {
		return ft.Zero[T](), ers.Wrap(ErrIndexOutOfBounds, "back of empty list")
	}
	return l.tail.item, nil
}

// Insert adds the value so that it occupies position index. Negative
// indexes count from the end of the list. Indexes before the
// beginning insert at the front, and indexes at or past the end
// insert at the back: Insert never fails.
func (l *List[T]) Insert(index int, value T) {
	l.ready()

	n := newNode(value)
	if index < 0 {
		index += l.size
	}

	switch {
	case l.head == nil:
		l.head, l.tail = n, n
	case index <= 0:
		n.next = l.head
		l.head = n
	case index >= l.size:
		l.tail.next = n
		l.tail = n
	default:
		prev := l.nodeAt(index - 1)
		n.next = prev.next
		prev.next = n
	}

	l.size++
	l.version++
}

// PushFront adds the value at the beginning of the list.
func (l *List[T]) PushFront(value T) { l.Insert(0, value) }

// PushBack adds the value at the end of the list.
func (l *List[T]) PushBack(value T) { l.Insert(l.Len(), value) }

// Append adds a variadic sequence of items to the end of the list.
func (l *List[T]) Append(items ...T) { l.Extend(irt.Slice(items)) }

// Extend adds every item in the sequence to the end of the list.
func (l *List[T]) Extend(seq iter.Seq[T]) { irt.Apply(seq, l.PushBack) }

// Delete removes the element at the index and returns it. Negative
// indexes count from the end of the list.
func (l *List[T]) Delete(index int) (T, error) {
	idx, err := l.resolve(index)
	if err != nil {
		return ft.Zero[T](), err
	}

	var prev *node[T]
	n := l.head
	for range idx {
		prev, n = n, n.next
	}

	return l.unlink(prev, n), nil
}

// Pop removes and returns the last element of the list.
func (l *List[T]) Pop() (T, error) { return l.Delete(-1) }

// PopAt removes and returns the element at the index. It is the same
// operation as Delete.
func (l *List[T]) PopAt(index int) (T, error) { return l.Delete(index) }

// PopFront removes and returns the first element of the list.
func (l *List[T]) PopFront() (T, error) { return l.Delete(0) }

// GetSpan returns a new list holding the elements of the span, in
// order.
func (l *List[T]) GetSpan(s Span) (*List[T], error) {
	start, stop, step, err := s.bounds(l.Len())
	if err != nil {
		return nil, err
	}

	out := &List[T]{}
	idx := 0
	for n := l.first(); n != nil && idx < stop; n = n.next {
		if selects(idx, start, step) {
			out.PushBack(n.item)
		}
		idx++
	}

	return out, nil
}

// SetSpan is not supported by lists, and always returns
// ErrUnsupportedOperation. Use Set for single elements.
func (l *List[T]) SetSpan(s Span, _ T) error {
	return ers.Wrapf(ErrUnsupportedOperation, "cannot assign to span %s", s)
}

// DeleteSpan removes every element of the span from the list, and
// returns the removed elements, in order, as a new list. Elements
// after each removed element shift down, but the span is resolved
// against the positions the list had before the call.
func (l *List[T]) DeleteSpan(s Span) (*List[T], error) {
	start, stop, step, err := s.bounds(l.Len())
	if err != nil {
		return nil, err
	}

	removed := &List[T]{}
	if start >= stop {
		return removed, nil
	}

	var prev *node[T]
	idx := 0
	for n := l.head; n != nil && idx < stop; idx++ {
		next := n.next
		if selects(idx, start, step) {
			removed.PushBack(l.unlink(prev, n))
		} else {
			prev = n
		}
		n = next
	}

	return removed, nil
}

// Remove deletes the first element of the list that is equal to the
// value, returning ErrValueNotFound when there is no such element.
func (l *List[T]) Remove(value T) error {
	var prev *node[T]
	for n := l.first(); n != nil; prev, n = n, n.next {
		if n.item == value {
			l.unlink(prev, n)
			return nil
		}
	}

	return ers.Wrapf(ErrValueNotFound, "cannot remove %v", value)
}

// Count returns the number of elements equal to the value.
func (l *List[T]) Count(value T) int { return irt.Count(l.Iterator(), value) }

// Contains reports whether any element is equal to the value.
func (l *List[T]) Contains(value T) bool { return irt.Contains(l.Iterator(), value) }

// Index returns the position of the first element equal to the
// value, or ErrValueNotFound if there is no such element.
func (l *List[T]) Index(value T) (int, error) {
	if idx := irt.Index(l.Iterator(), value); idx >= 0 {
		return idx, nil
	}

	return -1, ers.Wrapf(ErrValueNotFound, "cannot find %v", value)
}

// Equal reports whether both lists have the same length and equal
// elements at every position. A nil list is equal to an empty list.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.Len() != other.Len() {
		return false
	}

	for lh, rh := l.first(), other.first(); lh != nil && rh != nil; lh, rh = lh.next, rh.next {
		if lh.item != rh.item {
			return false
		}
	}

	return true
}

// Copy duplicates the list. The nodes of both lists are distinct,
// though if the values are themselves references, the values of both
// lists would be shared.
func (l *List[T]) Copy() *List[T] {
	out, err := l.GetSpan(Full())
	ft.Invariant(err)
	return out
}

// Clear removes every element from the list, severing each node as
// it goes.
func (l *List[T]) Clear() {
	l.ready()

	for n := l.head; n != nil; {
		next := n.next
		n.sever()
		n = next
	}

	l.head = nil
	l.tail = nil
	l.size = 0
	l.version++
}

// Reverse reverses the order of the elements of the list in place.
func (l *List[T]) Reverse() {
	l.ready()

	items := l.Copy()
	l.Clear()
	irt.Apply(items.Iterator(), l.PushFront)
}

// Slice exports the contents of the list to a slice. The slice is
// never nil.
func (l *List[T]) Slice() []T { return irt.Collect(l.Iterator(), 0, l.Len()) }

// String renders the list as ">e0, e1, ..., en-1<", formatting each
// element with fmt's default format.
func (l *List[T]) String() string {
	var buf strings.Builder

	buf.WriteByte('>')
	for idx, value := range l.All() {
		if idx > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, value)
	}
	buf.WriteByte('<')

	return buf.String()
}

func (l *List[T]) ready() { ft.Invariant(ers.When(l == nil, ErrUninitializedContainer)) }

func (l *List[T]) first() *node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// resolve converts a possibly negative index into a position in
// [0, length), or returns ErrIndexOutOfBounds.
func (l *List[T]) resolve(index int) (int, error) {
	idx := index
	if idx < 0 {
		idx += l.Len()
	}

	if idx < 0 || idx >= l.Len() {
		return -1, ers.Wrapf(ErrIndexOutOfBounds, "index %d for list of length %d", index, l.Len())
	}

	return idx, nil
}

// nodeAt walks to the node at a resolved index.
func (l *List[T]) nodeAt(idx int) *node[T] {
	n := l.head
	for range idx {
		n = n.next
	}
	return n
}

// unlink removes n from the chain, where prev is the node before n
// or nil when n is the head, and keeps the tail current.
func (l *List[T]) unlink(prev, n *node[T]) T {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}

	if l.tail == n {
		l.tail = prev
	}

	l.size--
	l.version++
	return n.sever()
}
