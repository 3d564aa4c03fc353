package list

import (
	"github.com/iotaledger/dll/ierrors"
)

// region List /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Comparator compares two payloads. It returns a negative value if a is smaller than b, zero if both are equal and a
// positive value if a is larger than b.
type Comparator[T any] func(a, b T) int

// List is a doubly linked list that exclusively owns its elements and their payloads.
//
// A List is not safe for concurrent use. Iterators that are bound to a List are invalidated by any structural change
// (Remove, Clear, Extend, Sort, Reverse) that is not performed through the iterator itself.
type List[T any] struct {
	// head and tail are the first and the last element (both nil if the list is empty).
	head, tail *item[T]

	// count is the number of elements in the list.
	count int
}

// New returns a new empty List.
func New[T any]() *List[T] {
	return new(List[T])
}

// Append allocates a new zero payload at the end of the List and returns a handle to it.
func (l *List[T]) Append() (*T, error) {
	if l == nil {
		return nil, nilListError()
	}

	return l.appendPayload(new(T)), nil
}

// AppendValue appends a copy of the given value to the end of the List.
func (l *List[T]) AppendValue(value T) error {
	payload, err := l.Append()
	if err != nil {
		return err
	}
	*payload = value

	return nil
}

// Insert allocates a new zero payload before the element at the given position and returns a handle to it. Inserting
// at position 0 creates a new head, inserting at position Count() is equivalent to Append.
func (l *List[T]) Insert(position int) (*T, error) {
	if l == nil {
		return nil, nilListError()
	}

	if err := l.checkInsertPosition(position); err != nil {
		return nil, err
	}

	return l.insertPayload(new(T), position), nil
}

// InsertValue inserts a copy of the given value before the element at the given position.
func (l *List[T]) InsertValue(value T, position int) error {
	payload, err := l.Insert(position)
	if err != nil {
		return err
	}
	*payload = value

	return nil
}

// Get returns a handle to the payload at the given position without removing it.
func (l *List[T]) Get(position int) (*T, error) {
	if l == nil {
		return nil, nilListError()
	}

	if err := l.checkPosition(position); err != nil {
		return nil, err
	}

	return l.seek(position).payload, nil
}

// Remove removes the element at the given position and releases its payload.
func (l *List[T]) Remove(position int) error {
	if l == nil {
		return nilListError()
	}

	if err := l.checkPosition(position); err != nil {
		return err
	}

	l.removeItem(l.seek(position))

	return nil
}

// Clear removes all elements from the List.
func (l *List[T]) Clear() error {
	if l == nil {
		return nilListError()
	}

	for current := l.head; current != nil; {
		next := current.next
		current.release()
		current = next
	}

	l.reset()

	return nil
}

// Count returns the number of elements in the List.
func (l *List[T]) Count() int {
	if l == nil {
		return 0
	}

	return l.count
}

// ForEach executes the given callback for the payload of each element in the List. The iteration is aborted if the
// callback returns an error.
func (l *List[T]) ForEach(callback func(payload *T) error) error {
	if l == nil {
		return nilListError()
	}

	for current := l.head; current != nil; current = current.next {
		if err := callback(current.payload); err != nil {
			return err
		}
	}

	return nil
}

// Values returns a slice with a copy of all values in the List.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.Count())
	if l == nil {
		return values
	}

	for current := l.head; current != nil; current = current.next {
		values = append(values, *current.payload)
	}

	return values
}

// Iterator returns a new Iterator that is bound to the List.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l}
}

// appendPayload links a new element holding the given payload after the tail.
func (l *List[T]) appendPayload(payload *T) *T {
	newItem := &item[T]{payload: payload, prev: l.tail}

	if l.tail == nil {
		l.head = newItem
	} else {
		l.tail.next = newItem
	}

	l.tail = newItem
	l.count++

	return payload
}

// insertPayload links a new element holding the given payload before the element at the (valid) position.
func (l *List[T]) insertPayload(payload *T, position int) *T {
	if position == l.count {
		return l.appendPayload(payload)
	}

	next := l.seek(position)
	newItem := &item[T]{payload: payload, prev: next.prev, next: next}

	if next.prev == nil {
		l.head = newItem
	} else {
		next.prev.next = newItem
	}

	next.prev = newItem
	l.count++

	return payload
}

// removeItem unlinks the given element and returns its payload.
func (l *List[T]) removeItem(target *item[T]) *T {
	if target.prev == nil {
		l.head = target.next
	} else {
		target.prev.next = target.next
	}

	if target.next == nil {
		l.tail = target.prev
	} else {
		target.next.prev = target.prev
	}

	l.count--

	return target.release()
}

// reset forgets all elements without touching them.
func (l *List[T]) reset() {
	l.head = nil
	l.tail = nil
	l.count = 0
}

// checkPosition returns an error if the position does not address an existing element.
func (l *List[T]) checkPosition(position int) error {
	if position < 0 || position >= l.count {
		return ierrors.Wrapf(ErrInvalidArgument, "position %d is out of range [0, %d)", position, l.count)
	}

	return nil
}

// checkInsertPosition returns an error if the position is not a valid insertion point.
func (l *List[T]) checkInsertPosition(position int) error {
	if position < 0 || position > l.count {
		return ierrors.Wrapf(ErrInvalidArgument, "insert position %d is out of range [0, %d]", position, l.count)
	}

	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
