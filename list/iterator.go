package list

import (
	"github.com/iotaledger/dll/ierrors"
)

// Iterator is a cursor over a List. It does not own any data of the List.
//
// A fresh Iterator is not positioned yet: the first call to Next moves it to the head, the first call to Prev moves it
// to the tail. Moving past either end wraps around to the other end and reports StatusTurnaround, so a caller that
// loops until it sees StatusTurnaround has visited every element exactly once.
type Iterator[T any] struct {
	list        *List[T]
	item        *item[T]
	initialized bool
}

// NewIterator returns a new Iterator that is bound to the given List.
func NewIterator[T any](l *List[T]) (*Iterator[T], error) {
	if l == nil {
		return nil, nilListError()
	}

	return l.Iterator(), nil
}

// Next moves the Iterator to the next element and returns its payload.
func (i *Iterator[T]) Next() (payload *T, status Status, err error) {
	if err = i.checkBound(); err != nil {
		return nil, StatusInvalidArgument, err
	}

	status = StatusOK
	switch {
	case !i.initialized || i.item == nil:
		i.item = i.list.head
	case i.item == i.list.tail:
		i.item = i.list.head
		status = StatusTurnaround
	default:
		i.item = i.item.next
	}

	return i.current(status)
}

// Prev moves the Iterator to the previous element and returns its payload.
func (i *Iterator[T]) Prev() (payload *T, status Status, err error) {
	if err = i.checkBound(); err != nil {
		return nil, StatusInvalidArgument, err
	}

	status = StatusOK
	switch {
	case !i.initialized || i.item == nil:
		i.item = i.list.tail
	case i.item == i.list.head:
		i.item = i.list.tail
		status = StatusTurnaround
	default:
		i.item = i.item.prev
	}

	return i.current(status)
}

// Seek positions the Iterator on the element at the given position, walking from the nearer end of the List.
func (i *Iterator[T]) Seek(position int) error {
	if err := i.checkBound(); err != nil {
		return err
	}

	if err := i.list.checkPosition(position); err != nil {
		return err
	}

	i.item = i.list.seek(position)
	i.initialized = true

	return nil
}

// Current returns the payload of the element the Iterator is positioned on.
func (i *Iterator[T]) Current() (*T, error) {
	if err := i.checkBound(); err != nil {
		return nil, err
	}

	if !i.initialized || i.item == nil {
		return nil, ierrors.Wrap(ErrNotFound, "iterator is not positioned on an element")
	}

	return i.item.payload, nil
}

// Reset moves the Iterator back to its fresh state. It stays bound to its List.
func (i *Iterator[T]) Reset() {
	i.item = nil
	i.initialized = false
}

// Free detaches the Iterator from its List. Calling Free multiple times is safe.
func (i *Iterator[T]) Free() {
	i.Reset()
	i.list = nil
}

func (i *Iterator[T]) current(status Status) (*T, Status, error) {
	if i.item == nil {
		i.initialized = false

		return nil, StatusNotFound, ierrors.Wrap(ErrNotFound, "list is empty")
	}
	i.initialized = true

	return i.item.payload, status, nil
}

func (i *Iterator[T]) checkBound() error {
	if i == nil || i.list == nil {
		return ierrors.Wrap(ErrInvalidArgument, "iterator is not bound to a list")
	}

	return nil
}

// step moves an iterator by one element inside a range that does not cross the ends of the list.
func step[T any](move func() (*T, Status, error)) error {
	_, status, err := move()
	if err != nil {
		return err
	}

	if status != StatusOK {
		return ierrors.Wrapf(errUnexpectedStatus, "%s", status)
	}

	return nil
}
