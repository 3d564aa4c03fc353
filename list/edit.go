package list

import (
	"github.com/iotaledger/dll/constraints"
	"github.com/iotaledger/dll/ierrors"
)

// Extend moves all elements of other to the end of the List. The elements are relinked, not copied, and other is
// empty afterwards.
func (l *List[T]) Extend(other *List[T]) error {
	if l == nil || other == nil {
		return nilListError()
	}

	if l == other {
		return ierrors.Wrap(ErrInvalidArgument, "a list can not be extended with itself")
	}

	if other.count == 0 {
		return nil
	}

	if l.tail == nil {
		l.head = other.head
	} else {
		l.tail.next = other.head
		other.head.prev = l.tail
	}

	l.tail = other.tail
	l.count += other.count

	other.reset()

	return nil
}

// Reverse reverses the order of the payloads in the List.
func (l *List[T]) Reverse() error {
	if l == nil {
		return nilListError()
	}

	forward, backward := l.Iterator(), l.Iterator()
	for swaps := l.count / 2; swaps > 0; swaps-- {
		if err := step(forward.Next); err != nil {
			return ierrors.Wrap(err, "failed to move forward")
		}
		if err := step(backward.Prev); err != nil {
			return ierrors.Wrap(err, "failed to move backward")
		}

		forward.item.swapPayload(backward.item)
	}

	return nil
}

// DeepCopy appends a copy of every payload of the List to dest, which must be empty. Payloads that implement
// constraints.Cloneable are cloned, all others are copied by assignment.
func (l *List[T]) DeepCopy(dest *List[T]) error {
	if l == nil || dest == nil {
		return nilListError()
	}

	if dest.count != 0 {
		return ierrors.Wrapf(ErrInvalidArgument, "destination list must be empty but holds %d elements", dest.count)
	}

	return l.copyInto(dest, func(payload *T) (*T, error) {
		return clonePayload(payload), nil
	})
}

// IndexOf returns the position of the first element whose payload the comparator considers equal to target.
func (l *List[T]) IndexOf(comparator Comparator[T], target T) (int, error) {
	if l == nil {
		return -1, nilListError()
	}

	if comparator == nil {
		return -1, nilComparatorError()
	}

	position := 0
	for current := l.head; current != nil; current = current.next {
		if comparator(*current.payload, target) == 0 {
			return position, nil
		}
		position++
	}

	return -1, ierrors.Wrapf(ErrNotFound, "none of the %d elements matches", l.count)
}

// copyInto appends a duplicate of every payload to dest in traversal order.
func (l *List[T]) copyInto(dest *List[T], duplicate func(payload *T) (*T, error)) error {
	for current := l.head; current != nil; current = current.next {
		duplicated, err := duplicate(current.payload)
		if err != nil {
			return ierrors.Wrapf(err, "failed to copy element %d", dest.count)
		}

		dest.appendPayload(duplicated)
	}

	return nil
}

func clonePayload[T any](payload *T) *T {
	if cloneable, isCloneable := any(*payload).(constraints.Cloneable[T]); isCloneable {
		cloned := cloneable.Clone()

		return &cloned
	}

	copied := *payload

	return &copied
}
