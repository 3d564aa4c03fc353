package list

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/iotaledger/dll/ierrors"
)

// span is an inclusive range of positions that still needs to be partitioned.
type span struct {
	lo, hi int
}

// Sort orders the List ascending according to the comparator. It is an in-place quicksort that moves payloads between
// elements instead of relinking them. The sort is not stable.
func (l *List[T]) Sort(comparator Comparator[T]) error {
	if l == nil {
		return nilListError()
	}

	if comparator == nil {
		return nilComparatorError()
	}

	pending := arraystack.New()
	pending.Push(span{lo: 0, hi: l.count - 1})

	for !pending.Empty() {
		next, _ := pending.Pop()

		current, _ := next.(span)
		if current.hi <= current.lo {
			continue
		}

		pivotPosition, err := l.partition(comparator, current.lo, current.hi)
		if err != nil {
			return ierrors.Wrapf(err, "failed to partition [%d, %d]", current.lo, current.hi)
		}

		// the upper side is pushed first so that the lower side is partitioned first
		if pivotPosition != current.hi {
			pending.Push(span{lo: pivotPosition + 1, hi: current.hi})
		}
		if pivotPosition != current.lo {
			pending.Push(span{lo: current.lo, hi: pivotPosition - 1})
		}
	}

	return nil
}

// partition partitions [lo, hi] around the payload of the element at lo and returns the final position of that payload.
func (l *List[T]) partition(comparator Comparator[T], lo, hi int) (int, error) {
	up, down := l.Iterator(), l.Iterator()
	if err := up.Seek(lo); err != nil {
		return 0, err
	}
	if err := down.Seek(hi); err != nil {
		return 0, err
	}

	// the pivot element keeps its payload until the very last swap
	pivot := up.item

	upPosition, downPosition := lo, hi
	for {
		for comparator(*up.item.payload, *pivot.payload) <= 0 && upPosition < hi {
			if err := step(up.Next); err != nil {
				return 0, err
			}
			upPosition++
		}

		for comparator(*down.item.payload, *pivot.payload) > 0 && downPosition > lo {
			if err := step(down.Prev); err != nil {
				return 0, err
			}
			downPosition--
		}

		if upPosition >= downPosition {
			break
		}

		up.item.swapPayload(down.item)
	}

	down.item.swapPayload(pivot)

	return downPosition, nil
}
