package list

// route returns the end of the list the walk to the given position starts from and the number of hops it takes.
// Positions in the first half are reached from the head, all others from the tail.
func (l *List[T]) route(position int) (fromHead bool, hops int) {
	if position < l.count/2 {
		return true, position
	}

	return false, l.count - 1 - position
}

// seek returns the element at the given (valid) position.
func (l *List[T]) seek(position int) *item[T] {
	fromHead, hops := l.route(position)
	if fromHead {
		current := l.head
		for ; hops > 0; hops-- {
			current = current.next
		}

		return current
	}

	current := l.tail
	for ; hops > 0; hops-- {
		current = current.prev
	}

	return current
}
