package lo

// Cond is a conditional statement that returns the trueValue if the condition is true and the falseValue otherwise.
func Cond[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	}

	return falseValue
}

// CopySlice copies the base slice into copied and returns it.
func CopySlice[T any](base []T) (copied []T) {
	copied = make([]T, len(base))
	copy(copied, base)

	return copied
}
