package constraints

// Ordered is satisfied by every type whose values can be ordered with the < and > operators.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~string
}

// Comparable is satisfied by types that know how to order themselves against another value of the same type.
type Comparable[T any] interface {
	// Compare returns a negative value if the receiver is smaller than other, zero if both are equal and a positive
	// value otherwise.
	Compare(other T) int
}

// Cloneable is satisfied by types that can produce a deep copy of themselves.
type Cloneable[T any] interface {
	// Clone returns a copy that shares no mutable state with the receiver.
	Clone() T
}
