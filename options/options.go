package options

// Option configures an instance of T. Constructors accept a variadic list of them.
type Option[T any] func(*T)

// Apply runs the options against obj in the given order. The initFuncs run afterwards and can derive fields from
// the configured values. It returns obj to allow constructors to return the result directly.
func Apply[T any](obj *T, opts []Option[T], initFuncs ...func(*T)) *T {
	for _, opt := range opts {
		opt(obj)
	}

	for _, initFunc := range initFuncs {
		initFunc(obj)
	}

	return obj
}
