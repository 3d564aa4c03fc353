package list

// item is a single element of a List. It owns its payload, prev and next are plain links to its neighbours.
type item[T any] struct {
	payload *T
	prev    *item[T]
	next    *item[T]
}

// swapPayload exchanges the payloads of both items. The items themselves stay where they are.
func (i *item[T]) swapPayload(other *item[T]) {
	i.payload, other.payload = other.payload, i.payload
}

// release drops the payload and the links of an item that was taken out of its list.
func (i *item[T]) release() (payload *T) {
	payload = i.payload

	i.payload = nil
	i.prev = nil // avoid memory leaks
	i.next = nil // avoid memory leaks

	return payload
}
