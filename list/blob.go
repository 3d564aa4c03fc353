package list

import (
	"github.com/iotaledger/dll/ierrors"
	"github.com/iotaledger/dll/options"
)

// Allocator allocates the payload of a new element. Returning nil signals that the memory could not be allocated.
type Allocator func(size int) []byte

// BlobList is a List of opaque byte payloads whose size is chosen by the caller at every insertion.
type BlobList struct {
	items *List[[]byte]

	// allocator is used to allocate new payloads.
	allocator Allocator

	// memoryLimit is the maximum number of payload bytes the list may hold (0 means unlimited).
	memoryLimit int

	// allocated is the number of payload bytes currently owned by the list.
	allocated int
}

// NewBlobList returns a new empty BlobList.
func NewBlobList(opts ...options.Option[BlobList]) *BlobList {
	return options.Apply(&BlobList{
		items:     New[[]byte](),
		allocator: defaultAllocator,
	}, opts)
}

// WithAllocator sets the Allocator that is used to allocate new payloads.
func WithAllocator(allocator Allocator) options.Option[BlobList] {
	return func(b *BlobList) {
		b.allocator = allocator
	}
}

// WithMemoryLimit limits the number of payload bytes the list may hold. Allocations beyond the limit fail with
// ErrOutOfMemory.
func WithMemoryLimit(limit int) options.Option[BlobList] {
	return func(b *BlobList) {
		b.memoryLimit = limit
	}
}

// Append allocates a new payload of payloadSize bytes at the end of the list and returns it.
func (b *BlobList) Append(payloadSize int) ([]byte, error) {
	if b == nil {
		return nil, nilListError()
	}

	payload, err := b.allocate(payloadSize)
	if err != nil {
		return nil, err
	}

	return *b.items.appendPayload(payload), nil
}

// Insert allocates a new payload of payloadSize bytes before the element at the given position and returns it.
func (b *BlobList) Insert(payloadSize, position int) ([]byte, error) {
	if b == nil {
		return nil, nilListError()
	}

	if err := b.items.checkInsertPosition(position); err != nil {
		return nil, err
	}

	payload, err := b.allocate(payloadSize)
	if err != nil {
		return nil, err
	}

	return *b.items.insertPayload(payload, position), nil
}

// Get returns the payload at the given position.
func (b *BlobList) Get(position int) ([]byte, error) {
	if b == nil {
		return nil, nilListError()
	}

	payload, err := b.items.Get(position)
	if err != nil {
		return nil, err
	}

	return *payload, nil
}

// Remove removes the element at the given position and releases its payload.
func (b *BlobList) Remove(position int) error {
	if b == nil {
		return nilListError()
	}

	if err := b.items.checkPosition(position); err != nil {
		return err
	}

	b.allocated -= len(*b.items.removeItem(b.items.seek(position)))

	return nil
}

// Clear removes all elements and releases their payloads.
func (b *BlobList) Clear() error {
	if b == nil {
		return nilListError()
	}

	b.allocated = 0

	return b.items.Clear()
}

// Count returns the number of elements in the list.
func (b *BlobList) Count() int {
	if b == nil {
		return 0
	}

	return b.items.Count()
}

// Allocated returns the number of payload bytes owned by the list.
func (b *BlobList) Allocated() int {
	if b == nil {
		return 0
	}

	return b.allocated
}

// Sort orders the payloads ascending according to the comparator.
func (b *BlobList) Sort(comparator Comparator[[]byte]) error {
	if b == nil {
		return nilListError()
	}

	return b.items.Sort(comparator)
}

// IndexOf returns the position of the first payload the comparator considers equal to target.
func (b *BlobList) IndexOf(comparator Comparator[[]byte], target []byte) (int, error) {
	if b == nil {
		return -1, nilListError()
	}

	return b.items.IndexOf(comparator, target)
}

// Reverse reverses the order of the payloads.
func (b *BlobList) Reverse() error {
	if b == nil {
		return nilListError()
	}

	return b.items.Reverse()
}

// Extend moves all elements of other to the end of the list. Ownership of the payloads moves along, so the memory
// limit of the list is not enforced for them.
func (b *BlobList) Extend(other *BlobList) error {
	if b == nil || other == nil {
		return nilListError()
	}

	if err := b.items.Extend(other.items); err != nil {
		return err
	}

	b.allocated += other.allocated
	other.allocated = 0

	return nil
}

// DeepCopy appends a freshly allocated copy of every payload to dest, which must be empty. Every copy is payloadSize
// bytes long and holds the leading bytes of its source payload. If an allocation fails, dest is cleared again.
func (b *BlobList) DeepCopy(dest *BlobList, payloadSize int) error {
	if b == nil || dest == nil {
		return nilListError()
	}

	if payloadSize < 1 {
		return ierrors.Wrapf(ErrInvalidArgument, "payload size must be at least 1 but is %d", payloadSize)
	}

	if dest.Count() != 0 {
		return ierrors.Wrapf(ErrInvalidArgument, "destination list must be empty but holds %d elements", dest.Count())
	}

	if err := b.items.copyInto(dest.items, func(payload *[]byte) (*[]byte, error) {
		duplicated, err := dest.allocate(payloadSize)
		if err != nil {
			return nil, err
		}
		copy(*duplicated, *payload)

		return duplicated, nil
	}); err != nil {
		_ = dest.Clear()

		return err
	}

	return nil
}

// Iterator returns a new Iterator over the payloads of the list.
func (b *BlobList) Iterator() *Iterator[[]byte] {
	if b == nil {
		return new(Iterator[[]byte])
	}

	return b.items.Iterator()
}

// allocate allocates a new payload of the given size without linking it.
func (b *BlobList) allocate(size int) (*[]byte, error) {
	if size < 1 {
		return nil, ierrors.Wrapf(ErrInvalidArgument, "payload size must be at least 1 but is %d", size)
	}

	if b.memoryLimit > 0 && b.allocated+size > b.memoryLimit {
		return nil, ierrors.Wrapf(ErrOutOfMemory, "%d more bytes exceed the limit of %d bytes (%d in use)", size, b.memoryLimit, b.allocated)
	}

	payload := b.allocator(size)
	if payload == nil {
		return nil, ierrors.Wrapf(ErrOutOfMemory, "failed to allocate %d bytes", size)
	}
	b.allocated += len(payload)

	return &payload, nil
}

func defaultAllocator(size int) []byte {
	return make([]byte, size)
}
