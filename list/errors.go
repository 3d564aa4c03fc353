package list

import (
	"github.com/iotaledger/dll/ierrors"
)

var (
	// ErrInvalidArgument is returned if a nil handle, an out of range position or a violated precondition was passed.
	ErrInvalidArgument = ierrors.New("invalid argument")

	// ErrOutOfMemory is returned if the payload of a new element could not be allocated.
	ErrOutOfMemory = ierrors.New("not enough memory")

	// ErrNotFound is returned if a search did not match any element or an iterator was moved on an empty list.
	ErrNotFound = ierrors.New("element not found")

	// errUnexpectedStatus is returned if an iterator wrapped around while walking a range that lies inside the list.
	errUnexpectedStatus = ierrors.New("unexpected iterator status")
)

// Status is the outcome of a list or iterator operation.
type Status uint8

const (
	// StatusError is an unspecified failure.
	StatusError Status = iota

	// StatusOK signals that the operation completed as requested.
	StatusOK

	// StatusTurnaround signals that an iterator wrapped from one end of the list to the other. It is not an error.
	StatusTurnaround

	// StatusOutOfMemory signals that a payload could not be allocated.
	StatusOutOfMemory

	// StatusInvalidArgument signals a nil handle, an out of range position or a violated precondition.
	StatusInvalidArgument

	// StatusNotFound signals a search miss or a move on an empty list.
	StatusNotFound
)

// String returns a human-readable description of the Status.
func (s Status) String() string {
	switch s {
	case StatusError:
		return "Unspecified error"
	case StatusOK:
		return "No error"
	case StatusTurnaround:
		return "Iterator turnaround"
	case StatusOutOfMemory:
		return "Not enough memory"
	case StatusInvalidArgument:
		return "Invalid argument"
	case StatusNotFound:
		return "Element not found"
	default:
		return "Unknown error"
	}
}

// StatusOf maps an error returned by this package to its Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case ierrors.Is(err, ErrInvalidArgument):
		return StatusInvalidArgument
	case ierrors.Is(err, ErrOutOfMemory):
		return StatusOutOfMemory
	case ierrors.Is(err, ErrNotFound):
		return StatusNotFound
	default:
		return StatusError
	}
}

func nilListError() error {
	return ierrors.Wrap(ErrInvalidArgument, "list must not be nil")
}

func nilComparatorError() error {
	return ierrors.Wrap(ErrInvalidArgument, "comparator must not be nil")
}
