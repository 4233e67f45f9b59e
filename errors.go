package watchable

import (
	"errors"
	"fmt"

	"github.com/viant/watchable/table"
)

// Kind identifies the category of a container error.
type Kind int

const (
	// KindUsage indicates invalid arguments or use of a destroyed container.
	KindUsage Kind = iota + 1
	// KindNotFound indicates a value or key that could not be resolved.
	KindNotFound
	// KindFrozen indicates a structural change of a frozen container.
	KindFrozen
)

var (
	//ErrUsage matches usage errors
	ErrUsage = errors.New("usage error")
	//ErrNotFound matches not found errors
	ErrNotFound = errors.New("not found")
	//ErrFrozen matches frozen violations
	ErrFrozen = errors.New("container is frozen")
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindNotFound:
		return "not found"
	case KindFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindUsage:
		return ErrUsage
	case KindNotFound:
		return ErrNotFound
	case KindFrozen:
		return ErrFrozen
	}
	return nil
}

// Error represents a container operation error
type Error struct {
	// Op is the operation that failed (e.g., "Remove").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Key is the key, position or value involved, if any.
	Key interface{}
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("%s [%s] %v: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the error kind sentinel
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(op string, kind Kind, key interface{}, err error) *Error {
	return &Error{Op: op, Kind: kind, Key: key, Err: err}
}

// wrapTableError maps structural primitive errors to container errors
func wrapTableError(op string, key interface{}, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, table.ErrFrozen) {
		return newError(op, KindFrozen, key, err)
	}
	return newError(op, KindUsage, key, err)
}
