package ggbench

import "errors"

// Configuration errors. They are logged at the boundary and returned so
// callers can inspect them; none of them is fatal.
var (
	// ErrInvalidScreen is returned for non-positive dimensions or a
	// density below 1.
	ErrInvalidScreen = errors.New("ggbench: invalid screen size or density")

	// ErrInvalidParam is returned when a tunable is out of range.
	ErrInvalidParam = errors.New("ggbench: invalid parameter")

	// ErrEmptyName is returned when a resource is registered without a name.
	ErrEmptyName = errors.New("ggbench: empty resource name")

	// ErrNilResource is returned when a nil resource is registered.
	ErrNilResource = errors.New("ggbench: nil resource")

	// ErrDuplicateName is returned when a resource name is already taken.
	ErrDuplicateName = errors.New("ggbench: duplicate resource name")
)

// BenchNotFoundError indicates a bench name or index is not registered.
type BenchNotFoundError struct {
	Name string
}

func (e *BenchNotFoundError) Error() string {
	return "ggbench: bench not found: " + e.Name
}
