package resolve

import "errors"

// The structural mismatch taxonomy. Absence of a key or index is not an
// error here; Read and Mut report it as a nil result.
var (
	ErrNoIndexInTable       = errors.New("cannot access table with index")
	ErrNoIdentifierInArray  = errors.New("cannot access array with identifier")
	ErrQueryingValueAsTable = errors.New("cannot descend into value with identifier")
	ErrQueryingValueAsArray = errors.New("cannot descend into value with index")
	ErrIndexOutOfBounds     = errors.New("array index out of bounds")
)
