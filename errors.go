package oneormany

import (
	"github.com/anacrolix/oneormany/internal/errorsx"
)

const (
	// Panic value for any use of a T after IntoIter, Drain or IntoSlice.
	ErrConsumed = errorsx.String("oneormany: container used after its values were moved out")
	// Wrapped by decode errors for input that isn't a Single or Many tagged value.
	ErrInvalidEncoding = errorsx.String("oneormany: invalid encoding")
)
