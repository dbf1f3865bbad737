package oneormany

import "fmt"

// Shape is the storage mode of a T.
type Shape int

const (
	// Zero or one value, stored inline.
	Single Shape = iota
	// Any number of values in a slice.
	Many
)

func (me Shape) String() string {
	switch me {
	case Single:
		return "Single"
	case Many:
		return "Many"
	default:
		return fmt.Sprintf("unknown %d", me)
	}
}
