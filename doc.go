/*
Package oneormany provides T, a container for the common case of holding zero or one values that
still accepts any number of them. A single value is stored inline, and a slice is only allocated
once a second value is appended.

	var c oneormany.T[string]
	c.Append("x")     // Single, no allocation
	c.Append("y")     // Many
	for v := range c.Drain() {
		fmt.Println(v)
	}

Consuming a container with IntoIter, Drain or IntoSlice moves its values out. Any later use of the
container panics with ErrConsumed.
*/
package oneormany
