package oneormany

import (
	"iter"

	g "github.com/anacrolix/generics"
)

// IntoIter owns the values moved out of a T by T.IntoIter, and hands them out once each in
// stored order.
type IntoIter[V any] struct {
	one   g.Option[V]
	items []V
}

func (me *IntoIter[V]) Next() (v V, ok bool) {
	if me.one.Ok {
		v = me.one.Value
		me.one = g.None[V]()
		return v, true
	}
	if len(me.items) == 0 {
		me.items = nil
		return
	}
	v = me.items[0]
	var zero V
	me.items[0] = zero
	me.items = me.items[1:]
	return v, true
}

// Len returns how many values remain.
func (me *IntoIter[V]) Len() int {
	if me.one.Ok {
		return 1
	}
	return len(me.items)
}

// All ranges over the remaining values. Ranging again, or after breaking out early, resumes
// where the last range stopped rather than starting over.
func (me *IntoIter[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := me.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
