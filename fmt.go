package oneormany

import (
	"fmt"
	"log/slog"
	"slices"
)

func (me T[V]) String() string {
	switch {
	case me.consumed:
		return "Consumed"
	case me.many:
		return fmt.Sprintf("Many(%v)", me.items)
	case me.one.Ok:
		return fmt.Sprintf("Single(Some(%v))", me.one.Value)
	default:
		return "Single(None)"
	}
}

func (me T[V]) LogValue() slog.Value {
	if me.consumed {
		return slog.GroupValue(slog.Bool("consumed", true))
	}
	return slog.GroupValue(
		slog.String("shape", me.Shape().String()),
		slog.Int("len", me.Len()),
		slog.Any("items", slices.Collect(me.Values())),
	)
}

var (
	_ fmt.Stringer   = T[int]{}
	_ slog.LogValuer = T[int]{}
)

// Equal reports whether a and b have the same shape and the same values in the same order.
func Equal[V comparable](a, b *T[V]) bool {
	return EqualFunc(a, b, func(l, r V) bool { return l == r })
}

func EqualFunc[V any](a, b *T[V], eq func(V, V) bool) bool {
	if a.Shape() != b.Shape() || a.Len() != b.Len() {
		return false
	}
	if a.many {
		return slices.EqualFunc(a.items, b.items, eq)
	}
	return !a.one.Ok || eq(a.one.Value, b.one.Value)
}

// Clone returns a container with the same shape and values that shares no storage with me.
func (me *T[V]) Clone() T[V] {
	return me.CloneFunc(func(v V) V { return v })
}

// CloneFunc is Clone, with each value duplicated by clone.
func (me *T[V]) CloneFunc(clone func(V) V) (ret T[V]) {
	me.live()
	if me.many {
		ret.many = true
		if me.items != nil {
			ret.items = make([]V, 0, len(me.items))
			for _, item := range me.items {
				ret.items = append(ret.items, clone(item))
			}
		}
		return
	}
	if me.one.Ok {
		ret.one.Set(clone(me.one.Value))
	}
	return
}
