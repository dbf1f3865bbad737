package oneormany

import (
	"iter"
	"slices"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
)

// T holds zero, one or many values of V. It starts in the Single shape, where at most one value
// is stored without allocating a slice, and moves to the Many shape when a second value is
// appended. It never moves back. The zero value is an empty Single container.
//
// Copies of a T share Many storage. Use Clone to duplicate one.
type T[V any] struct {
	many     bool
	one      g.Option[V]
	items    []V
	consumed bool
}

func New[V any]() T[V] {
	return T[V]{}
}

// One returns a Single container holding v.
func One[V any](v V) T[V] {
	return T[V]{one: g.Some(v)}
}

// FromOption returns a Single container that holds the option's value if it has one.
func FromOption[V any](opt g.Option[V]) T[V] {
	return T[V]{one: opt}
}

// FromSlice wraps items as a Many container, whatever its length. The container owns items
// afterwards.
func FromSlice[V any](items []V) T[V] {
	return T[V]{many: true, items: items}
}

// Collect appends each value of seq in turn to a new container. Unlike FromSlice, zero or one
// values leave it in the Single shape.
func Collect[V any](seq iter.Seq[V]) (ret T[V]) {
	ret.Extend(seq)
	return
}

func (me *T[V]) live() {
	if me.consumed {
		panic(ErrConsumed)
	}
}

func (me *T[V]) Shape() Shape {
	me.live()
	if me.many {
		return Many
	}
	return Single
}

// IsOne is true when the container is in the Single shape and holds a value.
func (me *T[V]) IsOne() bool {
	me.live()
	return !me.many && me.one.Ok
}

// IsMany reports the Many shape, even if it currently holds fewer than two values.
func (me *T[V]) IsMany() bool {
	me.live()
	return me.many
}

func (me *T[V]) Len() int {
	me.live()
	if me.many {
		return len(me.items)
	}
	if me.one.Ok {
		return 1
	}
	return 0
}

func (me *T[V]) IsEmpty() bool {
	return me.Len() == 0
}

func (me *T[V]) Append(item V) {
	me.live()
	switch {
	case me.many:
		me.items = append(me.items, item)
	case me.one.Ok:
		panicif.True(me.items != nil)
		me.items = []V{me.one.Value, item}
		me.one = g.None[V]()
		me.many = true
	default:
		me.one = g.Some(item)
	}
}

func (me *T[V]) Extend(seq iter.Seq[V]) {
	me.live()
	for item := range seq {
		me.Append(item)
	}
}

func (me *T[V]) ExtendSlice(items ...V) {
	me.Extend(slices.Values(items))
}

// Values ranges over the stored values without consuming them. Ranging after the container
// was consumed panics, as with any other use.
func (me *T[V]) Values() iter.Seq[V] {
	me.live()
	return func(yield func(V) bool) {
		me.live()
		if !me.many {
			if me.one.Ok {
				yield(me.one.Value)
			}
			return
		}
		for _, item := range me.items {
			if !yield(item) {
				return
			}
		}
	}
}

// IntoIter moves the values into an iterator. The container is unusable afterwards, and any
// further use of it panics with ErrConsumed.
func (me *T[V]) IntoIter() *IntoIter[V] {
	me.live()
	it := &IntoIter[V]{one: me.one, items: me.items}
	*me = T[V]{consumed: true}
	return it
}

// Drain consumes the container immediately and returns its values as a one-shot sequence.
func (me *T[V]) Drain() iter.Seq[V] {
	return me.IntoIter().All()
}

// IntoSlice consumes the container. A Many container hands back its slice as is.
func (me *T[V]) IntoSlice() (ret []V) {
	it := me.IntoIter()
	if it.one.Ok {
		return []V{it.one.Value}
	}
	return it.items
}
