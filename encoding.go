package oneormany

import (
	"bytes"
	"encoding/json"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/torrent/bencode"

	"github.com/anacrolix/oneormany/internal/errorsx"
)

// Encodings are externally tagged, with a single key naming the Shape. JSON stores a Single
// value directly, or null when empty. bencode has no null, so it stores a Single as a list of
// zero or one values.

// Returns the shape named by the only key of a decoded value. Keys must match exactly.
func onlyTag[R any](tagged map[string]R) (shape Shape, raw R, err error) {
	if len(tagged) != 1 {
		err = errorsx.Wrapf(ErrInvalidEncoding, "expected one of %q or %q, got %d keys", Single, Many, len(tagged))
		return
	}
	for key, value := range tagged {
		switch key {
		case Single.String():
			return Single, value, nil
		case Many.String():
			return Many, value, nil
		}
		err = errorsx.Wrapf(ErrInvalidEncoding, "unknown key %q", key)
	}
	return
}

func (me *T[V]) encodable() error {
	if me.consumed {
		return errorsx.WithStack(ErrConsumed)
	}
	return nil
}

// Many storage to encode. A nil slice is sent as an empty list.
func (me *T[V]) manyItems() []V {
	if me.items == nil {
		return []V{}
	}
	return me.items
}

func (me T[V]) MarshalJSON() ([]byte, error) {
	if err := me.encodable(); err != nil {
		return nil, err
	}
	if me.many {
		return json.Marshal(map[string][]V{Many.String(): me.manyItems()})
	}
	var one *V
	if me.one.Ok {
		one = &me.one.Value
	}
	return json.Marshal(map[string]*V{Single.String(): one})
}

func (me *T[V]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(b, &tagged); err != nil {
		return errorsx.Wrap(err, "decoding tagged value")
	}
	shape, raw, err := onlyTag(tagged)
	if err != nil {
		return err
	}
	if shape == Many {
		var items []V
		if err := json.Unmarshal(raw, &items); err != nil {
			return errorsx.Wrap(err, "decoding Many values")
		}
		*me = FromSlice(items)
		return nil
	}
	if bytes.Equal(raw, []byte("null")) {
		*me = New[V]()
		return nil
	}
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return errorsx.Wrap(err, "decoding Single value")
	}
	*me = One(v)
	return nil
}

func (me T[V]) MarshalBencode() ([]byte, error) {
	if err := me.encodable(); err != nil {
		return nil, err
	}
	if me.many {
		return bencode.Marshal(map[string][]V{Many.String(): me.manyItems()})
	}
	one := []V{}
	if me.one.Ok {
		one = append(one, me.one.Value)
	}
	return bencode.Marshal(map[string][]V{Single.String(): one})
}

func (me *T[V]) UnmarshalBencode(b []byte) error {
	var tagged map[string]bencode.Bytes
	if err := bencode.Unmarshal(b, &tagged); err != nil {
		return errorsx.Wrap(err, "decoding tagged value")
	}
	shape, raw, err := onlyTag(tagged)
	if err != nil {
		return err
	}
	var items []V
	if err := bencode.Unmarshal(raw, &items); err != nil {
		return errorsx.Wrapf(err, "decoding %v values", shape)
	}
	if shape == Many {
		*me = FromSlice(items)
		return nil
	}
	if len(items) > 1 {
		return errorsx.Wrapf(ErrInvalidEncoding, "Single holds %d values", len(items))
	}
	var opt g.Option[V]
	if len(items) == 1 {
		opt.Set(items[0])
	}
	*me = FromOption(opt)
	return nil
}

var (
	_ json.Marshaler      = T[int]{}
	_ json.Unmarshaler    = (*T[int])(nil)
	_ bencode.Marshaler   = T[int]{}
	_ bencode.Unmarshaler = (*T[int])(nil)
)
