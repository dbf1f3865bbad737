package oneormany

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/anacrolix/torrent/bencode"
	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var containerCmpOpts = cmp.Options{
	cmp.AllowUnexported(T[string]{}, T[int]{}),
	cmpopts.EquateEmpty(),
}

type encodingCase struct {
	name    string
	c       T[string]
	json    string
	bencode string
}

func encodingCases() []encodingCase {
	return []encodingCase{
		{"Empty", New[string](), `{"Single":null}`, "d6:Singlelee"},
		{"One", One("x"), `{"Single":"x"}`, "d6:Singlel1:xee"},
		{"Many", FromSlice([]string{"x", "y"}), `{"Many":["x","y"]}`, "d4:Manyl1:x1:yee"},
		{"ManyOfOne", FromSlice([]string{"p"}), `{"Many":["p"]}`, "d4:Manyl1:pee"},
		{"ManyNil", FromSlice[string](nil), `{"Many":[]}`, "d4:Manylee"},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, tc := range encodingCases() {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.c)
			qt.Assert(t, qt.IsNil(err))
			qt.Check(t, qt.Equals(string(b), tc.json))
			var got T[string]
			qt.Assert(t, qt.IsNil(json.Unmarshal(b, &got)))
			if diff := cmp.Diff(tc.c, got, containerCmpOpts); diff != "" {
				t.Errorf("decoded container differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBencodeRoundTrip(t *testing.T) {
	for _, tc := range encodingCases() {
		t.Run(tc.name, func(t *testing.T) {
			b, err := bencode.Marshal(tc.c)
			qt.Assert(t, qt.IsNil(err))
			qt.Check(t, qt.Equals(string(b), tc.bencode))
			var got T[string]
			qt.Assert(t, qt.IsNil(bencode.Unmarshal(b, &got)))
			if diff := cmp.Diff(tc.c, got, containerCmpOpts); diff != "" {
				t.Errorf("decoded container differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeInts(t *testing.T) {
	c := Collect(slices.Values([]int{0, 1, 2}))
	b, err := bencode.Marshal(c)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(string(b), "d4:Manyli0ei1ei2eee"))
	b, err = json.Marshal(c)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(string(b), `{"Many":[0,1,2]}`))
}

type holder struct {
	Name  string
	Items T[int]
}

func TestEncodeField(t *testing.T) {
	h := holder{Name: "a", Items: One(1)}
	b, err := json.Marshal(h)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(string(b), `{"Name":"a","Items":{"Single":1}}`))
	var got holder
	qt.Assert(t, qt.IsNil(json.Unmarshal(b, &got)))
	qt.Check(t, qt.CmpEquals(h, got, containerCmpOpts))

	b, err = bencode.Marshal(h)
	qt.Assert(t, qt.IsNil(err))
	got = holder{}
	qt.Assert(t, qt.IsNil(bencode.Unmarshal(b, &got)))
	qt.Check(t, qt.CmpEquals(h, got, containerCmpOpts))
}

func TestJSONNullLeavesContainer(t *testing.T) {
	c := One(1)
	qt.Assert(t, qt.IsNil(json.Unmarshal([]byte("null"), &c)))
	qt.Check(t, qt.IsTrue(c.IsOne()))
}

func TestDecodeReplacesConsumed(t *testing.T) {
	c := FromSlice([]int{1, 2})
	c.IntoIter()
	qt.Assert(t, qt.IsNil(json.Unmarshal([]byte(`{"Single":5}`), &c)))
	qt.Check(t, qt.DeepEquals(c.IntoSlice(), []int{5}))
}

func TestDecodeInvalid(t *testing.T) {
	for _, s := range []string{
		`{}`,
		`{"Other":1}`,
		`{"Single":1,"Many":[1]}`,
		`{"single":1}`,
		`{"MANY":[1,2]}`,
		`{"Single":1,"Junk":2}`,
	} {
		var c T[int]
		qt.Check(t, qt.ErrorIs(json.Unmarshal([]byte(s), &c), ErrInvalidEncoding), qt.Commentf("%s", s))
	}
	for _, s := range []string{
		"de",
		"d4:Manyle6:Singlelee",
		"d6:Singleli1ei2eee",
		"d6:singleli1eee",
		"d4:junki0e6:Singleli1eee",
		"d6:Singleli1ee4:zzzzi0ee",
	} {
		var c T[int]
		qt.Check(t, qt.ErrorIs(c.UnmarshalBencode([]byte(s)), ErrInvalidEncoding), qt.Commentf("%s", s))
		qt.Check(t, qt.IsTrue(c.IsEmpty()), qt.Commentf("%s", s))
	}
	var c T[int]
	qt.Check(t, qt.IsNotNil(json.Unmarshal([]byte(`{"Many":"x"}`), &c)))
	qt.Check(t, qt.IsNotNil(json.Unmarshal([]byte(`[1]`), &c)))
	qt.Check(t, qt.IsNotNil(c.UnmarshalBencode([]byte("d4:Manyi1ee"))))
}

func TestEncodeConsumed(t *testing.T) {
	c := One(1)
	c.IntoIter()
	_, err := json.Marshal(c)
	qt.Check(t, qt.ErrorIs(err, ErrConsumed))
	_, err = c.MarshalBencode()
	qt.Check(t, qt.ErrorIs(err, ErrConsumed))
}
