package schema

import (
	"fmt"
	"slices"
	"sort"
)

// Kind is the declared type of a flag.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindIntList
	KindFloatList
	KindStringList
)

// Schema token markers.
const (
	MarkerString byte = '\''
	MarkerFloat  byte = '#'
	MarkerInt    byte = '+'
	MarkerList   byte = '.'
)

// String returns the human-readable name of the kind (e.g., "int", "[float]").
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindIntList:
		return "[int]"
	case KindFloatList:
		return "[float]"
	case KindStringList:
		return "[string]"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the seven known kinds.
func (k Kind) Valid() bool {
	return k >= KindBool && k <= KindStringList
}

// IsList reports whether the kind holds a growable sequence.
func (k Kind) IsList() bool {
	return k == KindIntList || k == KindFloatList || k == KindStringList
}

// Elem returns the scalar kind stored in a list kind; scalars return themselves.
func (k Kind) Elem() Kind {
	switch k {
	case KindIntList:
		return KindInt
	case KindFloatList:
		return KindFloat
	case KindStringList:
		return KindString
	default:
		return k
	}
}

// Token renders the schema token that declares flag id with this kind.
func (k Kind) Token(id byte) string {
	var marker byte
	switch k.Elem() {
	case KindBool:
		return string(id)
	case KindInt:
		marker = MarkerInt
	case KindFloat:
		marker = MarkerFloat
	case KindString:
		marker = MarkerString
	default:
		return ""
	}
	if k.IsList() {
		return string([]byte{id, marker, MarkerList})
	}
	return string([]byte{id, marker})
}

// Zero returns the value a freshly compiled slot of this kind holds.
func (k Kind) Zero() Value {
	switch k {
	case KindBool:
		return Bool(false)
	case KindInt:
		return Int(0)
	case KindFloat:
		return Float(0)
	case KindString:
		return String("")
	case KindIntList:
		return IntList{}
	case KindFloatList:
		return FloatList{}
	case KindStringList:
		return StringList{}
	default:
		return nil
	}
}

// Value is the payload of a slot. The set of implementations is closed to
// the seven types declared in this package.
type Value interface {
	Kind() Kind
	sealed()
}

type (
	Bool       bool
	Int        int64
	Float      float64
	String     string
	IntList    []int64
	FloatList  []float64
	StringList []string
)

func (Bool) Kind() Kind       { return KindBool }
func (Int) Kind() Kind        { return KindInt }
func (Float) Kind() Kind      { return KindFloat }
func (String) Kind() Kind     { return KindString }
func (IntList) Kind() Kind    { return KindIntList }
func (FloatList) Kind() Kind  { return KindFloatList }
func (StringList) Kind() Kind { return KindStringList }

func (Bool) sealed()       {}
func (Int) sealed()        {}
func (Float) sealed()      {}
func (String) sealed()     {}
func (IntList) sealed()    {}
func (FloatList) sealed()  {}
func (StringList) sealed() {}

// Slots maps a flag identifier to its typed payload.
type Slots map[byte]Value

// Kind returns the declared kind of flag id.
func (s Slots) Kind(id byte) (Kind, bool) {
	v, ok := s[id]
	if !ok || v == nil {
		return 0, false
	}
	return v.Kind(), true
}

// IDs returns the declared flag identifiers in ascending byte order.
func (s Slots) IDs() []byte {
	ids := make([]byte, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Tokens renders a canonical schema that compiles back to the same kinds.
func (s Slots) Tokens() []string {
	ids := s.IDs()
	tokens := make([]string, 0, len(ids))
	for _, id := range ids {
		tokens = append(tokens, s[id].Kind().Token(id))
	}
	return tokens
}

// Clone returns a deep copy; list payloads do not share backing arrays.
func (s Slots) Clone() Slots {
	if s == nil {
		return nil
	}
	out := make(Slots, len(s))
	for id, v := range s {
		switch tv := v.(type) {
		case IntList:
			out[id] = IntList(slices.Clone([]int64(tv)))
		case FloatList:
			out[id] = FloatList(slices.Clone([]float64(tv)))
		case StringList:
			out[id] = StringList(slices.Clone([]string(tv)))
		default:
			out[id] = v
		}
	}
	return out
}
