// Package schema compiles a compact flag schema into typed, zero-valued slots.
//
// A schema is an ordered list of tokens. Each token names one flag with a
// single ASCII letter and declares the kind of value it carries:
//
//	A     bool (no value; present or not)
//	c'    string
//	x#    float
//	i+    integer
//	b'.   list of strings
//	l#.   list of floats
//	n+.   list of integers
//
// Compile turns the tokens into Slots, a map from flag identifier to a Value.
// Value is a closed set of seven payload types; the kind assigned at compile
// time never changes, only the payload does:
//
//	slots := schema.Compile([]string{"l#.", "A", "i+"}, diag.Discard)
//	slots['i'] // schema.Int(0)
//	slots['l'] // schema.FloatList{}
//
// Malformed or duplicate tokens never fail compilation. They are reported to
// the supplied diag.Reporter and skipped.
package schema
