package schema

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aretw0/schemargs/pkg/diag"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		token    string
		wantID   byte
		wantKind Kind
		wantErr  bool
	}{
		{"A", 'A', KindBool, false},
		{"z", 'z', KindBool, false},
		{"c'", 'c', KindString, false},
		{"x#", 'x', KindFloat, false},
		{"i+", 'i', KindInt, false},
		{"b'.", 'b', KindStringList, false},
		{"l#.", 'l', KindFloatList, false},
		{"n+.", 'n', KindIntList, false},
		{"", 0, 0, true},
		{"1", 0, 0, true},
		{"-", 0, 0, true},
		{"ab", 0, 0, true},
		{"a.", 0, 0, true},
		{"a+x", 0, 0, true},
		{"a+..", 0, 0, true},
		{"a+.x", 0, 0, true},
		{"+a", 0, 0, true},
		{"é+", 0, 0, true},
	}

	for _, tt := range tests {
		id, kind, err := ParseToken(tt.token)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseToken(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ParseToken(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
			continue
		}
		if id != tt.wantID || kind != tt.wantKind {
			t.Errorf("ParseToken(%q) = (%q, %s), want (%q, %s)", tt.token, id, kind, tt.wantID, tt.wantKind)
		}
	}
}

func TestCompile_ZeroValues(t *testing.T) {
	var c diag.Collector
	slots := Compile([]string{"l#.", "b'.", "A", "i+", "I+", "c'", "x#", "n+."}, &c)

	want := Slots{
		'l': FloatList{},
		'b': StringList{},
		'A': Bool(false),
		'i': Int(0),
		'I': Int(0),
		'c': String(""),
		'x': Float(0),
		'n': IntList{},
	}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("Compile() = %#v, want %#v", slots, want)
	}
	if c.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", c.Diagnostics())
	}
}

func TestCompile_InvalidTokensSkipped(t *testing.T) {
	var c diag.Collector
	slots := Compile([]string{"", "i+", "9", "q+x", "r?", "s'"}, &c)

	if len(slots) != 2 {
		t.Fatalf("Compile() produced %d slots, want 2: %v", len(slots), slots)
	}
	if slots['i'] != Int(0) || slots['s'] != String("") {
		t.Errorf("valid tokens not applied: %v", slots)
	}

	want := []diag.Code{
		diag.CodeEmptySchemaToken,
		diag.CodeInvalidSchemaToken,
		diag.CodeInvalidSchemaToken,
		diag.CodeInvalidSchemaToken,
	}
	if got := c.Codes(); !reflect.DeepEqual(got, want) {
		t.Errorf("diagnostic codes = %v, want %v", got, want)
	}
	for _, d := range c.Diagnostics() {
		if d.Stage != diag.StageSchema {
			t.Errorf("diagnostic stage = %q, want %q", d.Stage, diag.StageSchema)
		}
	}
}

func TestCompile_DuplicateKeepsFirst(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   Value
	}{
		{"typed then typed", []string{"i+", "i'."}, Int(0)},
		{"typed then bool", []string{"i#", "i"}, Float(0)},
		{"bool then typed", []string{"i", "i+"}, Bool(false)},
		{"bool then bool", []string{"i", "i"}, Bool(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c diag.Collector
			slots := Compile(tt.tokens, &c)

			if !reflect.DeepEqual(slots['i'], tt.want) {
				t.Errorf("slot = %#v, want %#v", slots['i'], tt.want)
			}
			if c.Len() != 1 || c.Diagnostics()[0].Code != diag.CodeDuplicateFlag {
				t.Fatalf("diagnostics = %v, want one duplicate_flag", c.Diagnostics())
			}
			if c.Diagnostics()[0].Flag != "i" {
				t.Errorf("diagnostic flag = %q, want %q", c.Diagnostics()[0].Flag, "i")
			}
		})
	}
}

func TestCompile_NilReporter(t *testing.T) {
	slots := Compile([]string{"", "A"}, nil)
	if slots['A'] != Bool(false) {
		t.Errorf("slots = %v", slots)
	}
}

func TestCompile_RoundTripTokens(t *testing.T) {
	tokens := []string{"A", "b'.", "c'", "i+", "l#.", "n+.", "x#"}
	slots := Compile(tokens, nil)
	if got := slots.Tokens(); !reflect.DeepEqual(got, tokens) {
		t.Errorf("Tokens() = %v, want %v", got, tokens)
	}
}
