package schema

import (
	"errors"
	"fmt"

	"github.com/aretw0/schemargs/pkg/diag"
)

// ErrInvalidToken is returned by ParseToken for tokens outside the grammar.
var ErrInvalidToken = errors.New("invalid schema token")

// IsIdentifier reports whether c can name a flag (an ASCII letter).
func IsIdentifier(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ParseToken splits a schema token into its flag identifier and kind.
// Accepted forms are a bare letter (bool) or a letter, one of the markers
// ' # +, and an optional trailing '.' for the list variant.
func ParseToken(token string) (byte, Kind, error) {
	if token == "" {
		return 0, 0, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}
	id := token[0]
	if !IsIdentifier(id) {
		return 0, 0, fmt.Errorf("%w: %q does not start with a letter", ErrInvalidToken, token)
	}
	if len(token) == 1 {
		return id, KindBool, nil
	}
	if len(token) > 3 {
		return 0, 0, fmt.Errorf("%w: %q is too long", ErrInvalidToken, token)
	}

	list := false
	if len(token) == 3 {
		if token[2] != MarkerList {
			return 0, 0, fmt.Errorf("%w: %q has trailing characters", ErrInvalidToken, token)
		}
		list = true
	}

	kind, ok := kindOf(token[1], list)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q has unknown type marker %q", ErrInvalidToken, token, token[1])
	}
	return id, kind, nil
}

func kindOf(marker byte, list bool) (Kind, bool) {
	switch marker {
	case MarkerString:
		if list {
			return KindStringList, true
		}
		return KindString, true
	case MarkerFloat:
		if list {
			return KindFloatList, true
		}
		return KindFloat, true
	case MarkerInt:
		if list {
			return KindIntList, true
		}
		return KindInt, true
	default:
		return 0, false
	}
}

// Compile builds the slot table for a schema. It never fails: empty,
// malformed and duplicate tokens are reported to r and skipped, the first
// declaration of an identifier wins.
func Compile(tokens []string, r diag.Reporter) Slots {
	r = diag.OrDiscard(r)
	slots := make(Slots, len(tokens))

	for _, token := range tokens {
		if token == "" {
			r.Report(diag.Diagnostic{
				Stage:   diag.StageSchema,
				Code:    diag.CodeEmptySchemaToken,
				Message: "empty schema token",
			})
			continue
		}

		id, kind, err := ParseToken(token)
		if err != nil {
			r.Report(diag.Diagnostic{
				Stage:   diag.StageSchema,
				Code:    diag.CodeInvalidSchemaToken,
				Input:   token,
				Message: "invalid schema token",
			})
			continue
		}

		if existing, ok := slots[id]; ok {
			r.Report(diag.Diagnostic{
				Stage:   diag.StageSchema,
				Code:    diag.CodeDuplicateFlag,
				Flag:    string(id),
				Input:   token,
				Message: fmt.Sprintf("flag already declared as %s", existing.Kind()),
			})
			continue
		}

		slots[id] = kind.Zero()
	}

	return slots
}
