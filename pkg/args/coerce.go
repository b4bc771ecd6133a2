package args

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/schemargs/pkg/diag"
	"github.com/aretw0/schemargs/pkg/schema"
)

// List items are extracted, not split: anything between matches is ignored.
// Float items must carry a decimal point.
var (
	intItem   = regexp.MustCompile(`-?[0-9]+`)
	floatItem = regexp.MustCompile(`-?[0-9]+\.[0-9]+`)
)

// Scalars use the longest numeric prefix; trailing text is ignored.
var (
	intPrefix   = regexp.MustCompile(`^\s*([+-]?[0-9]+)`)
	floatPrefix = regexp.MustCompile(`(?i)^\s*([+-]?(?:(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:e[+-]?[0-9]+)?|infinity|inf|nan))`)
)

// numericPrefix returns the number at the start of s, if any.
func numericPrefix(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Apply coerces occ into its slot. It returns false when the flag is not
// declared in slots. Type mismatches and unparseable values are reported as
// diagnostics and leave the slot as it was; list items parsed before a bad
// item stay appended.
func (p *Processor) Apply(slots schema.Slots, occ Occurrence) (bool, error) {
	if !IsFlag(occ.Flag) {
		return false, fmt.Errorf("%w: %q", ErrMalformedFlag, occ.Flag)
	}

	id := occ.Flag[1]
	current, ok := slots[id]
	if !ok {
		return false, nil
	}
	if current == nil || !current.Kind().Valid() {
		return true, fmt.Errorf("%w: flag %q", ErrCorruptSlot, string(id))
	}

	r := p.reporter()
	report := func(code diag.Code, msg string) {
		r.Report(diag.Diagnostic{
			Stage:   diag.StageArgs,
			Code:    code,
			Flag:    string(id),
			Input:   occ.Value,
			Message: msg,
		})
	}

	if !occ.Valued {
		if current.Kind() != schema.KindBool {
			report(diag.CodeWrongType, fmt.Sprintf("flag is declared as %s and needs a value", current.Kind()))
			return true, nil
		}
		slots[id] = schema.Bool(true)
		p.emit(ApplyEvent{ID: id, Kind: schema.KindBool})
		return true, nil
	}

	event := ApplyEvent{ID: id, Kind: current.Kind(), Value: occ.Value, Valued: true}

	switch v := current.(type) {
	case schema.Bool:
		slots[id] = schema.Bool(true)
		report(diag.CodeUnexpectedValue, "boolean flag does not take a value; value dropped")

	case schema.Int:
		num, ok := numericPrefix(intPrefix, occ.Value)
		if !ok {
			report(diag.CodeUnparseableValue, "value is not a valid int")
			return true, nil
		}
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			report(diag.CodeUnparseableValue, "value is out of int range")
			return true, nil
		}
		slots[id] = schema.Int(n)

	case schema.Float:
		num, ok := numericPrefix(floatPrefix, occ.Value)
		if !ok {
			report(diag.CodeUnparseableValue, "value is not a valid float")
			return true, nil
		}
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			report(diag.CodeUnparseableValue, "value is not a representable float")
			return true, nil
		}
		slots[id] = schema.Float(f)

	case schema.String:
		slots[id] = schema.String(occ.Value)

	case schema.StringList:
		items := strings.FieldsFunc(occ.Value, func(c rune) bool { return c == ',' })
		if len(items) == 0 {
			report(diag.CodeEmptyList, "no list items found")
			return true, nil
		}
		slots[id] = append(v, items...)
		event.Appended = len(items)

	case schema.IntList:
		for _, m := range intItem.FindAllString(occ.Value, -1) {
			n, err := strconv.ParseInt(m, 10, 64)
			if err != nil {
				report(diag.CodeListItemDropped, fmt.Sprintf("list item %q is not a valid int", m))
				continue
			}
			v = append(v, n)
			event.Appended++
		}
		slots[id] = v
		if event.Appended == 0 {
			report(diag.CodeEmptyList, "no list items found")
			return true, nil
		}

	case schema.FloatList:
		for _, m := range floatItem.FindAllString(occ.Value, -1) {
			f, err := strconv.ParseFloat(m, 64)
			if err != nil {
				report(diag.CodeListItemDropped, fmt.Sprintf("list item %q is not a valid float", m))
				continue
			}
			v = append(v, f)
			event.Appended++
		}
		slots[id] = v
		if event.Appended == 0 {
			report(diag.CodeEmptyList, "no list items found")
			return true, nil
		}

	default:
		return true, fmt.Errorf("%w: flag %q holds %T", ErrCorruptSlot, string(id), current)
	}

	p.emit(event)
	return true, nil
}
