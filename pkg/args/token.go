package args

import (
	"github.com/aretw0/schemargs/pkg/diag"
	"github.com/aretw0/schemargs/pkg/schema"
)

// IsFlag reports whether token is a well-formed flag such as "-x".
func IsFlag(token string) bool {
	return len(token) == 2 && token[0] == '-' && schema.IsIdentifier(token[1])
}

// Occurrence is one flag found on the command line, with its value if any.
type Occurrence struct {
	Flag   string // Raw flag token, e.g. "-i"
	Value  string
	Valued bool // False for a boolean occurrence
}

// ID returns the flag identifier, or 0 when Flag is not a well-formed flag.
func (o Occurrence) ID() byte {
	if !IsFlag(o.Flag) {
		return 0
	}
	return o.Flag[1]
}

// Tokenize pairs flags with their values. argv[0] is the program name and
// is skipped. Values with no preceding flag are reported and dropped.
func (p *Processor) Tokenize(argv []string) []Occurrence {
	r := p.reporter()
	var out []Occurrence

	for i := 1; i < len(argv); i++ {
		token := argv[i]

		if !IsFlag(token) {
			r.Report(diag.Diagnostic{
				Stage:   diag.StageArgs,
				Code:    diag.CodeOrphanValue,
				Input:   token,
				Message: "value with no associated flag",
			})
			continue
		}

		if i+1 < len(argv) && !IsFlag(argv[i+1]) {
			out = append(out, Occurrence{Flag: token, Value: argv[i+1], Valued: true})
			i++
			continue
		}

		out = append(out, Occurrence{Flag: token})
	}

	return out
}

// Tokenize is a convenience wrapper around Processor.Tokenize.
func Tokenize(argv []string, r diag.Reporter) []Occurrence {
	p := &Processor{Reporter: r}
	return p.Tokenize(argv)
}
