package args

import (
	"errors"
	"fmt"

	"github.com/aretw0/schemargs/pkg/diag"
	"github.com/aretw0/schemargs/pkg/schema"
)

var (
	// ErrMalformedFlag means Apply was handed a token that is not a flag.
	ErrMalformedFlag = errors.New("occurrence does not carry a valid flag")
	// ErrCorruptSlot means a slot holds none of the known value kinds.
	ErrCorruptSlot = errors.New("slot holds an unknown value kind")
)

// ApplyEvent describes one occurrence that changed a slot.
type ApplyEvent struct {
	ID       byte
	Kind     schema.Kind
	Value    string
	Valued   bool
	Appended int // List items appended; zero for scalars
}

// Processor scans argument vectors. The zero value discards diagnostics.
type Processor struct {
	Reporter diag.Reporter
	OnApply  func(ApplyEvent)
}

func (p *Processor) reporter() diag.Reporter {
	return diag.OrDiscard(p.Reporter)
}

func (p *Processor) emit(e ApplyEvent) {
	if p.OnApply != nil {
		p.OnApply(e)
	}
}

// Process tokenizes argv and applies every occurrence to slots in order.
// Unknown flags are reported and skipped.
func (p *Processor) Process(slots schema.Slots, argv []string) error {
	r := p.reporter()

	for _, occ := range p.Tokenize(argv) {
		known, err := p.Apply(slots, occ)
		if err != nil {
			return fmt.Errorf("apply %s: %w", occ.Flag, err)
		}
		if known {
			continue
		}

		d := diag.Diagnostic{
			Stage:   diag.StageArgs,
			Code:    diag.CodeUnknownFlag,
			Flag:    string(occ.ID()),
			Message: "unknown boolean flag",
		}
		if occ.Valued {
			d.Input = occ.Value
			d.Message = "unknown flag"
		}
		r.Report(d)
	}

	return nil
}

// Process is a convenience wrapper around Processor.Process.
func Process(slots schema.Slots, argv []string, r diag.Reporter) error {
	p := &Processor{Reporter: r}
	return p.Process(slots, argv)
}

// Apply is a convenience wrapper around Processor.Apply.
func Apply(slots schema.Slots, occ Occurrence, r diag.Reporter) (bool, error) {
	p := &Processor{Reporter: r}
	return p.Apply(slots, occ)
}
