package schemargs

import (
	"log/slog"

	"github.com/aretw0/schemargs/internal/logging"
	"github.com/aretw0/schemargs/pkg/args"
	"github.com/aretw0/schemargs/pkg/diag"
	"github.com/aretw0/schemargs/pkg/schema"
)

// Parser holds the typed result of parsing an argument vector against a
// schema. It is fully populated by New and read-only afterwards.
type Parser struct {
	slots       schema.Slots
	diagnostics []diag.Diagnostic
}

// Hooks defines callbacks for parser observability.
type Hooks struct {
	OnDiagnostic func(diag.Diagnostic)
	OnApply      func(args.ApplyEvent)
}

type settings struct {
	logger    *slog.Logger
	reporters []diag.Reporter
	hooks     Hooks
	strict    bool
}

// Option defines a functional option for configuring construction.
type Option func(*settings)

// WithLogger sets the logger diagnostics are written to (at WARN).
// Passing nil silences diagnostic logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger == nil {
			logger = logging.NewNop()
		}
		s.logger = logger
	}
}

// WithReporter adds a sink that receives every diagnostic.
func WithReporter(r diag.Reporter) Option {
	return func(s *settings) {
		s.reporters = append(s.reporters, r)
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// WithStrict makes New return the collected diagnostics as a
// *diag.AggregateError. The parser is still returned and fully usable.
func WithStrict() Option {
	return func(s *settings) {
		s.strict = true
	}
}

// New compiles schemaTokens and parses argv against them. argv[0] is the
// program name and is ignored.
//
// Malformed schema tokens and arguments never fail construction; they are
// reported as diagnostics (logged to stderr by default, see WithLogger) and
// skipped. A non-nil error without a parser signals an internal contract
// breach. In strict mode the error may instead be a *diag.AggregateError
// returned alongside a usable parser.
func New(schemaTokens []string, argv []string, opts ...Option) (*Parser, error) {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.New(nil, slog.LevelWarn)
	}

	var collected diag.Collector
	sinks := []diag.Reporter{&collected, logging.Reporter(s.logger)}
	sinks = append(sinks, s.reporters...)
	if s.hooks.OnDiagnostic != nil {
		sinks = append(sinks, diag.ReporterFunc(s.hooks.OnDiagnostic))
	}
	reporter := diag.Multi(sinks...)

	// Phase 1: typed zero-valued slots.
	slots := schema.Compile(schemaTokens, reporter)

	// Phase 2: mutate slots from the argument vector.
	proc := &args.Processor{Reporter: reporter, OnApply: s.hooks.OnApply}
	if err := proc.Process(slots, argv); err != nil {
		s.logger.Error("argument processing aborted", "error", err)
		return nil, err
	}

	p := &Parser{
		slots:       slots,
		diagnostics: collected.Diagnostics(),
	}

	if s.strict {
		if err := diag.Aggregate(p.diagnostics); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Diagnostics returns the advisory messages produced during construction.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	out := make([]diag.Diagnostic, len(p.diagnostics))
	copy(out, p.diagnostics)
	return out
}

// Slots returns a deep copy of the parsed slot table.
func (p *Parser) Slots() schema.Slots {
	return p.slots.Clone()
}

// Kind returns the declared kind of flag id.
func (p *Parser) Kind(id byte) (schema.Kind, bool) {
	return p.slots.Kind(id)
}

// Clone returns an independent deep copy of the parser.
func (p *Parser) Clone() *Parser {
	return &Parser{
		slots:       p.slots.Clone(),
		diagnostics: p.Diagnostics(),
	}
}
