/*
Package schemargs parses command-line arguments against a compact,
declarative schema of single-letter flags.

A schema is a list of tokens. Each token names one flag and its value kind:

	A     boolean flag (-A), false unless present
	c'    string
	n+    integer
	r#    floating point
	l#.   list of floats (a trailing '.' turns any kind into a list)

# Usage

	p, err := schemargs.New([]string{"l#.", "A", "i+", "c'"}, os.Args)
	if err != nil {
		log.Fatal(err)
	}

	verbose := p.MustBool('A')
	count, err := p.Int('i')

Parsing is forgiving: malformed schema tokens, unknown flags and values
that do not fit the declared kind are reported as diagnostics and skipped.
Diagnostics are logged through log/slog (see WithLogger), collected on the
parser (see Parser.Diagnostics) and can be routed to any diag.Reporter.
WithStrict turns them into an error.

Scalar flags keep the last value given. List flags accumulate across
repeated occurrences, so "-l 1.5,2.5 -l 3.0" yields three elements.

The lower-level building blocks live in pkg/schema (compilation of the
schema into typed slots) and pkg/args (tokenization and coercion).
*/
package schemargs
