/*
Package observability provides Prometheus instrumentation for schemargs.

Metrics plugs into the parser's lifecycle hooks and counts diagnostics by
stage and code, flag occurrences by kind, and list items appended.

	m, err := observability.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
	    return err
	}
	p, err := schemargs.New(schema, os.Args, schemargs.WithHooks(m.Hooks()))
*/
package observability
