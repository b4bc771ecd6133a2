/*
Package diag carries the advisory messages produced while compiling a schema
and scanning an argument vector.

A Diagnostic never stops processing: the offending schema token, flag or
value is skipped (or the slot keeps its previous payload) and the caller
receives a best-effort result. Diagnostics flow through a Reporter, which
may log them, count them, collect them, or any combination via Multi.

	var c diag.Collector
	slots := schema.Compile([]string{"i+", "i#"}, &c)
	for _, d := range c.Diagnostics() {
	    fmt.Println(d) // schema: duplicate flag "i" ...
	}
*/
package diag
