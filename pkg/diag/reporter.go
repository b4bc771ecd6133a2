package diag

// Reporter receives diagnostics as they are produced.
type Reporter interface {
	Report(Diagnostic)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Collector keeps diagnostics in the order they were reported.
// The zero value is ready to use.
type Collector struct {
	items []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.items = append(c.items, d)
}

// Diagnostics returns a copy of the collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports how many diagnostics were collected.
func (c *Collector) Len() int { return len(c.items) }

// Codes returns the code of each collected diagnostic, in order, or nil.
func (c *Collector) Codes() []Code {
	var codes []Code
	for _, d := range c.items {
		codes = append(codes, d.Code)
	}
	return codes
}

// Multi fans a diagnostic out to every non-nil reporter.
func Multi(reporters ...Reporter) Reporter {
	active := make([]Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			active = append(active, r)
		}
	}
	return ReporterFunc(func(d Diagnostic) {
		for _, r := range active {
			r.Report(d)
		}
	})
}

// OrDiscard returns r, or Discard when r is nil.
func OrDiscard(r Reporter) Reporter {
	if r == nil {
		return Discard
	}
	return r
}
