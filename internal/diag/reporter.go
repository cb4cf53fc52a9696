package diag

// Reporter is the minimal contract a phase uses to emit diagnostics,
// grounded on the teacher's diag.Reporter interface.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adapts a *Bag into a Reporter.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards every diagnostic. Useful for probes that only
// care whether analysis would succeed.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
