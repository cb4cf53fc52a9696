package diag

import "tiger/internal/source"

// Diagnostic is the output contract's error shape (spec §6): a location,
// a closed-set kind, and a human-readable message.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	At       source.Location
}

func New(sev Severity, code Code, at source.Location, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: msg, At: at}
}

// NewError builds a SevError diagnostic — the common case, since the
// analyzer aborts on the first error it reports.
func NewError(code Code, at source.Location, msg string) Diagnostic {
	return New(SevError, code, at, msg)
}

// NewInternal builds an internal-error diagnostic. Per spec §7 these are
// "clearly distinguishable" from ordinary diagnostics and carry no
// meaningful source location.
func NewInternal(msg string) Diagnostic {
	return New(SevError, SemaInternalError, source.NoLocation, msg)
}

func (d Diagnostic) IsInternal() bool {
	return d.Code == SemaInternalError
}
