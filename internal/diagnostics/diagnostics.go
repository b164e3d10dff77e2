package diagnostics

import "fmt"

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a user-facing note produced during compilation. Diagnostics
// never abort a phase; fatal conditions use InternalError instead.
type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Collector accumulates diagnostics in first-seen order.
type Collector struct {
	diags []Diagnostic
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Warnf(format string, args ...interface{}) {
	c.diags = append(c.diags, Diagnostic{SeverityWarning, fmt.Sprintf(format, args...)})
}

func (c *Collector) Errorf(format string, args ...interface{}) {
	c.diags = append(c.diags, Diagnostic{SeverityError, fmt.Sprintf(format, args...)})
}

// All returns collected diagnostics in the order they were reported.
func (c *Collector) All() []Diagnostic {
	return c.diags
}

func (c *Collector) Len() int {
	return len(c.diags)
}
