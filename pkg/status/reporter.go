package status

import "github.com/Veraticus/regexbench/pkg/interfaces"

// Reporter adapts the Indicator to implement interfaces.ProgressReporter
type Reporter struct {
	indicator *Indicator
}

// NewReporter creates a new status reporter
func NewReporter(indicator *Indicator) *Reporter {
	return &Reporter{
		indicator: indicator,
	}
}

// Ensure Reporter implements ProgressReporter
var _ interfaces.ProgressReporter = (*Reporter)(nil)

// ReportStart reports that a pattern is being measured
func (r *Reporter) ReportStart(name string) {
	if r.indicator != nil {
		r.indicator.SetStatus(StatusRunning, name)
	}
}

// ReportDone reports that a pattern finished
func (r *Reporter) ReportDone(name string) {
	if r.indicator != nil {
		r.indicator.SetStatus(StatusDone, name)
	}
}

// ReportFailure reports that a pattern could not be measured
func (r *Reporter) ReportFailure(name string) {
	if r.indicator != nil {
		r.indicator.SetStatus(StatusFailed, name)
	}
}
