package commands

// Assignment method labels recorded in metrics and audit entries.
const (
	MethodAuto      = "auto"
	MethodPreferred = "preferred"
)

// DispatchRecorder receives dispatch outcome events for metrics. Handlers
// call it after the transaction outcome is known; implementations must be
// safe for concurrent use and must never fail the operation.
type DispatchRecorder interface {
	// RecordAssignment counts a successful assignment by method
	// (MethodAuto or MethodPreferred).
	RecordAssignment(method string)

	// RecordAssignmentFailure counts a failed assignment attempt.
	RecordAssignmentFailure()

	// RecordTransition counts a successful delivery transition by the
	// status it entered.
	RecordTransition(toStatus string)
}

// NopRecorder is a DispatchRecorder that discards all events. Used in tests
// and wherever metrics are not wired.
type NopRecorder struct{}

func (NopRecorder) RecordAssignment(string)  {}
func (NopRecorder) RecordAssignmentFailure() {}
func (NopRecorder) RecordTransition(string)  {}
