package validation

import "fmt"

// Status is the outcome of a single check.
type Status string

const (
	StatusPassed  Status = "PASSED"
	StatusFailed  Status = "FAILED"
	StatusWarning Status = "WARNING"
)

// Result is the outcome of one validation check. Results are immutable once
// appended to a run.
type Result struct {
	Component    string   `json:"component"`
	Status       Status   `json:"status"`
	Message      string   `json:"message"`
	Notebooks    []string `json:"notebooks,omitempty"`
	ClusterState string   `json:"cluster_state,omitempty"`
}

func passed(component, format string, args ...any) Result {
	return Result{Component: component, Status: StatusPassed, Message: fmt.Sprintf(format, args...)}
}

func failed(component, format string, args ...any) Result {
	return Result{Component: component, Status: StatusFailed, Message: fmt.Sprintf(format, args...)}
}

func warning(component, format string, args ...any) Result {
	return Result{Component: component, Status: StatusWarning, Message: fmt.Sprintf(format, args...)}
}
