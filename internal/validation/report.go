package validation

import "time"

// Summary holds per-status counts for a run.
type Summary struct {
	TotalChecks int `json:"total_checks"`
	Passed      int `json:"passed"`
	Failed      int `json:"failed"`
	Warnings    int `json:"warnings"`
}

// Report is the full outcome of a validation run. It is derived from the
// result sequence and not persisted unless explicitly requested.
type Report struct {
	Environment   string    `json:"environment"`
	Timestamp     time.Time `json:"timestamp"`
	WorkspaceHost string    `json:"workspace_host"`
	BasePath      string    `json:"base_path"`
	Results       []Result  `json:"validation_results"`
	Summary       Summary   `json:"summary"`
}

// BuildReport folds a result sequence into a Report with summary counts.
func BuildReport(env, host, basePath string, results []Result) *Report {
	summary := Summary{TotalChecks: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusPassed:
			summary.Passed++
		case StatusFailed:
			summary.Failed++
		case StatusWarning:
			summary.Warnings++
		}
	}

	return &Report{
		Environment:   env,
		Timestamp:     time.Now(),
		WorkspaceHost: host,
		BasePath:      basePath,
		Results:       results,
		Summary:       summary,
	}
}

// OK reports overall success. Warnings do not count against it.
func (r *Report) OK() bool {
	return r.Summary.Failed == 0
}
