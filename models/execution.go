package models

/************************************************
/**** MARK: EXECUTION STATUS ****/
/************************************************/
const EXECUTION_STATUS_PASS = "pass"
const EXECUTION_STATUS_FAIL = "fail"
const EXECUTION_STATUS_PENDING = "pending"
const EXECUTION_STATUS_UNKNOWN = "unknown"

// Execution is one run of a test case against a release. Duration is in seconds.
type Execution struct {
	ID           int64     `json:"id"`
	TestCaseID   int64     `json:"test_case_id"`
	TestCase     *TestCase `json:"test_case,omitempty"`
	ReleaseID    int64     `json:"release_id"`
	Release      *Release  `json:"release,omitempty"`
	Status       string    `json:"status"`
	ExecutedBy   string    `json:"executed_by,omitempty"`
	ExecutedAt   string    `json:"executed_at,omitempty"`
	Duration     *float64  `json:"duration,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	LogFile      string    `json:"log_file,omitempty"`
}

// ExecuteRequest is the body of POST /executions/execute.
type ExecuteRequest struct {
	TestCaseIDs []int64 `json:"test_case_ids" form:"test_case_ids"`
	ReleaseID   int64   `json:"release_id" form:"release_id"`
}
