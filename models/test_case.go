package models

/************************************************
/**** MARK: AUTOMATION STATUS ****/
/************************************************/
const AUTOMATION_STATUS_AUTOMATED = "automated"
const AUTOMATION_STATUS_WORKING = "working"
const AUTOMATION_STATUS_MANUAL = "manual"
const AUTOMATION_STATUS_NOT_AUTOMATABLE = "not_automatable"

// TestCase is a backend test case. TestCaseID is the display code (ex: TC-001).
type TestCase struct {
	ID               int64  `json:"id"`
	TestCaseID       string `json:"test_case_id"`
	Title            string `json:"title"`
	AutomationStatus string `json:"automation_status"`
	ModuleID         int64  `json:"module_id,omitempty"`
	SubModuleID      int64  `json:"sub_module_id,omitempty"`
	Feature          string `json:"feature,omitempty"`
	Priority         string `json:"priority,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}

// IsAutomated counts "working" as automated too; the dashboard relies on it.
func (tc TestCase) IsAutomated() bool {
	return tc.AutomationStatus == AUTOMATION_STATUS_AUTOMATED || tc.AutomationStatus == AUTOMATION_STATUS_WORKING
}
