package pages

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"testdesk/models"
	"testdesk/services"
	"testdesk/tools"
)

const executeValidationMessage = "Please select a release and at least one test case"

// StatusBadge maps an execution status to a badge color.
func StatusBadge(status string) string {
	switch status {
	case models.EXECUTION_STATUS_PASS:
		return "success"
	case models.EXECUTION_STATUS_FAIL:
		return "error"
	case models.EXECUTION_STATUS_PENDING:
		return "warning"
	default:
		return "default"
	}
}

func normalizedStatus(status string) string {
	switch status {
	case models.EXECUTION_STATUS_PASS, models.EXECUTION_STATUS_FAIL, models.EXECUTION_STATUS_PENDING:
		return status
	default:
		return models.EXECUTION_STATUS_UNKNOWN
	}
}

// FormatDuration renders seconds as "<m>m <s>s", or "N/A" when absent.
func FormatDuration(seconds *float64) string {
	if seconds == nil {
		return "N/A"
	}
	d := *seconds
	minutes := math.Floor(d / 60)
	rest := math.Mod(d, 60)
	return fmt.Sprintf("%sm %ss", strconv.FormatFloat(minutes, 'f', -1, 64), strconv.FormatFloat(rest, 'f', -1, 64))
}

type ExecutionRow struct {
	ID         int64  `json:"id"`
	TestCase   string `json:"test_case"`
	Release    string `json:"release"`
	Status     string `json:"status"`
	Badge      string `json:"badge"`
	ExecutedBy string `json:"executed_by"`
	ExecutedAt string `json:"executed_at"`
	Duration   string `json:"duration"`
}

// ExecutionDetail is the read-only detail dialog.
type ExecutionDetail struct {
	ExecutionRow
	TestCaseID   int64  `json:"test_case_id"`
	ReleaseID    int64  `json:"release_id"`
	ErrorMessage string `json:"error_message"`
	LogFile      string `json:"log_file"`
}

type Option struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

type ExecuteDialog struct {
	Open      bool                  `json:"open"`
	Selection models.ExecuteRequest `json:"selection"`
	Error     string                `json:"error,omitempty"`
	TestCases []Option              `json:"test_cases"`
	Releases  []Option              `json:"releases"`
}

type ExecutionsSnapshot struct {
	Rows    []ExecutionRow   `json:"rows"`
	Paging  PageInfo         `json:"paging"`
	Dialog  ExecuteDialog    `json:"execute_dialog"`
	Detail  *ExecutionDetail `json:"detail,omitempty"`
	Loaded  int              `json:"loaded"`
	Message string           `json:"message,omitempty"`
}

type ExecutionsAPIs struct {
	Executions services.ExecutionsAPI
	TestCases  services.TestCasesAPI
	Releases   services.ReleasesAPI
}

// ExecutionsView is the test executions page.
type ExecutionsView struct {
	Executions  []models.Execution
	TestCases   []models.TestCase
	Releases    []models.Release
	Page        int
	RowsPerPage int
	DialogOpen  bool
	Selection   models.ExecuteRequest
	FormError   string
	Message     string
	DetailID    int64
	// Loads counts execution list fetches; the page uses it to show a refresh.
	Loads int
}

// Mount resets the page and runs the three fetches one after the other.
// Each failure only empties its own list; all failures are returned joined.
func (v *ExecutionsView) Mount(ctx context.Context, apis ExecutionsAPIs, rowsPerPage int) error {
	if !ValidPageSize(rowsPerPage) {
		rowsPerPage = 10
	}
	*v = ExecutionsView{RowsPerPage: rowsPerPage}

	errExec := v.reloadExecutions(ctx, apis)

	testCases, errTC := apis.TestCases.List(ctx)
	v.TestCases = testCases

	releases, errRel := apis.Releases.List(ctx)
	v.Releases = releases

	return errors.Join(errExec, loadErr("test cases", errTC), loadErr("releases", errRel))
}

func (v *ExecutionsView) reloadExecutions(ctx context.Context, apis ExecutionsAPIs) error {
	executions, err := apis.Executions.List(ctx, 0)
	v.Loads++
	if err != nil {
		v.Executions = nil
		return loadErr("executions", err)
	}
	v.Executions = executions
	return nil
}

func (v *ExecutionsView) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	v.Page = page
}

func (v *ExecutionsView) SetRowsPerPage(size int) error {
	if !ValidPageSize(size) {
		return fmt.Errorf("%w: rows per page must be one of %v", ErrInvalidAction, PageSizes)
	}
	v.RowsPerPage = size
	v.Page = 0
	return nil
}

func (v *ExecutionsView) OpenDialog() {
	v.DialogOpen = true
	v.FormError = ""
}

func (v *ExecutionsView) CloseDialog() {
	v.DialogOpen = false
	v.FormError = ""
}

func ValidateExecute(req models.ExecuteRequest) string {
	if req.ReleaseID <= 0 || len(req.TestCaseIDs) == 0 {
		return executeValidationMessage
	}
	return ""
}

// Execute triggers a batch. An incomplete selection is refused without any
// backend call; a successful run clears the selection and refetches the list.
func (v *ExecutionsView) Execute(ctx context.Context, apis ExecutionsAPIs, req models.ExecuteRequest) error {
	v.Selection = req
	v.DialogOpen = true
	if msg := ValidateExecute(req); msg != "" {
		v.FormError = msg
		return ErrValidation
	}

	if err := apis.Executions.Execute(ctx, req); err != nil {
		v.FormError = "Failed to execute tests: " + tools.ErrorMessage(err)
		return err
	}

	v.Selection = models.ExecuteRequest{}
	v.DialogOpen = false
	v.FormError = ""
	v.Message = fmt.Sprintf("Started %d test execution(s)", len(req.TestCaseIDs))
	return v.reloadExecutions(ctx, apis)
}

func (v *ExecutionsView) OpenDetail(id int64) error {
	for _, e := range v.Executions {
		if e.ID == id {
			v.DetailID = id
			return nil
		}
	}
	return models.ErrNotFound
}

func (v *ExecutionsView) CloseDetail() {
	v.DetailID = 0
}

func (v *ExecutionsView) Snapshot() ExecutionsSnapshot {
	tcIndex := make(map[int64]models.TestCase, len(v.TestCases))
	for _, tc := range v.TestCases {
		tcIndex[tc.ID] = tc
	}
	relIndex := make(map[int64]models.Release, len(v.Releases))
	for _, r := range v.Releases {
		relIndex[r.ID] = r
	}

	window := Paginate(v.Executions, v.Page, v.RowsPerPage)
	snap := ExecutionsSnapshot{
		Rows: make([]ExecutionRow, 0, len(window)),
		Paging: PageInfo{
			Page:        v.Page,
			RowsPerPage: v.RowsPerPage,
			Total:       len(v.Executions),
			PageSizes:   PageSizes,
		},
		Dialog: ExecuteDialog{
			Open:      v.DialogOpen,
			Selection: v.Selection,
			Error:     v.FormError,
			TestCases: make([]Option, 0, len(v.TestCases)),
			Releases:  make([]Option, 0, len(v.Releases)),
		},
		Loaded:  v.Loads,
		Message: v.Message,
	}
	for _, e := range window {
		snap.Rows = append(snap.Rows, executionRow(e, tcIndex, relIndex))
	}
	for _, tc := range v.TestCases {
		snap.Dialog.TestCases = append(snap.Dialog.TestCases, Option{Value: tc.ID, Label: testCaseLabel(tc)})
	}
	for _, r := range v.Releases {
		snap.Dialog.Releases = append(snap.Dialog.Releases, Option{Value: r.ID, Label: releaseLabel(r)})
	}

	if v.DetailID != 0 {
		for _, e := range v.Executions {
			if e.ID == v.DetailID {
				snap.Detail = &ExecutionDetail{
					ExecutionRow: executionRow(e, tcIndex, relIndex),
					TestCaseID:   e.TestCaseID,
					ReleaseID:    e.ReleaseID,
					ErrorMessage: e.ErrorMessage,
					LogFile:      e.LogFile,
				}
				break
			}
		}
	}
	return snap
}

func executionRow(e models.Execution, tcIndex map[int64]models.TestCase, relIndex map[int64]models.Release) ExecutionRow {
	row := ExecutionRow{
		ID:         e.ID,
		Status:     e.Status,
		Badge:      StatusBadge(e.Status),
		ExecutedBy: e.ExecutedBy,
		ExecutedAt: e.ExecutedAt,
		Duration:   FormatDuration(e.Duration),
	}

	switch {
	case e.TestCase != nil:
		row.TestCase = testCaseLabel(*e.TestCase)
	case tcIndex != nil:
		if tc, ok := tcIndex[e.TestCaseID]; ok {
			row.TestCase = testCaseLabel(tc)
		}
	}
	if row.TestCase == "" && e.TestCaseID > 0 {
		row.TestCase = "#" + strconv.FormatInt(e.TestCaseID, 10)
	}

	switch {
	case e.Release != nil:
		row.Release = releaseLabel(*e.Release)
	case relIndex != nil:
		if r, ok := relIndex[e.ReleaseID]; ok {
			row.Release = releaseLabel(r)
		}
	}
	if row.Release == "" && e.ReleaseID > 0 {
		row.Release = "#" + strconv.FormatInt(e.ReleaseID, 10)
	}
	return row
}

func testCaseLabel(tc models.TestCase) string {
	if tc.TestCaseID == "" {
		return tc.Title
	}
	return tc.TestCaseID + " - " + tc.Title
}

func releaseLabel(r models.Release) string {
	switch {
	case r.Version != "" && r.Name != "":
		return r.Version + " - " + r.Name
	case r.Version != "":
		return r.Version
	default:
		return r.Name
	}
}
