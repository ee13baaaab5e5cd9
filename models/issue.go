package models

/************************************************
/**** MARK: ISSUE STATUS ****/
/************************************************/
const ISSUE_STATUS_OPEN = "open"
const ISSUE_STATUS_CLOSED = "closed"

type Issue struct {
	ID          int64  `json:"id"`
	ModuleID    int64  `json:"module_id" form:"module_id"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Status      string `json:"status" form:"status"`
	Priority    string `json:"priority" form:"priority"`
	Assignee    string `json:"assignee,omitempty" form:"assignee"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// IssueStats are the per-module counters aggregated by the backend.
type IssueStats struct {
	ModuleID   int64  `json:"module_id"`
	ModuleName string `json:"module_name"`
	Open       int64  `json:"open"`
	Closed     int64  `json:"closed"`
	Total      int64  `json:"total"`
}

// IssuePage is one page of GET /issues.
type IssuePage struct {
	Items    []Issue `json:"items"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

type IssueFilter struct {
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"page_size" form:"page_size"`
	ModuleID int64  `json:"module_id,omitempty" form:"module_id"`
	Status   string `json:"status,omitempty" form:"status"`
}
