package controllers

import (
	"testdesk/models"
	"testdesk/pages"
	"testdesk/tools"

	"github.com/gin-gonic/gin"
)

const pageIssues = "issues"

// GET /app/issues
// Load failures are reported through a toast, the page itself stays usable.
func GetIssuesPage(c *gin.Context) {
	deps, session, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()

	views.Mounted(pageIssues)
	mountIssues(c, deps, session, views)
	RespondSuccess(c, views.Issues.Snapshot())
}

func mountIssues(c *gin.Context, deps *Deps, session models.Session, views *pages.SessionViews) {
	err := views.Issues.Mount(c.Request.Context(), deps.Issues, deps.Config.UI.DefaultPageSize)
	logLoad(deps, pageIssues, err)
	if err != nil {
		pushNotice(c, session.ID, pages.Notice{Severity: models.TOAST_ERROR, Message: "Failed to load issues: " + tools.ErrorMessage(err)})
	}
}

func ensureIssues(c *gin.Context, deps *Deps, session models.Session, views *pages.SessionViews) {
	if !views.Mounted(pageIssues) {
		mountIssues(c, deps, session, views)
	}
}

// POST /app/issues/filter
func FilterIssues(c *gin.Context) {
	deps, session, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureIssues(c, deps, session, views)

	var f models.IssueFilter
	if !bindOrReject(c, &f) {
		return
	}
	err := views.Issues.ApplyFilter(c.Request.Context(), deps.Issues, f)
	logLoad(deps, pageIssues, err)
	RespondPage(c, views.Issues.Snapshot(), err)
}

type issueDialogRequest struct {
	ID int64 `json:"id" form:"id"`
}

// POST /app/issues/dialog
// With an id the dialog edits that issue, otherwise it creates one.
func OpenIssueDialog(c *gin.Context) {
	deps, session, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureIssues(c, deps, session, views)

	var req issueDialogRequest
	if !bindOrReject(c, &req) {
		return
	}
	if req.ID <= 0 {
		views.Issues.OpenDialog(nil)
		RespondSuccess(c, views.Issues.Snapshot())
		return
	}
	issue, err := deps.Issues.Get(c.Request.Context(), req.ID)
	if err != nil {
		logLoad(deps, pageIssues, err)
		RespondPage(c, views.Issues.Snapshot(), err)
		return
	}
	views.Issues.OpenDialog(&issue)
	RespondSuccess(c, views.Issues.Snapshot())
}

// DELETE /app/issues/dialog
func CloseIssueDialog(c *gin.Context) {
	deps, session, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureIssues(c, deps, session, views)

	views.Issues.CloseDialog()
	RespondSuccess(c, views.Issues.Snapshot())
}

// POST /app/issues/save
func SaveIssue(c *gin.Context) {
	deps, session, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureIssues(c, deps, session, views)

	var form models.Issue
	if !bindOrReject(c, &form) {
		return
	}
	notice, err := views.Issues.Save(c.Request.Context(), deps.Issues, form)
	logLoad(deps, pageIssues, err)
	pushNotice(c, session.ID, notice)
	RespondPage(c, views.Issues.Snapshot(), err)
}

// POST /app/issues/delete
func DeleteIssue(c *gin.Context) {
	deps, session, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureIssues(c, deps, session, views)

	var req idRequest
	if !bindOrReject(c, &req) {
		return
	}
	notice, err := views.Issues.Delete(c.Request.Context(), deps.Issues, req.ID)
	logLoad(deps, pageIssues, err)
	pushNotice(c, session.ID, notice)
	RespondPage(c, views.Issues.Snapshot(), err)
}

// GET /app/issues/:id
func GetIssueDetail(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	deps, session, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureIssues(c, deps, session, views)

	err := views.Issues.OpenDetail(c.Request.Context(), deps.Issues, id)
	logLoad(deps, pageIssues, err)
	RespondPage(c, views.Issues.Snapshot(), err)
}

// DELETE /app/issues/detail
func CloseIssueDetail(c *gin.Context) {
	deps, session, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureIssues(c, deps, session, views)

	views.Issues.CloseDetail()
	RespondSuccess(c, views.Issues.Snapshot())
}
