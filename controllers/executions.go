package controllers

import (
	"testdesk/models"
	"testdesk/pages"

	"github.com/gin-gonic/gin"
)

const pageExecutions = "executions"

// GET /app/executions
// Mounting refetches everything and resets paging, selection and dialogs.
func GetExecutionsPage(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()

	views.Mounted(pageExecutions)
	err := views.Executions.Mount(c.Request.Context(), deps.executionsAPIs(), deps.Config.UI.DefaultPageSize)
	logLoad(deps, pageExecutions, err)
	RespondSuccess(c, views.Executions.Snapshot())
}

func ensureExecutions(c *gin.Context, deps *Deps, views *pages.SessionViews) {
	if !views.Mounted(pageExecutions) {
		err := views.Executions.Mount(c.Request.Context(), deps.executionsAPIs(), deps.Config.UI.DefaultPageSize)
		logLoad(deps, pageExecutions, err)
	}
}

type executionsPagingRequest struct {
	Page        int `json:"page" form:"page"`
	RowsPerPage int `json:"rows_per_page" form:"rows_per_page"`
}

// POST /app/executions/page
func SetExecutionsPage(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureExecutions(c, deps, views)

	var req executionsPagingRequest
	if !bindOrReject(c, &req) {
		return
	}
	if req.RowsPerPage != 0 && req.RowsPerPage != views.Executions.RowsPerPage {
		if err := views.Executions.SetRowsPerPage(req.RowsPerPage); err != nil {
			views.Executions.Message = err.Error()
			RespondPage(c, views.Executions.Snapshot(), pages.ErrValidation)
			return
		}
	} else {
		views.Executions.SetPage(req.Page)
	}
	RespondSuccess(c, views.Executions.Snapshot())
}

type dialogRequest struct {
	Open bool `json:"open" form:"open"`
}

// POST /app/executions/dialog
func ToggleExecuteDialog(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureExecutions(c, deps, views)

	var req dialogRequest
	if !bindOrReject(c, &req) {
		return
	}
	if req.Open {
		views.Executions.OpenDialog()
	} else {
		views.Executions.CloseDialog()
	}
	RespondSuccess(c, views.Executions.Snapshot())
}

// POST /app/executions/execute
func ExecuteTests(c *gin.Context) {
	deps, session, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureExecutions(c, deps, views)

	var req models.ExecuteRequest
	if !bindOrReject(c, &req) {
		return
	}
	err := views.Executions.Execute(c.Request.Context(), deps.executionsAPIs(), req)
	logLoad(deps, pageExecutions, err)
	if err == nil {
		pushNotice(c, session.ID, pages.Notice{Severity: models.TOAST_SUCCESS, Message: views.Executions.Message})
	}
	RespondPage(c, views.Executions.Snapshot(), err)
}

// GET /app/executions/:id
func GetExecutionDetail(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureExecutions(c, deps, views)

	err := views.Executions.OpenDetail(id)
	RespondPage(c, views.Executions.Snapshot(), err)
}

// DELETE /app/executions/detail
func CloseExecutionDetail(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureExecutions(c, deps, views)

	views.Executions.CloseDetail()
	RespondSuccess(c, views.Executions.Snapshot())
}
