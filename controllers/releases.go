package controllers

import (
	"net/http"

	"testdesk/models"
	"testdesk/pages"
	"testdesk/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageReleases = "releases"

// GET /app/releases
func GetReleasesPage(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()

	views.Mounted(pageReleases)
	err := views.Releases.Mount(c.Request.Context(), deps.Releases)
	logLoad(deps, pageReleases, err)
	RespondSuccess(c, views.Releases.Snapshot(deps.Now()))
}

func ensureReleases(c *gin.Context, deps *Deps, views *pages.SessionViews) {
	if !views.Mounted(pageReleases) {
		err := views.Releases.Mount(c.Request.Context(), deps.Releases)
		logLoad(deps, pageReleases, err)
	}
}

type releaseDialogRequest struct {
	Mode string `json:"mode" form:"mode"` // create|edit
	ID   int64  `json:"id" form:"id"`
}

// POST /app/releases/dialog
func OpenReleaseDialog(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureReleases(c, deps, views)

	var req releaseDialogRequest
	if !bindOrReject(c, &req) {
		return
	}
	var err error
	if req.Mode == "edit" {
		err = views.Releases.OpenEdit(req.ID)
	} else {
		views.Releases.OpenCreate()
	}
	RespondPage(c, views.Releases.Snapshot(deps.Now()), err)
}

// DELETE /app/releases/dialog
func CloseReleaseDialog(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureReleases(c, deps, views)

	views.Releases.CloseDialog()
	RespondSuccess(c, views.Releases.Snapshot(deps.Now()))
}

// POST /app/releases/dialog/submit
func SubmitReleaseDialog(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureReleases(c, deps, views)

	var form models.Release
	if !bindOrReject(c, &form) {
		return
	}
	err := views.Releases.Submit(c.Request.Context(), deps.Releases, form)
	logLoad(deps, pageReleases, err)
	RespondPage(c, views.Releases.Snapshot(deps.Now()), err)
}

type idRequest struct {
	ID int64 `json:"id" form:"id" binding:"required,gt=0"`
}

// POST /app/releases/delete
func RequestReleaseDelete(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureReleases(c, deps, views)

	var req idRequest
	if !bindOrReject(c, &req) {
		return
	}
	err := views.Releases.RequestDelete(req.ID)
	RespondPage(c, views.Releases.Snapshot(deps.Now()), err)
}

// POST /app/releases/delete/confirm
func ConfirmReleaseDelete(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureReleases(c, deps, views)

	err := views.Releases.ConfirmDelete(c.Request.Context(), deps.Releases)
	logLoad(deps, pageReleases, err)
	RespondPage(c, views.Releases.Snapshot(deps.Now()), err)
}

// DELETE /app/releases/delete
func CancelReleaseDelete(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureReleases(c, deps, views)

	views.Releases.CancelDelete()
	RespondSuccess(c, views.Releases.Snapshot(deps.Now()))
}

// GET /app/releases/:id
// The detail page is stateless: release and its executions are fetched on
// every request.
func GetReleaseDetail(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	deps := DepsInstance(c)
	ctx := c.Request.Context()

	release, err := deps.Releases.Get(ctx, id)
	if err != nil {
		if tools.IsStatus(err, http.StatusNotFound) {
			RespondError(c, "release not found", http.StatusNotFound)
			return
		}
		deps.Logger.Warn("release fetch failed", zap.Int64("release_id", id), zap.Error(err))
		RespondError(c, "Failed to load release: "+tools.ErrorMessage(err), pageStatus(err))
		return
	}

	executions, err := deps.Executions.List(ctx, id)
	if err != nil {
		deps.Logger.Warn("release executions fetch failed", zap.Int64("release_id", id), zap.Error(err))
		executions = nil
	}
	RespondSuccess(c, pages.BuildReleaseDetail(release, executions, deps.Now()))
}
