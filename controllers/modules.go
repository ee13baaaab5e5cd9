package controllers

import (
	"testdesk/models"
	"testdesk/pages"

	"github.com/gin-gonic/gin"
)

const pageModules = "modules"

// GET /app/modules
// Mounting collapses the whole tree and refetches list and hierarchy.
func GetModulesPage(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()

	views.Mounted(pageModules)
	err := views.Modules.Mount(c.Request.Context(), deps.hierarchyAPIs())
	logLoad(deps, pageModules, err)
	RespondSuccess(c, views.Modules.Snapshot())
}

func ensureModules(c *gin.Context, deps *Deps, views *pages.SessionViews) {
	if !views.Mounted(pageModules) {
		err := views.Modules.Mount(c.Request.Context(), deps.hierarchyAPIs())
		logLoad(deps, pageModules, err)
	}
}

// POST /app/modules/toggle
// A target with a sub-module name flips that sub-module, otherwise the module.
func ToggleModuleNode(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureModules(c, deps, views)

	var t pages.Target
	if !bindOrReject(c, &t) {
		return
	}
	if t.SubModule != "" {
		views.Modules.ToggleSubModule(t.ModuleID, t.SubModule)
	} else {
		views.Modules.ToggleModule(t.ModuleID)
	}
	RespondSuccess(c, views.Modules.Snapshot())
}

type hierarchyDialogRequest struct {
	pages.Target
	Mode string `json:"mode" form:"mode"` // create|edit
}

// POST /app/modules/dialog
func OpenModuleDialog(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureModules(c, deps, views)

	var req hierarchyDialogRequest
	if !bindOrReject(c, &req) {
		return
	}
	var err error
	if req.Mode == "edit" {
		err = views.Modules.OpenEdit(req.Target)
	} else {
		err = views.Modules.OpenCreate(req.Target)
	}
	RespondPage(c, views.Modules.Snapshot(), err)
}

// DELETE /app/modules/dialog
func CloseModuleDialog(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureModules(c, deps, views)

	views.Modules.CloseDialog()
	RespondSuccess(c, views.Modules.Snapshot())
}

// POST /app/modules/dialog/submit
func SubmitModuleDialog(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureModules(c, deps, views)

	var form models.ModuleForm
	if !bindOrReject(c, &form) {
		return
	}
	err := views.Modules.SubmitDialog(c.Request.Context(), deps.hierarchyAPIs(), form)
	logLoad(deps, pageModules, err)
	RespondPage(c, views.Modules.Snapshot(), err)
}

// POST /app/modules/delete
// Asks for confirmation. Legacy nodes without an id are refused with 409.
func RequestModuleDelete(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureModules(c, deps, views)

	var t pages.Target
	if !bindOrReject(c, &t) {
		return
	}
	err := views.Modules.RequestDelete(t)
	RespondPage(c, views.Modules.Snapshot(), err)
}

// POST /app/modules/delete/confirm
func ConfirmModuleDelete(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureModules(c, deps, views)

	err := views.Modules.ConfirmDelete(c.Request.Context(), deps.hierarchyAPIs())
	logLoad(deps, pageModules, err)
	RespondPage(c, views.Modules.Snapshot(), err)
}

// DELETE /app/modules/delete
func CancelModuleDelete(c *gin.Context) {
	deps, _, views, ok := pageContext(c)
	if !ok {
		return
	}
	defer views.Unlock()
	ensureModules(c, deps, views)

	views.Modules.CancelDelete()
	RespondSuccess(c, views.Modules.Snapshot())
}
