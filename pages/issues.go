package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"testdesk/models"
	"testdesk/services"
	"testdesk/tools"
)

type IssueDialog struct {
	Existing *models.Issue `json:"existing,omitempty"`
	Form     models.Issue  `json:"form"`
	Error    string        `json:"error,omitempty"`
}

type IssuesSnapshot struct {
	Stats      []models.IssueStats `json:"stats"`
	Issues     []models.Issue      `json:"issues"`
	Total      int64               `json:"total"`
	Filter     models.IssueFilter  `json:"filter"`
	PageSizes  []int               `json:"page_sizes"`
	RefreshKey int                 `json:"refresh_key"`
	Dialog     *IssueDialog        `json:"dialog,omitempty"`
	Detail     *models.Issue       `json:"detail,omitempty"`
}

// IssuesView holds the stats header, the paginated list and the detail
// dialog. RefreshKey is bumped after every successful save or delete and both
// the stats and the list reload when it moves.
type IssuesView struct {
	Stats      []models.IssueStats
	List       models.IssuePage
	Filter     models.IssueFilter
	RefreshKey int
	Dialog     *IssueDialog
	Detail     *models.Issue
}

func (v *IssuesView) Mount(ctx context.Context, api services.IssueService, pageSize int) error {
	if !ValidPageSize(pageSize) {
		pageSize = 10
	}
	*v = IssuesView{Filter: models.IssueFilter{Page: 1, PageSize: pageSize}}
	return v.Reload(ctx, api)
}

func (v *IssuesView) Reload(ctx context.Context, api services.IssueService) error {
	return errors.Join(v.reloadStats(ctx, api), v.reloadList(ctx, api))
}

func (v *IssuesView) reloadStats(ctx context.Context, api services.IssueService) error {
	stats, err := api.Stats(ctx)
	if err != nil {
		v.Stats = []models.IssueStats{}
		return loadErr("issue stats", err)
	}
	v.Stats = stats
	return nil
}

func (v *IssuesView) reloadList(ctx context.Context, api services.IssueService) error {
	page, err := api.List(ctx, v.Filter)
	if err != nil {
		v.List = models.IssuePage{Items: []models.Issue{}, Page: v.Filter.Page, PageSize: v.Filter.PageSize}
		return loadErr("issues", err)
	}
	v.List = page
	return nil
}

// ApplyFilter changes the list query. Changing anything but the page sends
// the list back to page 1. Only the list is refetched.
func (v *IssuesView) ApplyFilter(ctx context.Context, api services.IssueService, f models.IssueFilter) error {
	if f.PageSize == 0 {
		f.PageSize = v.Filter.PageSize
	}
	if !ValidPageSize(f.PageSize) {
		return fmt.Errorf("%w: invalid page size", ErrInvalidAction)
	}
	if f.Page < 1 {
		f.Page = 1
	}
	f.Status = strings.TrimSpace(f.Status)
	if f.PageSize != v.Filter.PageSize || f.ModuleID != v.Filter.ModuleID || f.Status != v.Filter.Status {
		f.Page = 1
	}
	v.Filter = f
	return v.reloadList(ctx, api)
}

// OpenDialog opens the create dialog when existing is nil, the edit dialog
// otherwise.
func (v *IssuesView) OpenDialog(existing *models.Issue) {
	d := &IssueDialog{Form: models.Issue{Status: models.ISSUE_STATUS_OPEN}}
	if existing != nil {
		e := *existing
		d.Existing = &e
		d.Form = e
	}
	v.Dialog = d
}

func (v *IssuesView) CloseDialog() {
	v.Dialog = nil
}

func ValidateIssue(form models.Issue) string {
	if strings.TrimSpace(form.Title) == "" {
		return "Issue title is required"
	}
	return ""
}

// Save updates when the dialog was opened on an existing issue and creates
// otherwise. The returned notice is meant for the toast queue.
func (v *IssuesView) Save(ctx context.Context, api services.IssueService, form models.Issue) (Notice, error) {
	if v.Dialog == nil {
		v.OpenDialog(nil)
	}
	v.Dialog.Form = form
	if msg := ValidateIssue(form); msg != "" {
		v.Dialog.Error = msg
		return Notice{}, ErrValidation
	}

	var err error
	updating := v.Dialog.Existing != nil && v.Dialog.Existing.ID > 0
	if updating {
		_, err = api.Update(ctx, v.Dialog.Existing.ID, form)
	} else {
		_, err = api.Create(ctx, form)
	}
	if err != nil {
		return Notice{Severity: models.TOAST_ERROR, Message: "Failed to save issue: " + tools.ErrorMessage(err)}, err
	}

	v.Dialog = nil
	v.RefreshKey++
	msg := "Issue created successfully"
	if updating {
		msg = "Issue updated successfully"
	}
	return Notice{Severity: models.TOAST_SUCCESS, Message: msg}, v.Reload(ctx, api)
}

func (v *IssuesView) Delete(ctx context.Context, api services.IssueService, id int64) (Notice, error) {
	if err := api.Delete(ctx, id); err != nil {
		return Notice{Severity: models.TOAST_ERROR, Message: "Failed to delete issue: " + tools.ErrorMessage(err)}, err
	}
	if v.Detail != nil && v.Detail.ID == id {
		v.Detail = nil
	}
	v.RefreshKey++
	return Notice{Severity: models.TOAST_SUCCESS, Message: "Issue deleted successfully"}, v.Reload(ctx, api)
}

func (v *IssuesView) OpenDetail(ctx context.Context, api services.IssueService, id int64) error {
	issue, err := api.Get(ctx, id)
	if err != nil {
		if tools.IsStatus(err, 404) {
			return models.ErrNotFound
		}
		return err
	}
	v.Detail = &issue
	return nil
}

func (v *IssuesView) CloseDetail() {
	v.Detail = nil
}

func (v *IssuesView) Snapshot() IssuesSnapshot {
	snap := IssuesSnapshot{
		Stats:      v.Stats,
		Issues:     v.List.Items,
		Total:      v.List.Total,
		Filter:     v.Filter,
		PageSizes:  PageSizes,
		RefreshKey: v.RefreshKey,
	}
	if snap.Stats == nil {
		snap.Stats = []models.IssueStats{}
	}
	if snap.Issues == nil {
		snap.Issues = []models.Issue{}
	}
	if v.Dialog != nil {
		d := *v.Dialog
		snap.Dialog = &d
	}
	if v.Detail != nil {
		d := *v.Detail
		snap.Detail = &d
	}
	return snap
}
