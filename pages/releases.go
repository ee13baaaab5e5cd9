package pages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"testdesk/models"
	"testdesk/services"
	"testdesk/tools"
)

const (
	STATUS_RELEASED        = "Released"
	STATUS_RELEASING_TODAY = "Releasing Today"
	STATUS_SCHEDULED       = "Scheduled"
)

type StatusLabel struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// ReleaseStatusLabel derives the list status from the date only, comparing
// calendar days in now's location. Releases without a date are Scheduled.
func ReleaseStatusLabel(r models.Release, now time.Time) StatusLabel {
	t, ok := r.Date(now.Location())
	if !ok {
		return StatusLabel{Label: STATUS_SCHEDULED, Color: "info"}
	}
	day := truncateDay(t.In(now.Location()))
	today := truncateDay(now)
	switch {
	case day.Before(today):
		return StatusLabel{Label: STATUS_RELEASED, Color: "success"}
	case day.Equal(today):
		return StatusLabel{Label: STATUS_RELEASING_TODAY, Color: "warning"}
	default:
		return StatusLabel{Label: STATUS_SCHEDULED, Color: "info"}
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RowAction is an icon button on a table row. StopPropagation tells the shell
// not to treat the click as a row click as well.
type RowAction struct {
	Name            string `json:"name"`
	StopPropagation bool   `json:"stop_propagation"`
}

type ReleaseRow struct {
	models.Release
	Status   StatusLabel `json:"status"`
	Progress float64     `json:"progress_value"`
	Route    string      `json:"route"`
	Actions  []RowAction `json:"actions"`
}

type ReleaseDialog struct {
	Mode     string         `json:"mode"` // create|edit
	TargetID int64          `json:"target_id,omitempty"`
	Form     models.Release `json:"form"`
	Error    string         `json:"error,omitempty"`
}

type ReleasesSnapshot struct {
	Rows          []ReleaseRow   `json:"rows"`
	Alert         string         `json:"alert,omitempty"`
	EmptyState    string         `json:"empty_state,omitempty"`
	Dialog        *ReleaseDialog `json:"dialog,omitempty"`
	ConfirmDelete *int64         `json:"confirm_delete,omitempty"`
}

// ReleasesView is the release management page.
type ReleasesView struct {
	Releases      []models.Release
	Dialog        *ReleaseDialog
	PendingDelete *int64
	Alert         string
}

func (v *ReleasesView) Mount(ctx context.Context, api services.ReleasesAPI) error {
	*v = ReleasesView{}
	return v.Reload(ctx, api)
}

// Reload replaces the list with a fresh fetch. On failure the old list is
// dropped and an inline alert is set.
func (v *ReleasesView) Reload(ctx context.Context, api services.ReleasesAPI) error {
	releases, err := api.List(ctx)
	if err != nil {
		v.Releases = nil
		v.Alert = "Failed to load releases: " + tools.ErrorMessage(err)
		return loadErr("releases", err)
	}
	v.Releases = releases
	return nil
}

func (v *ReleasesView) OpenCreate() {
	v.Dialog = &ReleaseDialog{Mode: "create"}
}

func (v *ReleasesView) OpenEdit(id int64) error {
	r, ok := v.find(id)
	if !ok {
		return models.ErrNotFound
	}
	v.Dialog = &ReleaseDialog{Mode: "edit", TargetID: id, Form: models.Release{
		Version: r.Version, Name: r.Name, Description: r.Description, ReleaseDate: r.ReleaseDate,
	}}
	return nil
}

func (v *ReleasesView) CloseDialog() {
	v.Dialog = nil
}

func ValidateRelease(form models.Release) string {
	if strings.TrimSpace(form.Name) == "" {
		return "Release name is required"
	}
	if strings.TrimSpace(form.Version) == "" {
		return "Release version is required"
	}
	if strings.TrimSpace(form.ReleaseDate) != "" {
		if _, ok := form.Date(time.UTC); !ok {
			return "Release date is invalid (use YYYY-MM-DD)"
		}
	}
	return ""
}

// Submit creates or updates depending on the open dialog, then reloads.
func (v *ReleasesView) Submit(ctx context.Context, api services.ReleasesAPI, form models.Release) error {
	if v.Dialog == nil {
		v.OpenCreate()
	}
	v.Dialog.Form = form
	if msg := ValidateRelease(form); msg != "" {
		v.Dialog.Error = msg
		return ErrValidation
	}

	var err error
	if v.Dialog.Mode == "edit" {
		_, err = api.Update(ctx, v.Dialog.TargetID, form)
	} else {
		_, err = api.Create(ctx, form)
	}
	if err != nil {
		v.Alert = "Failed to save release: " + tools.ErrorMessage(err)
		v.Dialog.Error = tools.ErrorMessage(err)
		return err
	}

	v.Dialog = nil
	v.Alert = ""
	return v.Reload(ctx, api)
}

func (v *ReleasesView) RequestDelete(id int64) error {
	if _, ok := v.find(id); !ok {
		return models.ErrNotFound
	}
	v.PendingDelete = &id
	return nil
}

func (v *ReleasesView) CancelDelete() {
	v.PendingDelete = nil
}

func (v *ReleasesView) ConfirmDelete(ctx context.Context, api services.ReleasesAPI) error {
	if v.PendingDelete == nil {
		return fmt.Errorf("%w: no release selected for deletion", ErrInvalidAction)
	}
	id := *v.PendingDelete
	v.PendingDelete = nil
	if err := api.Delete(ctx, id); err != nil {
		v.Alert = "Failed to delete release: " + tools.ErrorMessage(err)
		return err
	}
	v.Alert = ""
	return v.Reload(ctx, api)
}

func (v *ReleasesView) find(id int64) (models.Release, bool) {
	for _, r := range v.Releases {
		if r.ID == id {
			return r, true
		}
	}
	return models.Release{}, false
}

func (v *ReleasesView) Snapshot(now time.Time) ReleasesSnapshot {
	snap := ReleasesSnapshot{Rows: make([]ReleaseRow, 0, len(v.Releases)), Alert: v.Alert}
	for _, r := range v.Releases {
		snap.Rows = append(snap.Rows, ReleaseRow{
			Release:  r,
			Status:   ReleaseStatusLabel(r, now),
			Progress: r.ProgressValue(),
			Route:    "/releases/" + strconv.FormatInt(r.ID, 10),
			Actions:  []RowAction{{Name: "edit", StopPropagation: true}, {Name: "delete", StopPropagation: true}},
		})
	}
	if len(snap.Rows) == 0 && v.Alert == "" {
		snap.EmptyState = "No releases found. Create your first release to get started."
	}
	if v.Dialog != nil {
		d := *v.Dialog
		snap.Dialog = &d
	}
	if v.PendingDelete != nil {
		id := *v.PendingDelete
		snap.ConfirmDelete = &id
	}
	return snap
}

// ReleaseDetailSnapshot is the release detail route.
type ReleaseDetailSnapshot struct {
	Release    models.Release `json:"release"`
	Status     StatusLabel    `json:"status"`
	Progress   float64        `json:"progress_value"`
	Executions []ExecutionRow `json:"executions"`
	Counts     map[string]int `json:"counts"`
}

func BuildReleaseDetail(r models.Release, executions []models.Execution, now time.Time) ReleaseDetailSnapshot {
	snap := ReleaseDetailSnapshot{
		Release:    r,
		Status:     ReleaseStatusLabel(r, now),
		Progress:   r.ProgressValue(),
		Executions: make([]ExecutionRow, 0, len(executions)),
		Counts:     map[string]int{},
	}
	for _, e := range executions {
		snap.Executions = append(snap.Executions, executionRow(e, nil, nil))
		snap.Counts[normalizedStatus(e.Status)]++
	}
	return snap
}
