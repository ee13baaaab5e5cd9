package pages

import (
	"context"
	"errors"
	"testing"

	"testdesk/models"
	"testdesk/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuesView_MountLoadsStatsAndList(t *testing.T) {
	api := &mockIssues{statsFunc: func() ([]models.IssueStats, error) {
		return []models.IssueStats{{ModuleID: 1, ModuleName: "Payments", Open: 2, Closed: 1, Total: 3}}, nil
	}}
	var v IssuesView
	require.NoError(t, v.Mount(context.Background(), api, 25))

	assert.Equal(t, models.IssueFilter{Page: 1, PageSize: 25}, api.filters[0])
	snap := v.Snapshot()
	require.Len(t, snap.Stats, 1)
	assert.Equal(t, int64(3), snap.Stats[0].Total)
	assert.NotNil(t, snap.Issues)
	assert.Zero(t, snap.RefreshKey)
}

func TestIssuesView_SaveCreatesOrUpdates(t *testing.T) {
	var created, updated []models.Issue
	api := &mockIssues{
		createFunc: func(i models.Issue) (models.Issue, error) { created = append(created, i); return i, nil },
		updateFunc: func(id int64, i models.Issue) (models.Issue, error) { updated = append(updated, i); return i, nil },
	}
	var v IssuesView
	ctx := context.Background()
	require.NoError(t, v.Mount(ctx, api, 10))

	v.OpenDialog(nil)
	n, err := v.Save(ctx, api, models.Issue{Title: "Broken export"})
	require.NoError(t, err)
	assert.Equal(t, Notice{Severity: models.TOAST_SUCCESS, Message: "Issue created successfully"}, n)
	assert.Len(t, created, 1)
	assert.Equal(t, 1, v.RefreshKey)
	assert.Equal(t, 2, api.statsHits)
	assert.Equal(t, 2, api.listHits)

	v.OpenDialog(&models.Issue{ID: 4, Title: "Old"})
	n, err = v.Save(ctx, api, models.Issue{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "Issue updated successfully", n.Message)
	require.Len(t, updated, 1)
	assert.Equal(t, 2, v.RefreshKey)
	assert.Nil(t, v.Dialog)
}

func TestIssuesView_SaveErrorNotice(t *testing.T) {
	api := &mockIssues{createFunc: func(models.Issue) (models.Issue, error) {
		return models.Issue{}, &tools.BackendAPIError{StatusCode: 400, Body: `{"detail":"Module not found"}`}
	}}
	var v IssuesView
	ctx := context.Background()
	require.NoError(t, v.Mount(ctx, api, 10))

	v.OpenDialog(nil)
	n, err := v.Save(ctx, api, models.Issue{Title: "x"})
	require.Error(t, err)
	assert.Equal(t, Notice{Severity: models.TOAST_ERROR, Message: "Failed to save issue: Module not found"}, n)
	assert.Zero(t, v.RefreshKey)
	assert.NotNil(t, v.Dialog)
}

func TestIssuesView_TitleRequired(t *testing.T) {
	api := &mockIssues{}
	var v IssuesView
	_, err := v.Save(context.Background(), api, models.Issue{Title: " "})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Issue title is required", v.Dialog.Error)
	assert.Zero(t, api.listHits)
}

func TestIssuesView_FilterResetsPage(t *testing.T) {
	api := &mockIssues{}
	var v IssuesView
	ctx := context.Background()
	require.NoError(t, v.Mount(ctx, api, 10))

	require.NoError(t, v.ApplyFilter(ctx, api, models.IssueFilter{Page: 3, PageSize: 10}))
	assert.Equal(t, 3, v.Filter.Page)

	require.NoError(t, v.ApplyFilter(ctx, api, models.IssueFilter{Page: 3, PageSize: 10, Status: "open"}))
	assert.Equal(t, 1, v.Filter.Page)
	assert.Equal(t, "open", v.Filter.Status)
	assert.Equal(t, 1, api.statsHits)

	assert.Error(t, v.ApplyFilter(ctx, api, models.IssueFilter{PageSize: 3}))
}

func TestIssuesView_DeleteAndDetail(t *testing.T) {
	api := &mockIssues{getFunc: func(id int64) (models.Issue, error) {
		if id == 404 {
			return models.Issue{}, &tools.BackendAPIError{StatusCode: 404}
		}
		return models.Issue{ID: id, Title: "t"}, nil
	}}
	var v IssuesView
	ctx := context.Background()
	require.NoError(t, v.Mount(ctx, api, 10))

	assert.ErrorIs(t, v.OpenDetail(ctx, api, 404), models.ErrNotFound)
	require.NoError(t, v.OpenDetail(ctx, api, 6))
	assert.Equal(t, "t", v.Snapshot().Detail.Title)

	n, err := v.Delete(ctx, api, 6)
	require.NoError(t, err)
	assert.Equal(t, models.TOAST_SUCCESS, n.Severity)
	assert.Nil(t, v.Detail)
	assert.Equal(t, 1, v.RefreshKey)

	api.deleteFunc = func(int64) error { return errors.New("locked") }
	n, err = v.Delete(ctx, api, 7)
	require.Error(t, err)
	assert.Equal(t, "Failed to delete issue: locked", n.Message)
}
