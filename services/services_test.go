package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"testdesk/models"
	"testdesk/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	method string
	path   string
	query  url.Values
	body   any
}

type recordingBackend struct {
	calls   []call
	getFunc func(path string, out any) error
}

func (b *recordingBackend) Get(ctx context.Context, path string, query url.Values, out any) error {
	b.calls = append(b.calls, call{method: http.MethodGet, path: path, query: query})
	if b.getFunc != nil {
		return b.getFunc(path, out)
	}
	return nil
}

func (b *recordingBackend) Post(ctx context.Context, path string, query url.Values, body any, out any) error {
	b.calls = append(b.calls, call{method: http.MethodPost, path: path, query: query, body: body})
	return nil
}

func (b *recordingBackend) Put(ctx context.Context, path string, body any, out any) error {
	b.calls = append(b.calls, call{method: http.MethodPut, path: path, body: body})
	return nil
}

func (b *recordingBackend) Delete(ctx context.Context, path string) error {
	b.calls = append(b.calls, call{method: http.MethodDelete, path: path})
	return nil
}

func TestModulesAPI_Paths(t *testing.T) {
	b := &recordingBackend{}
	ctx := context.Background()

	_, _ = NewModulesAPI(b).Create(ctx, models.ModuleForm{Name: "  Payments "})
	_, _ = NewModulesAPI(b).Update(ctx, 4, models.ModuleForm{Name: "P"})
	_ = NewModulesAPI(b).Delete(ctx, 4)
	_, _ = NewSubModulesAPI(b).Create(ctx, 4, models.ModuleForm{Name: "Invoices"})
	_ = NewSubModulesAPI(b).Delete(ctx, 10)
	_, _ = NewFeaturesAPI(b).Create(ctx, 10, models.ModuleForm{Name: "Export"})
	_, _ = NewFeaturesAPI(b).Update(ctx, 100, models.ModuleForm{Name: "Export"})
	_ = NewFeaturesAPI(b).Delete(ctx, 100)

	require.Len(t, b.calls, 8)
	assert.Equal(t, call{method: "POST", path: "/modules", body: models.Module{Name: "Payments"}}, b.calls[0])
	assert.Equal(t, "/modules/4", b.calls[1].path)
	assert.Equal(t, call{method: "DELETE", path: "/modules/4"}, b.calls[2])
	assert.Equal(t, models.SubModule{Name: "Invoices", ModuleID: 4}, b.calls[3].body)
	assert.Equal(t, "/sub-modules/10", b.calls[4].path)
	assert.Equal(t, models.Feature{Name: "Export", SubModuleID: 10}, b.calls[5].body)
	assert.Equal(t, "PUT", b.calls[6].method)
	assert.Equal(t, "/features/100", b.calls[7].path)
}

func TestSubModulesAPI_UpdateKeepsDescription(t *testing.T) {
	b := &recordingBackend{}
	ctx := context.Background()

	_, _ = NewSubModulesAPI(b).Update(ctx, 10, models.ModuleForm{Name: " Billing "})
	_, _ = NewSubModulesAPI(b).Update(ctx, 10, models.ModuleForm{Name: "Billing", Description: "Invoices and refunds"})

	require.Len(t, b.calls, 2)
	assert.Equal(t, call{method: "PUT", path: "/sub-modules/10", body: map[string]any{"name": "Billing"}}, b.calls[0])
	assert.Equal(t, map[string]any{"name": "Billing", "description": "Invoices and refunds"}, b.calls[1].body)
}

func TestExecutionsAPI(t *testing.T) {
	b := &recordingBackend{}
	api := NewExecutionsAPI(b)

	_, _ = api.List(context.Background(), 0)
	_, _ = api.List(context.Background(), 5)
	require.NoError(t, api.Execute(context.Background(), models.ExecuteRequest{TestCaseIDs: []int64{1, 2}, ReleaseID: 5}))

	assert.Nil(t, b.calls[0].query)
	assert.Equal(t, "5", b.calls[1].query.Get("release_id"))
	assert.Equal(t, "/executions/execute", b.calls[2].path)
	assert.Equal(t, models.ExecuteRequest{TestCaseIDs: []int64{1, 2}, ReleaseID: 5}, b.calls[2].body)
}

func TestIssueService_ListQuery(t *testing.T) {
	b := &recordingBackend{}
	page, err := NewIssueService(b).List(context.Background(), models.IssueFilter{Page: 2, PageSize: 25, ModuleID: 3, Status: "open"})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)

	q := b.calls[0].query
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "25", q.Get("page_size"))
	assert.Equal(t, "3", q.Get("module_id"))
	assert.Equal(t, "open", q.Get("status"))
}

func TestIssueService_UpdateCarriesID(t *testing.T) {
	b := &recordingBackend{}
	_, _ = NewIssueService(b).Update(context.Background(), 8, models.Issue{Title: "x"})
	_, _ = NewIssueService(b).Create(context.Background(), models.Issue{ID: 99, Title: "y"})

	assert.Equal(t, models.Issue{ID: 8, Title: "x"}, b.calls[0].body)
	assert.Equal(t, "/issues", b.calls[1].path)
	assert.Equal(t, models.Issue{Title: "y"}, b.calls[1].body)
}

func TestAuthService_ResetPasswordUsesQuery(t *testing.T) {
	b := &recordingBackend{}
	require.NoError(t, NewAuthService(b).ResetPassword(context.Background(), "tok", "supersecret"))

	c := b.calls[0]
	assert.Equal(t, "/auth/reset-password", c.path)
	assert.Equal(t, "tok", c.query.Get("token"))
	assert.Equal(t, "supersecret", c.query.Get("new_password"))
	assert.Nil(t, c.body)
}

func TestAuthService_RegisterDropsConfirm(t *testing.T) {
	b := &recordingBackend{}
	require.NoError(t, NewAuthService(b).Register(context.Background(), models.RegisterForm{
		FullName: "Ana", Email: " ana@centime.com ", Password: "12345678", ConfirmPassword: "12345678",
	}))
	assert.Equal(t, map[string]string{"email": "ana@centime.com", "password": "12345678", "full_name": "Ana"}, b.calls[0].body)
}

func TestTestCasesAPI_HierarchyOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-cases/hierarchy-structure", r.URL.Path)
		_, _ = w.Write([]byte(`{"Core":{"id":1,"sub_modules":{"Auth":{"id":2,"features":["Login"]}}}}`))
	}))
	defer srv.Close()

	api := NewTestCasesAPI(tools.NewBackendClient(srv.URL, time.Second))
	h, err := api.Hierarchy(context.Background())
	require.NoError(t, err)
	assert.True(t, h["Core"].SubModules["Auth"].Features[0].IsLegacy())
}

func TestTestCasesAPI_HierarchyNullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	h, err := NewTestCasesAPI(tools.NewBackendClient(srv.URL, time.Second)).Hierarchy(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, h)
	assert.Empty(t, h)
}
