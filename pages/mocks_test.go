package pages

import (
	"context"

	"testdesk/models"
)

type mockModules struct {
	listFunc   func() ([]models.Module, error)
	createFunc func(form models.ModuleForm) (models.Module, error)
	updateFunc func(id int64, form models.ModuleForm) (models.Module, error)
	deleteFunc func(id int64) error
	deleted    []int64
}

func (m *mockModules) List(ctx context.Context) ([]models.Module, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return []models.Module{}, nil
}

func (m *mockModules) Get(ctx context.Context, id int64) (models.Module, error) {
	return models.Module{ID: id}, nil
}

func (m *mockModules) Create(ctx context.Context, form models.ModuleForm) (models.Module, error) {
	if m.createFunc != nil {
		return m.createFunc(form)
	}
	return models.Module{ID: 1, Name: form.Name}, nil
}

func (m *mockModules) Update(ctx context.Context, id int64, form models.ModuleForm) (models.Module, error) {
	if m.updateFunc != nil {
		return m.updateFunc(id, form)
	}
	return models.Module{ID: id, Name: form.Name}, nil
}

func (m *mockModules) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

// mockChildren serves both sub-modules and features.
type mockChildren struct {
	created []int64
	updated []int64
	deleted []int64
}

func (m *mockChildren) create(parentID int64) {
	m.created = append(m.created, parentID)
}

type mockSubModules struct{ mockChildren }

func (m *mockSubModules) Create(ctx context.Context, moduleID int64, form models.ModuleForm) (models.SubModule, error) {
	m.create(moduleID)
	return models.SubModule{Name: form.Name, ModuleID: moduleID}, nil
}

func (m *mockSubModules) Update(ctx context.Context, id int64, form models.ModuleForm) (models.SubModule, error) {
	m.updated = append(m.updated, id)
	return models.SubModule{ID: id, Name: form.Name}, nil
}

func (m *mockSubModules) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockFeatures struct{ mockChildren }

func (m *mockFeatures) Create(ctx context.Context, subModuleID int64, form models.ModuleForm) (models.Feature, error) {
	m.create(subModuleID)
	return models.Feature{Name: form.Name, SubModuleID: subModuleID}, nil
}

func (m *mockFeatures) Update(ctx context.Context, id int64, form models.ModuleForm) (models.Feature, error) {
	m.updated = append(m.updated, id)
	return models.Feature{ID: id, Name: form.Name}, nil
}

func (m *mockFeatures) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockTestCases struct {
	listFunc      func() ([]models.TestCase, error)
	hierarchyFunc func() (models.Hierarchy, error)
	hierarchyHits int
}

func (m *mockTestCases) List(ctx context.Context) ([]models.TestCase, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return []models.TestCase{}, nil
}

func (m *mockTestCases) Hierarchy(ctx context.Context) (models.Hierarchy, error) {
	m.hierarchyHits++
	if m.hierarchyFunc != nil {
		return m.hierarchyFunc()
	}
	return models.Hierarchy{}, nil
}

type mockReleases struct {
	listFunc   func() ([]models.Release, error)
	createFunc func(form models.Release) (models.Release, error)
	listHits   int
	created    []models.Release
	updated    []int64
	deleted    []int64
}

func (m *mockReleases) List(ctx context.Context) ([]models.Release, error) {
	m.listHits++
	if m.listFunc != nil {
		return m.listFunc()
	}
	return []models.Release{}, nil
}

func (m *mockReleases) Get(ctx context.Context, id int64) (models.Release, error) {
	return models.Release{ID: id}, nil
}

func (m *mockReleases) Create(ctx context.Context, form models.Release) (models.Release, error) {
	m.created = append(m.created, form)
	if m.createFunc != nil {
		return m.createFunc(form)
	}
	return form, nil
}

func (m *mockReleases) Update(ctx context.Context, id int64, form models.Release) (models.Release, error) {
	m.updated = append(m.updated, id)
	return form, nil
}

func (m *mockReleases) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockExecutions struct {
	listFunc    func() ([]models.Execution, error)
	executeFunc func(req models.ExecuteRequest) error
	listHits    int
	executed    []models.ExecuteRequest
}

func (m *mockExecutions) List(ctx context.Context, releaseID int64) ([]models.Execution, error) {
	m.listHits++
	if m.listFunc != nil {
		return m.listFunc()
	}
	return []models.Execution{}, nil
}

func (m *mockExecutions) Execute(ctx context.Context, req models.ExecuteRequest) error {
	m.executed = append(m.executed, req)
	if m.executeFunc != nil {
		return m.executeFunc(req)
	}
	return nil
}

type mockIssues struct {
	statsFunc  func() ([]models.IssueStats, error)
	listFunc   func(filter models.IssueFilter) (models.IssuePage, error)
	getFunc    func(id int64) (models.Issue, error)
	createFunc func(issue models.Issue) (models.Issue, error)
	updateFunc func(id int64, issue models.Issue) (models.Issue, error)
	deleteFunc func(id int64) error
	statsHits  int
	listHits   int
	filters    []models.IssueFilter
}

func (m *mockIssues) Stats(ctx context.Context) ([]models.IssueStats, error) {
	m.statsHits++
	if m.statsFunc != nil {
		return m.statsFunc()
	}
	return []models.IssueStats{}, nil
}

func (m *mockIssues) List(ctx context.Context, filter models.IssueFilter) (models.IssuePage, error) {
	m.listHits++
	m.filters = append(m.filters, filter)
	if m.listFunc != nil {
		return m.listFunc(filter)
	}
	return models.IssuePage{Items: []models.Issue{}, Page: filter.Page, PageSize: filter.PageSize}, nil
}

func (m *mockIssues) Get(ctx context.Context, id int64) (models.Issue, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return models.Issue{ID: id}, nil
}

func (m *mockIssues) Create(ctx context.Context, issue models.Issue) (models.Issue, error) {
	if m.createFunc != nil {
		return m.createFunc(issue)
	}
	issue.ID = 1
	return issue, nil
}

func (m *mockIssues) Update(ctx context.Context, id int64, issue models.Issue) (models.Issue, error) {
	if m.updateFunc != nil {
		return m.updateFunc(id, issue)
	}
	issue.ID = id
	return issue, nil
}

func (m *mockIssues) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

type mockAuth struct {
	registerFunc func(form models.RegisterForm) error
	resetFunc    func(token, password string) error
	calls        int
}

func (m *mockAuth) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	m.calls++
	return models.LoginResponse{}, nil
}

func (m *mockAuth) Register(ctx context.Context, form models.RegisterForm) error {
	m.calls++
	if m.registerFunc != nil {
		return m.registerFunc(form)
	}
	return nil
}

func (m *mockAuth) ForgotPassword(ctx context.Context, email string) error {
	m.calls++
	return nil
}

func (m *mockAuth) ResetPassword(ctx context.Context, token, newPassword string) error {
	m.calls++
	if m.resetFunc != nil {
		return m.resetFunc(token, newPassword)
	}
	return nil
}
