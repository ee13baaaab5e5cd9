package services

import (
	"context"

	"testdesk/models"
)

type TestCasesAPI interface {
	List(ctx context.Context) ([]models.TestCase, error)
	Hierarchy(ctx context.Context) (models.Hierarchy, error)
}

type testCasesAPI struct {
	backend Backend
}

func NewTestCasesAPI(backend Backend) TestCasesAPI {
	return &testCasesAPI{backend: backend}
}

func (s *testCasesAPI) List(ctx context.Context) ([]models.TestCase, error) {
	var out []models.TestCase
	if err := s.backend.Get(ctx, "/test-cases", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Hierarchy returns the whole module → sub-module → feature map in one call.
func (s *testCasesAPI) Hierarchy(ctx context.Context) (models.Hierarchy, error) {
	out := models.Hierarchy{}
	if err := s.backend.Get(ctx, "/test-cases/hierarchy-structure", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = models.Hierarchy{}
	}
	return out, nil
}
