package services

import (
	"context"
	"net/url"
	"strconv"

	"testdesk/models"
)

type ExecutionsAPI interface {
	List(ctx context.Context, releaseID int64) ([]models.Execution, error)
	Execute(ctx context.Context, req models.ExecuteRequest) error
}

type executionsAPI struct {
	backend Backend
}

func NewExecutionsAPI(backend Backend) ExecutionsAPI {
	return &executionsAPI{backend: backend}
}

// List returns every execution, or only those of releaseID when it is > 0.
func (s *executionsAPI) List(ctx context.Context, releaseID int64) ([]models.Execution, error) {
	var query url.Values
	if releaseID > 0 {
		query = url.Values{"release_id": {strconv.FormatInt(releaseID, 10)}}
	}
	var out []models.Execution
	if err := s.backend.Get(ctx, "/executions", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *executionsAPI) Execute(ctx context.Context, req models.ExecuteRequest) error {
	return s.backend.Post(ctx, "/executions/execute", nil, req, nil)
}
