package services

import (
	"context"
	"fmt"
	"strings"

	"testdesk/models"
)

type ReleasesAPI interface {
	List(ctx context.Context) ([]models.Release, error)
	Get(ctx context.Context, id int64) (models.Release, error)
	Create(ctx context.Context, form models.Release) (models.Release, error)
	Update(ctx context.Context, id int64, form models.Release) (models.Release, error)
	Delete(ctx context.Context, id int64) error
}

type releasesAPI struct {
	backend Backend
}

func NewReleasesAPI(backend Backend) ReleasesAPI {
	return &releasesAPI{backend: backend}
}

func (s *releasesAPI) List(ctx context.Context) ([]models.Release, error) {
	var out []models.Release
	if err := s.backend.Get(ctx, "/releases", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *releasesAPI) Get(ctx context.Context, id int64) (models.Release, error) {
	var out models.Release
	err := s.backend.Get(ctx, fmt.Sprintf("/releases/%d", id), nil, &out)
	return out, err
}

func (s *releasesAPI) Create(ctx context.Context, form models.Release) (models.Release, error) {
	var out models.Release
	err := s.backend.Post(ctx, "/releases", nil, releaseBody(form), &out)
	return out, err
}

func (s *releasesAPI) Update(ctx context.Context, id int64, form models.Release) (models.Release, error) {
	var out models.Release
	err := s.backend.Put(ctx, fmt.Sprintf("/releases/%d", id), releaseBody(form), &out)
	return out, err
}

func (s *releasesAPI) Delete(ctx context.Context, id int64) error {
	return s.backend.Delete(ctx, fmt.Sprintf("/releases/%d", id))
}

// releaseBody drops the server-owned fields (status, progress).
func releaseBody(form models.Release) map[string]any {
	return map[string]any{
		"version":      strings.TrimSpace(form.Version),
		"name":         strings.TrimSpace(form.Name),
		"description":  form.Description,
		"release_date": strings.TrimSpace(form.ReleaseDate),
	}
}
