package services

import (
	"context"
	"fmt"
	"strings"

	"testdesk/models"
)

type ModulesAPI interface {
	List(ctx context.Context) ([]models.Module, error)
	Get(ctx context.Context, id int64) (models.Module, error)
	Create(ctx context.Context, form models.ModuleForm) (models.Module, error)
	Update(ctx context.Context, id int64, form models.ModuleForm) (models.Module, error)
	Delete(ctx context.Context, id int64) error
}

type SubModulesAPI interface {
	Create(ctx context.Context, moduleID int64, form models.ModuleForm) (models.SubModule, error)
	Update(ctx context.Context, id int64, form models.ModuleForm) (models.SubModule, error)
	Delete(ctx context.Context, id int64) error
}

type FeaturesAPI interface {
	Create(ctx context.Context, subModuleID int64, form models.ModuleForm) (models.Feature, error)
	Update(ctx context.Context, id int64, form models.ModuleForm) (models.Feature, error)
	Delete(ctx context.Context, id int64) error
}

type modulesAPI struct {
	backend Backend
}

func NewModulesAPI(backend Backend) ModulesAPI {
	return &modulesAPI{backend: backend}
}

func (s *modulesAPI) List(ctx context.Context) ([]models.Module, error) {
	var out []models.Module
	if err := s.backend.Get(ctx, "/modules", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *modulesAPI) Get(ctx context.Context, id int64) (models.Module, error) {
	var out models.Module
	err := s.backend.Get(ctx, fmt.Sprintf("/modules/%d", id), nil, &out)
	return out, err
}

func (s *modulesAPI) Create(ctx context.Context, form models.ModuleForm) (models.Module, error) {
	var out models.Module
	body := models.Module{Name: strings.TrimSpace(form.Name), Description: form.Description}
	err := s.backend.Post(ctx, "/modules", nil, body, &out)
	return out, err
}

func (s *modulesAPI) Update(ctx context.Context, id int64, form models.ModuleForm) (models.Module, error) {
	var out models.Module
	body := models.Module{Name: strings.TrimSpace(form.Name), Description: form.Description}
	err := s.backend.Put(ctx, fmt.Sprintf("/modules/%d", id), body, &out)
	return out, err
}

func (s *modulesAPI) Delete(ctx context.Context, id int64) error {
	return s.backend.Delete(ctx, fmt.Sprintf("/modules/%d", id))
}

type subModulesAPI struct {
	backend Backend
}

func NewSubModulesAPI(backend Backend) SubModulesAPI {
	return &subModulesAPI{backend: backend}
}

func (s *subModulesAPI) Create(ctx context.Context, moduleID int64, form models.ModuleForm) (models.SubModule, error) {
	var out models.SubModule
	body := models.SubModule{Name: strings.TrimSpace(form.Name), Description: form.Description, ModuleID: moduleID}
	err := s.backend.Post(ctx, "/sub-modules", nil, body, &out)
	return out, err
}

func (s *subModulesAPI) Update(ctx context.Context, id int64, form models.ModuleForm) (models.SubModule, error) {
	var out models.SubModule
	// The hierarchy carries no sub-module description; an empty one is left
	// untouched on the backend.
	body := map[string]any{"name": strings.TrimSpace(form.Name)}
	if strings.TrimSpace(form.Description) != "" {
		body["description"] = form.Description
	}
	err := s.backend.Put(ctx, fmt.Sprintf("/sub-modules/%d", id), body, &out)
	return out, err
}

func (s *subModulesAPI) Delete(ctx context.Context, id int64) error {
	return s.backend.Delete(ctx, fmt.Sprintf("/sub-modules/%d", id))
}

type featuresAPI struct {
	backend Backend
}

func NewFeaturesAPI(backend Backend) FeaturesAPI {
	return &featuresAPI{backend: backend}
}

func (s *featuresAPI) Create(ctx context.Context, subModuleID int64, form models.ModuleForm) (models.Feature, error) {
	var out models.Feature
	body := models.Feature{Name: strings.TrimSpace(form.Name), Description: form.Description, SubModuleID: subModuleID}
	err := s.backend.Post(ctx, "/features", nil, body, &out)
	return out, err
}

func (s *featuresAPI) Update(ctx context.Context, id int64, form models.ModuleForm) (models.Feature, error) {
	var out models.Feature
	body := map[string]any{"name": strings.TrimSpace(form.Name), "description": form.Description}
	err := s.backend.Put(ctx, fmt.Sprintf("/features/%d", id), body, &out)
	return out, err
}

func (s *featuresAPI) Delete(ctx context.Context, id int64) error {
	return s.backend.Delete(ctx, fmt.Sprintf("/features/%d", id))
}
