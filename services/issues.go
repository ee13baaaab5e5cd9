package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"testdesk/models"
)

type IssueService interface {
	Stats(ctx context.Context) ([]models.IssueStats, error)
	List(ctx context.Context, filter models.IssueFilter) (models.IssuePage, error)
	Get(ctx context.Context, id int64) (models.Issue, error)
	Create(ctx context.Context, issue models.Issue) (models.Issue, error)
	Update(ctx context.Context, id int64, issue models.Issue) (models.Issue, error)
	Delete(ctx context.Context, id int64) error
}

type issueService struct {
	backend Backend
}

func NewIssueService(backend Backend) IssueService {
	return &issueService{backend: backend}
}

func (s *issueService) Stats(ctx context.Context) ([]models.IssueStats, error) {
	var out []models.IssueStats
	if err := s.backend.Get(ctx, "/issues/stats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *issueService) List(ctx context.Context, filter models.IssueFilter) (models.IssuePage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(filter.Page))
	query.Set("page_size", strconv.Itoa(filter.PageSize))
	if filter.ModuleID > 0 {
		query.Set("module_id", strconv.FormatInt(filter.ModuleID, 10))
	}
	if s := strings.TrimSpace(filter.Status); s != "" {
		query.Set("status", s)
	}

	var out models.IssuePage
	if err := s.backend.Get(ctx, "/issues", query, &out); err != nil {
		return models.IssuePage{}, err
	}
	if out.Items == nil {
		out.Items = []models.Issue{}
	}
	return out, nil
}

func (s *issueService) Get(ctx context.Context, id int64) (models.Issue, error) {
	var out models.Issue
	err := s.backend.Get(ctx, fmt.Sprintf("/issues/%d", id), nil, &out)
	return out, err
}

func (s *issueService) Create(ctx context.Context, issue models.Issue) (models.Issue, error) {
	var out models.Issue
	issue.ID = 0
	err := s.backend.Post(ctx, "/issues", nil, issue, &out)
	return out, err
}

func (s *issueService) Update(ctx context.Context, id int64, issue models.Issue) (models.Issue, error) {
	var out models.Issue
	issue.ID = id
	err := s.backend.Put(ctx, fmt.Sprintf("/issues/%d", id), issue, &out)
	return out, err
}

func (s *issueService) Delete(ctx context.Context, id int64) error {
	return s.backend.Delete(ctx, fmt.Sprintf("/issues/%d", id))
}
