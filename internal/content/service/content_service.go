// Package service wires validation, avatar encoding and the two stores into
// the operations the HTTP layer exposes.
package service

import (
	"context"

	"github.com/stefdorosh/portfolio-backend/internal/content/avatar"
	"github.com/stefdorosh/portfolio-backend/internal/content/cache"
	"github.com/stefdorosh/portfolio-backend/internal/content/domain"
	"github.com/stefdorosh/portfolio-backend/internal/content/filter"
	"github.com/stefdorosh/portfolio-backend/internal/content/repository"
	"github.com/stefdorosh/portfolio-backend/internal/content/slug"
	"github.com/stefdorosh/portfolio-backend/internal/content/validate"
)

// ContentService handles portfolio content business logic.
type ContentService struct {
	projects *repository.ProjectRepository
	hero     *repository.HeroRepository
	validate *validate.Validator
	cache    *cache.Cache
}

// NewContentService creates a content service. cache may be nil.
func NewContentService(projects *repository.ProjectRepository, hero *repository.HeroRepository, v *validate.Validator, c *cache.Cache) *ContentService {
	return &ContentService{
		projects: projects,
		hero:     hero,
		validate: v,
		cache:    c,
	}
}

// ListProjects returns all projects, newest first. Query and tags narrow the
// listing: query matches title or description case-insensitively, tags use
// AND semantics.
func (s *ContentService) ListProjects(ctx context.Context, query string, tags []string) ([]domain.Project, error) {
	all, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" && len(tags) == 0 {
		return all, nil
	}
	return filter.Apply(all, query, tags), nil
}

// AllTags returns the sorted union of every project's keywords.
func (s *ContentService) AllTags(ctx context.Context) ([]string, error) {
	all, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return filter.AllTags(all), nil
}

// GetProject fetches one project by id.
func (s *ContentService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// GetProjectBySlug resolves a derived slug against the full listing. On
// duplicate slugs the first project in listing order wins.
func (s *ContentService) GetProjectBySlug(ctx context.Context, target string) (*domain.Project, error) {
	all, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := slug.Resolve(all, target)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// CreateProject validates the draft and persists a new project.
func (s *ContentService) CreateProject(ctx context.Context, draft domain.ProjectDraft) (*domain.Project, error) {
	if err := s.validate.ProjectDraft(&draft); err != nil {
		return nil, err
	}
	p, err := s.projects.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateProjects(ctx)
	return p, nil
}

// UpdateProject validates and applies a partial update.
func (s *ContentService) UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	if err := s.validate.ProjectPatch(&patch); err != nil {
		return nil, err
	}
	p, err := s.projects.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateProjects(ctx)
	return p, nil
}

// DeleteProject removes a project permanently and returns the deleted
// record.
func (s *ContentService) DeleteProject(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateProjects(ctx)
	return p, nil
}

// GetHero returns the persisted hero or the compiled-in default.
func (s *ContentService) GetHero(ctx context.Context) (*domain.Hero, error) {
	if h, ok := s.cache.Hero(ctx); ok {
		return h, nil
	}
	h, err := s.hero.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetHero(ctx, h)
	return h, nil
}

// UpsertHero merges the patch into the singleton hero record, creating it on
// first call. When avatarData is non-empty it is encoded into a data URI and
// takes precedence over any avatar string in the patch.
func (s *ContentService) UpsertHero(ctx context.Context, patch domain.HeroPatch, avatarData []byte, avatarType string) (*domain.Hero, error) {
	if len(avatarData) > 0 {
		uri, err := avatar.Encode(avatarData, avatarType)
		if err != nil {
			return nil, err
		}
		patch.Avatar = &uri
	}
	if err := s.validate.HeroPatch(&patch); err != nil {
		return nil, err
	}
	h, err := s.hero.UpsertMerge(ctx, patch)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateHero(ctx)
	return h, nil
}

func (s *ContentService) listAll(ctx context.Context) ([]domain.Project, error) {
	if cached, ok := s.cache.Projects(ctx); ok {
		return cached, nil
	}
	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetProjects(ctx, all)
	return all, nil
}
