package service

import (
	"github.com/doualadrive/backend-go/internal/database/repository"
)

// LookupService exposes the name lookup tables backing the public
// read-only endpoints.
type LookupService interface {
	GetVehicleCategories() ([]NamedRef, error)
	GetVehicleStatuses() ([]NamedRef, error)
	GetArticleCategories() ([]NamedRef, error)
	GetArticleStatuses() ([]NamedRef, error)
	GetTags() ([]NamedRef, error)
}

type lookupService struct {
	categoryRepo        repository.CategoryRepository
	statusRepo          repository.StatusRepository
	categoryArticleRepo repository.CategoryArticleRepository
	statusArticleRepo   repository.StatusArticleRepository
	tagRepo             repository.TagRepository
}

// NewLookupService creates a new lookup service instance
func NewLookupService(
	categoryRepo repository.CategoryRepository,
	statusRepo repository.StatusRepository,
	categoryArticleRepo repository.CategoryArticleRepository,
	statusArticleRepo repository.StatusArticleRepository,
	tagRepo repository.TagRepository,
) LookupService {
	return &lookupService{
		categoryRepo:        categoryRepo,
		statusRepo:          statusRepo,
		categoryArticleRepo: categoryArticleRepo,
		statusArticleRepo:   statusArticleRepo,
		tagRepo:             tagRepo,
	}
}

func (s *lookupService) GetVehicleCategories() ([]NamedRef, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	refs := make([]NamedRef, 0, len(categories))
	for _, category := range categories {
		refs = append(refs, NamedRef{ID: category.ID, Name: category.Name})
	}
	return refs, nil
}

func (s *lookupService) GetVehicleStatuses() ([]NamedRef, error) {
	statuses, err := s.statusRepo.FindAll()
	if err != nil {
		return nil, err
	}
	refs := make([]NamedRef, 0, len(statuses))
	for _, status := range statuses {
		refs = append(refs, NamedRef{ID: status.ID, Name: status.Name})
	}
	return refs, nil
}

func (s *lookupService) GetArticleCategories() ([]NamedRef, error) {
	categories, err := s.categoryArticleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	refs := make([]NamedRef, 0, len(categories))
	for _, category := range categories {
		refs = append(refs, NamedRef{ID: category.ID, Name: category.Name})
	}
	return refs, nil
}

func (s *lookupService) GetArticleStatuses() ([]NamedRef, error) {
	statuses, err := s.statusArticleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	refs := make([]NamedRef, 0, len(statuses))
	for _, status := range statuses {
		refs = append(refs, NamedRef{ID: status.ID, Name: status.Name})
	}
	return refs, nil
}

func (s *lookupService) GetTags() ([]NamedRef, error) {
	tags, err := s.tagRepo.FindAll()
	if err != nil {
		return nil, err
	}
	refs := make([]NamedRef, 0, len(tags))
	for _, tag := range tags {
		refs = append(refs, NamedRef{ID: tag.ID, Name: tag.Name})
	}
	return refs, nil
}
