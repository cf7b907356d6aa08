package services

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/kyawhtet1234/GoalFlow/internal/domain"
	apperrors "github.com/kyawhtet1234/GoalFlow/internal/errors"
	"github.com/kyawhtet1234/GoalFlow/internal/repository/sqlite"
	"github.com/kyawhtet1234/GoalFlow/internal/validation"
)

// categoryService implements CategoryService over the key-value record
// store. A store that has never been written gets seeded with the default
// categories on first load.
type categoryService struct {
	repository  sqlite.Repository
	mapper      *domain.CategoryMapper
	idGenerator IDGenerator
	validator   *validation.CategoryValidator
	logger      *logrus.Entry

	categories []domain.Category
	loaded     bool
}

// NewCategoryService creates a new category service
func NewCategoryService(repository sqlite.Repository, idGenerator IDGenerator, logger *logrus.Logger) CategoryService {
	return &categoryService{
		repository:  repository,
		mapper:      domain.NewCategoryMapper(),
		idGenerator: idGenerator,
		validator:   validation.NewCategoryValidator(),
		logger:      logger.WithField("component", "category_service"),
	}
}

// Load reads the persisted category document into memory. When the key is
// absent the default categories are seeded and persisted; a storage or
// decode failure falls back to the defaults without persisting.
func (s *categoryService) Load(ctx context.Context) error {
	value, found, err := s.repository.Get(ctx, CategoriesKey)
	if err != nil {
		s.logger.WithError(err).Warn("failed to load categories, using defaults")
		s.categories = domain.DefaultCategories()
		s.loaded = true
		return nil
	}

	if !found {
		s.categories = domain.DefaultCategories()
		s.loaded = true
		s.save(ctx)
		return nil
	}

	var records []domain.CategoryRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		s.logger.WithError(err).Warn("failed to decode categories, using defaults")
		s.categories = domain.DefaultCategories()
		s.loaded = true
		return nil
	}

	s.categories = s.mapper.FromRecordSlice(records)
	s.loaded = true
	return nil
}

// IsLoaded reports whether the persisted document has been read.
func (s *categoryService) IsLoaded() bool {
	return s.loaded
}

func (s *categoryService) ensureLoaded(ctx context.Context) {
	if !s.loaded {
		_ = s.Load(ctx)
	}
}

func (s *categoryService) save(ctx context.Context) {
	records := s.mapper.ToRecordSlice(s.categories)
	data, err := json.Marshal(records)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode categories")
		return
	}

	if err := s.repository.Put(ctx, CategoriesKey, string(data)); err != nil {
		s.logger.WithError(err).Warn("failed to persist categories, keeping in-memory state")
	}
}

// AddCategory appends a new category with a fresh identifier.
func (s *categoryService) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	cleaned, err := s.validator.GetValidName(name)
	if err != nil {
		return nil, err
	}

	s.ensureLoaded(ctx)

	category := domain.NewCategory(s.idGenerator.NewID(), cleaned)
	s.categories = append(s.categories, category)
	s.save(ctx)

	s.logger.WithField("category_id", category.ID).Debug("category created")
	return &category, nil
}

// EditCategory renames an existing category.
func (s *categoryService) EditCategory(ctx context.Context, id string, name string) (*domain.Category, error) {
	if err := s.validator.ValidateCategoryID(id); err != nil {
		return nil, err
	}

	cleaned, err := s.validator.GetValidName(name)
	if err != nil {
		return nil, err
	}

	s.ensureLoaded(ctx)

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = cleaned
			s.save(ctx)

			category := s.categories[i]
			return &category, nil
		}
	}

	return nil, apperrors.NewNotFoundError("category", id)
}

// DeleteCategory removes a category by identifier. Detaching tasks that
// referenced it is the caller's concern.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.validator.ValidateCategoryID(id); err != nil {
		return err
	}

	s.ensureLoaded(ctx)

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			s.save(ctx)
			return nil
		}
	}

	return apperrors.NewNotFoundError("category", id)
}

// GetCategory returns a copy of the category with the given identifier.
func (s *categoryService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if err := s.validator.ValidateCategoryID(id); err != nil {
		return nil, err
	}

	s.ensureLoaded(ctx)

	for _, category := range s.categories {
		if category.ID == id {
			category := category
			return &category, nil
		}
	}

	return nil, apperrors.NewNotFoundError("category", id)
}

// Categories returns a copy of every category in insertion order.
func (s *categoryService) Categories(ctx context.Context) ([]domain.Category, error) {
	s.ensureLoaded(ctx)

	categories := make([]domain.Category, len(s.categories))
	copy(categories, s.categories)
	return categories, nil
}
