package service

import (
	"context"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/farellandr/hostspot/internal/repository"
	"github.com/sirupsen/logrus"
)

type CategoryService struct {
	store  *repository.Store
	cache  SnapshotCache
	logger logrus.FieldLogger
}

func NewCategoryService(store *repository.Store, cache SnapshotCache, logger logrus.FieldLogger) *CategoryService {
	return &CategoryService{store: store, cache: cache, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(categories), nil
}

// Get looks a category up by id or exact name.
func (s *CategoryService) Get(ctx context.Context, token string) (*models.Category, error) {
	category, err := ResolveCategory(ctx, s.store.Categories, token)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, models.NewNotFoundError("Category", token)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, token string) error {
	category, err := s.Get(ctx, token)
	if err != nil {
		return err
	}
	if err := s.store.Categories.Delete(ctx, category.ID); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger)
	s.logger.WithFields(logrus.Fields{"category_id": category.ID, "name": category.Name}).Info("category deleted")
	return nil
}
