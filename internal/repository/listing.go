package repository

import (
	"context"
	"errors"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// List returns every listing, or only those whose category name equals categoryName
// when it is non-empty.
func (r *ListingRepository) List(ctx context.Context, categoryName string) ([]models.Listing, error) {
	query := r.db.WithContext(ctx).Model(&models.Listing{})
	if categoryName != "" {
		query = query.
			Joins("JOIN categories ON categories.id = listings.category_id").
			Where("categories.name = ?", categoryName)
	}

	var listings []models.Listing
	if err := query.Order("listings.created_at ASC").Find(&listings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return listings, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Listing", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &listing, nil
}

func (r *ListingRepository) Create(ctx context.Context, listing *models.Listing) error {
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update writes every mutable column of an existing listing. created_at is never
// rewritten, and a listing deleted in the meantime is reported as not found.
func (r *ListingRepository) Update(ctx context.Context, listing *models.Listing) error {
	result := r.db.WithContext(ctx).Model(listing).Select("*").Omit("created_at").Updates(listing)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Listing", listing.ID)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Listing{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Listing", id)
	}
	return nil
}
