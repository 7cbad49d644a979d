package repository

import (
	"context"
	"errors"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HostRepository struct {
	db *gorm.DB
}

func NewHostRepository(db *gorm.DB) *HostRepository {
	return &HostRepository{db: db}
}

func (r *HostRepository) List(ctx context.Context) ([]models.HostProfile, error) {
	var hosts []models.HostProfile
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&hosts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return hosts, nil
}

func (r *HostRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HostProfile, error) {
	var host models.HostProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&host).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Host", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &host, nil
}

// GetByAccountID returns nil, nil when the account has no host profile.
func (r *HostRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*models.HostProfile, error) {
	var host models.HostProfile
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&host).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &host, nil
}

func (r *HostRepository) Create(ctx context.Context, host *models.HostProfile) error {
	if err := r.db.WithContext(ctx).Create(host).Error; err != nil {
		return translateHostError(err)
	}
	return nil
}

// Update writes every column of an existing host. A host deleted in the meantime is
// reported as not found rather than recreated.
func (r *HostRepository) Update(ctx context.Context, host *models.HostProfile) error {
	result := r.db.WithContext(ctx).Model(host).Select("*").Updates(host)
	if result.Error != nil {
		return translateHostError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Host", host.ID)
	}
	return nil
}

// Delete removes the host profile and all of its listings. The owning account is kept.
func (r *HostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("host_id = ?", id).Delete(&models.Listing{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		result := tx.Where("id = ?", id).Delete(&models.HostProfile{})
		if result.Error != nil {
			return models.NewInternalError(result.Error)
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("Host", id)
		}
		return nil
	})
}

func translateHostError(err error) error {
	if violatesColumn(err, "phone") {
		return models.NewDuplicatePhoneError()
	}
	return models.NewInternalError(err)
}
