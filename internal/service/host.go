package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/farellandr/hostspot/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HostPatch updates only the supplied fields. An empty PhoneNumber or Address clears it,
// an empty Category removes the host from its category, and a null coordinate clears it.
type HostPatch struct {
	Bio         *string
	PhoneNumber *string
	Category    *string
	IsVerified  *bool
	Address     *string
	Latitude    Nullable[float64]
	Longitude   Nullable[float64]
}

type HostService struct {
	store  *repository.Store
	cache  SnapshotCache
	logger logrus.FieldLogger
}

func NewHostService(store *repository.Store, cache SnapshotCache, logger logrus.FieldLogger) *HostService {
	return &HostService{store: store, cache: cache, logger: logger}
}

func (s *HostService) List(ctx context.Context) ([]models.HostProfile, error) {
	hosts, err := s.store.Hosts.List(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(hosts), nil
}

func (s *HostService) Get(ctx context.Context, id uuid.UUID) (*models.HostProfile, error) {
	return s.store.Hosts.GetByID(ctx, id)
}

func (s *HostService) Patch(ctx context.Context, id uuid.UUID, patch HostPatch) (*models.HostProfile, error) {
	if !inRange(patch.Latitude, 90) || !inRange(patch.Longitude, 180) {
		return nil, models.NewValidationError("business_latitude must be within ±90 and business_longitude within ±180.")
	}

	host, err := s.store.Hosts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Bio != nil {
		host.Bio = *patch.Bio
	}
	if patch.PhoneNumber != nil {
		host.PhoneNumber = optional(strings.TrimSpace(*patch.PhoneNumber))
	}
	if patch.Category != nil {
		if strings.TrimSpace(*patch.Category) == "" {
			host.CategoryID = nil
		} else {
			category, err := ResolveCategory(ctx, s.store.Categories, *patch.Category)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, models.NewValidationError(fmt.Sprintf("Category %q does not exist.", *patch.Category))
			}
			host.CategoryID = &category.ID
		}
	}
	if patch.IsVerified != nil {
		host.IsVerified = *patch.IsVerified
	}
	if patch.Address != nil {
		host.BusinessAddress = optional(*patch.Address)
	}
	patch.Latitude.apply(&host.BusinessLatitude)
	patch.Longitude.apply(&host.BusinessLongitude)

	if err := s.store.Hosts.Update(ctx, host); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger)
	return host, nil
}

// Delete removes the host profile and its listings. The account stays and logs in as a
// plain user afterwards.
func (s *HostService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Hosts.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger)
	s.logger.WithField("host_id", id).Info("host deleted")
	return nil
}

func inRange(coord Nullable[float64], limit float64) bool {
	return coord.Value == nil || (*coord.Value >= -limit && *coord.Value <= limit)
}
