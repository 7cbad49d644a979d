package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/farellandr/hostspot/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ListingInput carries every mutable listing field. Host and Category accept an id;
// Category also accepts an exact category name.
type ListingInput struct {
	Host        string
	Category    string
	Title       string
	Description string
	ListingType string
	Latitude    float64
	Longitude   float64
	Address     string
	EventDate   *time.Time
	BookingLink string
	Image       *string
}

// ListingPatch updates only the non-nil fields. EventDate and Image can also be
// cleared with an explicit null.
type ListingPatch struct {
	Host        *string
	Category    *string
	Title       *string
	Description *string
	ListingType *string
	Latitude    *float64
	Longitude   *float64
	Address     *string
	EventDate   Nullable[time.Time]
	BookingLink *string
	Image       Nullable[string]
}

type ListingService struct {
	store  *repository.Store
	cache  SnapshotCache
	logger logrus.FieldLogger
}

func NewListingService(store *repository.Store, cache SnapshotCache, logger logrus.FieldLogger) *ListingService {
	return &ListingService{store: store, cache: cache, logger: logger}
}

// List returns all listings, or those whose category name equals category exactly.
func (s *ListingService) List(ctx context.Context, category string) ([]models.Listing, error) {
	listings, err := s.store.Listings.List(ctx, category)
	if err != nil {
		return nil, err
	}
	return nonNil(listings), nil
}

func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	return s.store.Listings.GetByID(ctx, id)
}

func (s *ListingService) Create(ctx context.Context, in ListingInput) (*models.Listing, error) {
	listing := &models.Listing{}
	if err := s.apply(ctx, listing, in); err != nil {
		return nil, err
	}
	if err := s.store.Listings.Create(ctx, listing); err != nil {
		return nil, err
	}

	invalidate(ctx, s.cache, s.logger)
	s.logger.WithFields(logrus.Fields{"listing_id": listing.ID, "host_id": listing.HostID}).Info("listing created")
	return listing, nil
}

// Update replaces every mutable field of an existing listing.
func (s *ListingService) Update(ctx context.Context, id uuid.UUID, in ListingInput) (*models.Listing, error) {
	listing, err := s.store.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, listing, in); err != nil {
		return nil, err
	}
	return s.save(ctx, listing)
}

func (s *ListingService) Patch(ctx context.Context, id uuid.UUID, patch ListingPatch) (*models.Listing, error) {
	listing, err := s.store.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in := ListingInput{
		Host:        listing.HostID.String(),
		Category:    listing.CategoryID.String(),
		Title:       listing.Title,
		Description: listing.Description,
		ListingType: listing.ListingType,
		Latitude:    listing.Latitude,
		Longitude:   listing.Longitude,
		Address:     listing.Address,
		EventDate:   listing.EventDate,
		BookingLink: listing.BookingLink,
		Image:       listing.Image,
	}
	if patch.Host != nil {
		in.Host = *patch.Host
	}
	if patch.Category != nil {
		in.Category = *patch.Category
	}
	if patch.Title != nil {
		in.Title = *patch.Title
	}
	if patch.Description != nil {
		in.Description = *patch.Description
	}
	if patch.ListingType != nil {
		in.ListingType = *patch.ListingType
	}
	if patch.Latitude != nil {
		in.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		in.Longitude = *patch.Longitude
	}
	if patch.Address != nil {
		in.Address = *patch.Address
	}
	patch.EventDate.apply(&in.EventDate)
	if patch.BookingLink != nil {
		in.BookingLink = *patch.BookingLink
	}
	patch.Image.apply(&in.Image)

	if err := s.apply(ctx, listing, in); err != nil {
		return nil, err
	}
	return s.save(ctx, listing)
}

func (s *ListingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Listings.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger)
	s.logger.WithField("listing_id", id).Info("listing deleted")
	return nil
}

func (s *ListingService) save(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	if err := s.store.Listings.Update(ctx, listing); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger)
	return listing, nil
}

// apply validates in and copies it onto listing, resolving host and category references.
func (s *ListingService) apply(ctx context.Context, listing *models.Listing, in ListingInput) error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"host", in.Host},
		{"category", in.Category},
		{"title", in.Title},
		{"description", in.Description},
		{"listing_type", in.ListingType},
		{"address", in.Address},
		{"booking_link", in.BookingLink},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return models.NewMissingFieldError(missing...)
	}

	if !models.IsListingType(in.ListingType) {
		return models.NewValidationError(fmt.Sprintf("listing_type must be %q or %q.", models.ListingTypeEvent, models.ListingTypeService))
	}

	hostID, err := uuid.Parse(strings.TrimSpace(in.Host))
	if err != nil {
		return models.NewValidationError(fmt.Sprintf("Invalid host %q.", in.Host))
	}
	if _, err := s.store.Hosts.GetByID(ctx, hostID); err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return models.NewValidationError(fmt.Sprintf("Host %s does not exist.", hostID))
		}
		return err
	}

	category, err := ResolveCategory(ctx, s.store.Categories, in.Category)
	if err != nil {
		return err
	}
	if category == nil {
		return models.NewValidationError(fmt.Sprintf("Category %q does not exist.", in.Category))
	}

	listing.HostID = hostID
	listing.CategoryID = category.ID
	listing.Title = in.Title
	listing.Description = in.Description
	listing.ListingType = in.ListingType
	listing.Latitude = in.Latitude
	listing.Longitude = in.Longitude
	listing.Address = in.Address
	listing.EventDate = in.EventDate
	listing.BookingLink = in.BookingLink
	listing.Image = in.Image
	return nil
}
