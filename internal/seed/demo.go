// Package seed fills a database with demo hosts and listings for local development.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/farellandr/hostspot/internal/models"
	"github.com/farellandr/hostspot/internal/service"
	"github.com/google/uuid"
)

// DemoPassword is shared by every generated account.
const DemoPassword = "hostspot-demo"

type Result struct {
	Hosts    int
	Listings int
}

// Factory creates demo data through the signup and listing services so generated rows
// obey the same rules as real requests.
type Factory struct {
	signup   *service.SignupService
	listings *service.ListingService
	faker    *gofakeit.Faker
}

// NewFactory uses seed for the fake data generator; zero picks a time-based seed.
func NewFactory(signup *service.SignupService, listings *service.ListingService, seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{signup: signup, listings: listings, faker: gofakeit.New(seed)}
}

// Demo creates hosts hosts, each with between one and perHost listings.
func (f *Factory) Demo(ctx context.Context, hosts, perHost int) (Result, error) {
	var res Result
	if perHost < 1 {
		perHost = 1
	}

	for i := 0; i < hosts; i++ {
		profile, err := f.host(ctx, i)
		if err != nil {
			return res, fmt.Errorf("create demo host %d: %w", i, err)
		}
		res.Hosts++

		count := f.faker.Number(1, perHost)
		for j := 0; j < count; j++ {
			if _, err := f.listings.Create(ctx, f.listing(*profile.HostProfileID, *profile.Category)); err != nil {
				return res, fmt.Errorf("create demo listing for host %s: %w", profile.Email, err)
			}
			res.Listings++
		}
	}
	return res, nil
}

func (f *Factory) host(ctx context.Context, i int) (*service.Profile, error) {
	address := f.faker.Address()
	lat, lng := address.Latitude, address.Longitude

	return f.signup.SignupHost(ctx, service.HostSignup{
		Name:     f.faker.Company(),
		Email:    fmt.Sprintf("demo%d.%s", i, f.faker.Email()),
		Password: DemoPassword,
		Phone:    fmt.Sprintf("%s-%d", f.faker.Phone(), i),
		Bio:      f.faker.Sentence(12),
		Category: f.faker.RandomString(models.CategoryNames),
		Address:  address.Address,
		Lat:      &lat,
		Lng:      &lng,
	})
}

func (f *Factory) listing(hostID uuid.UUID, category string) service.ListingInput {
	address := f.faker.Address()
	in := service.ListingInput{
		Host:        hostID.String(),
		Category:    category,
		Title:       f.faker.Sentence(4),
		Description: f.faker.Paragraph(1, 3, 8, " "),
		ListingType: models.ListingTypeService,
		Latitude:    address.Latitude,
		Longitude:   address.Longitude,
		Address:     address.Address,
		BookingLink: f.faker.URL(),
	}
	if f.faker.Bool() {
		now := time.Now().UTC()
		date := f.faker.DateRange(now, now.AddDate(0, 3, 0)).Truncate(time.Minute)
		in.ListingType = models.ListingTypeEvent
		in.EventDate = &date
	}
	if f.faker.Bool() {
		image := fmt.Sprintf("https://picsum.photos/seed/%s/800/600", f.faker.UUID())
		in.Image = &image
	}
	return in
}
