// Package service holds the marketplace use cases: signup, login, listings, hosts,
// categories and the export snapshot.
package service

import (
	"github.com/farellandr/hostspot/internal/models"
	"github.com/google/uuid"
)

type Location struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// Profile is the payload returned by signup and login.
type Profile struct {
	ID               uuid.UUID   `json:"id"`
	Email            string      `json:"email"`
	Name             string      `json:"name"`
	Role             models.Role `json:"role"`
	HostProfileID    *uuid.UUID  `json:"host_profile_id"`
	Category         *string     `json:"category,omitempty"`
	HomeLocation     *Location   `json:"home_location,omitempty"`
	BusinessLocation *Location   `json:"business_location,omitempty"`
}

func userProfile(account *models.Account) *Profile {
	return &Profile{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name(),
		Role:  models.RoleUser,
		HomeLocation: &Location{
			Address: deref(account.HomeAddress),
			Lat:     account.HomeLatitude,
			Lng:     account.HomeLongitude,
		},
	}
}

func hostProfile(account *models.Account, host *models.HostProfile, category *models.Category) *Profile {
	p := &Profile{
		ID:            account.ID,
		Email:         account.Email,
		Name:          account.Name(),
		Role:          models.RoleHost,
		HostProfileID: &host.ID,
		BusinessLocation: &Location{
			Address: deref(host.BusinessAddress),
			Lat:     host.BusinessLatitude,
			Lng:     host.BusinessLongitude,
		},
	}
	if category != nil {
		p.Category = &category.Name
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps "" to nil so blank optional text is stored as NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
