package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ListingTypeEvent   = "event"
	ListingTypeService = "service"
)

type Listing struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	HostID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"host"`
	Host        *HostProfile `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string       `gorm:"size:200;not null" json:"title"`
	Description string       `gorm:"not null" json:"description"`
	CategoryID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"category"`
	Category    *Category    `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	ListingType string       `gorm:"size:10;not null" json:"listing_type"`
	Latitude    float64      `gorm:"not null" json:"latitude"`
	Longitude   float64      `gorm:"not null" json:"longitude"`
	Address     string       `gorm:"size:255;not null" json:"address"`
	EventDate   *time.Time   `json:"event_date"`
	BookingLink string       `gorm:"not null" json:"booking_link"`
	Image       *string      `json:"image"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (listing *Listing) BeforeCreate(tx *gorm.DB) (err error) {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	return
}

func IsListingType(t string) bool {
	return t == ListingTypeEvent || t == ListingTypeService
}
