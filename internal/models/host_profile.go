package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HostProfile marks an Account as a vendor. An account has at most one.
type HostProfile struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	AccountID         uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user"`
	Account           *Account   `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	PhoneNumber       *string    `gorm:"size:32;uniqueIndex" json:"phone_number"`
	Bio               string     `gorm:"not null;default:''" json:"bio"`
	CategoryID        *uuid.UUID `gorm:"type:uuid;index" json:"category"`
	Category          *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
	IsVerified        bool       `gorm:"not null;default:false" json:"is_verified"`
	BusinessAddress   *string    `json:"business_address"`
	BusinessLatitude  *float64   `json:"business_latitude"`
	BusinessLongitude *float64   `json:"business_longitude"`
}

func (host *HostProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if host.ID == uuid.Nil {
		host.ID = uuid.New()
	}
	return
}
