package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is the login identity shared by customers and hosts.
type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username      string    `gorm:"size:150;index;not null" json:"username"`
	Email         string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"not null" json:"-"`
	DisplayName   string    `gorm:"size:150;not null;default:''" json:"display_name"`
	HomeAddress   *string   `json:"home_address"`
	HomeLatitude  *float64  `json:"home_latitude"`
	HomeLongitude *float64  `json:"home_longitude"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (account *Account) BeforeCreate(tx *gorm.DB) (err error) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	return
}

// Name is the public label for the account: the display name, or the username when unset.
func (account *Account) Name() string {
	if account.DisplayName != "" {
		return account.DisplayName
	}
	return account.Username
}

// UsernameFromEmail returns the local part of email. An address without "@" is used whole.
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
