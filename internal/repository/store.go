// Package repository implements the data access layer on top of gorm.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store groups the per-entity repositories bound to one database handle. The handle is
// either the connection pool or an open transaction (see Transaction).
type Store struct {
	db *gorm.DB

	Accounts   *AccountRepository
	Hosts      *HostRepository
	Categories *CategoryRepository
	Listings   *ListingRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Accounts:   NewAccountRepository(db),
		Hosts:      NewHostRepository(db),
		Categories: NewCategoryRepository(db),
		Listings:   NewListingRepository(db),
	}
}

// Transaction runs fn with a Store bound to a single database transaction. The
// transaction commits when fn returns nil and rolls back when fn returns an error or panics.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
