package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/farellandr/hostspot/internal/observability"
	"github.com/farellandr/hostspot/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UserSignup struct {
	Name     string
	Email    string
	Password string
	Address  string
	Lat      *float64
	Lng      *float64
}

type HostSignup struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Bio      string
	// Category is a category id or name. Unknown values leave the host without a category.
	Category string
	Address  string
	Lat      *float64
	Lng      *float64
}

type SignupService struct {
	store  *repository.Store
	hasher *PasswordHasher
	cache  SnapshotCache
	logger logrus.FieldLogger
}

func NewSignupService(store *repository.Store, hasher *PasswordHasher, cache SnapshotCache, logger logrus.FieldLogger) *SignupService {
	return &SignupService{store: store, hasher: hasher, cache: cache, logger: logger}
}

func (s *SignupService) SignupUser(ctx context.Context, in UserSignup) (profile *Profile, err error) {
	defer s.record(models.RoleUser, &err)

	account, err := s.prepareAccount(ctx, in.Name, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	account.HomeAddress = optional(in.Address)
	account.HomeLatitude = in.Lat
	account.HomeLongitude = in.Lng

	if err := s.store.Accounts.Create(ctx, account); err != nil {
		return nil, signupError(err)
	}

	s.logger.WithFields(logrus.Fields{"account_id": account.ID, "role": models.RoleUser}).Info("account created")
	return userProfile(account), nil
}

// SignupHost creates an account and its host profile in one transaction. Either both
// rows exist afterwards or neither does.
func (s *SignupService) SignupHost(ctx context.Context, in HostSignup) (profile *Profile, err error) {
	defer s.record(models.RoleHost, &err)

	account, err := s.prepareAccount(ctx, in.Name, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	var (
		accountID uuid.UUID
		host      *models.HostProfile
		category  *models.Category
	)

	defer func() {
		if r := recover(); r != nil {
			err = models.NewInternalError(fmt.Errorf("host signup panic: %v", r))
			profile = nil
		}
		if err != nil && accountID != uuid.Nil {
			s.removeAccount(ctx, accountID)
		}
	}()

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Accounts.Create(ctx, account); err != nil {
			return err
		}
		accountID = account.ID

		resolved, err := ResolveCategory(ctx, tx.Categories, in.Category)
		if err != nil {
			return err
		}
		category = resolved

		host = &models.HostProfile{
			AccountID:         account.ID,
			PhoneNumber:       optional(strings.TrimSpace(in.Phone)),
			Bio:               in.Bio,
			BusinessAddress:   optional(in.Address),
			BusinessLatitude:  in.Lat,
			BusinessLongitude: in.Lng,
		}
		if category != nil {
			host.CategoryID = &category.ID
		}
		return tx.Hosts.Create(ctx, host)
	})
	if err != nil {
		return nil, signupError(err)
	}

	invalidate(ctx, s.cache, s.logger)
	s.logger.WithFields(logrus.Fields{
		"account_id": account.ID,
		"host_id":    host.ID,
		"role":       models.RoleHost,
	}).Info("account created")
	return hostProfile(account, host, category), nil
}

// prepareAccount validates the credentials, checks the email is free and builds the
// unsaved account.
func (s *SignupService) prepareAccount(ctx context.Context, name, email, password string) (*models.Account, error) {
	if missing := missingCredentials(email, password); len(missing) > 0 {
		return nil, models.NewMissingFieldError(missing...)
	}

	existing, err := s.store.Accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewDuplicateEmailError()
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("hash password: %w", err))
	}

	username := models.UsernameFromEmail(email)
	displayName := strings.TrimSpace(name)
	if displayName == "" {
		displayName = username
	}

	return &models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	}, nil
}

// removeAccount deletes an account left behind by a failed host signup. Failures are
// logged and otherwise ignored.
func (s *SignupService) removeAccount(ctx context.Context, id uuid.UUID) {
	if err := s.store.Accounts.Delete(context.WithoutCancel(ctx), id); err != nil {
		observability.SignupCleanupsTotal.WithLabelValues("error").Inc()
		s.logger.WithError(err).WithField("account_id", id).Warn("failed to remove account after host signup failure")
		return
	}
	observability.SignupCleanupsTotal.WithLabelValues("ok").Inc()
}

// signupError passes AppErrors through and wraps everything else as internal. Internal
// causes are logged once, where the error is turned into a response.
func signupError(err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return models.NewInternalError(err)
}

func (s *SignupService) record(role models.Role, err *error) {
	observability.SignupsTotal.WithLabelValues(string(role), observability.Outcome(models.ErrorCode(*err), *err)).Inc()
}
