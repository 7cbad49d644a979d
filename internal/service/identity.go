package service

import (
	"context"
	"strings"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/farellandr/hostspot/internal/observability"
	"github.com/farellandr/hostspot/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type IdentityService struct {
	store  *repository.Store
	hasher *PasswordHasher
	logger logrus.FieldLogger
}

func NewIdentityService(store *repository.Store, hasher *PasswordHasher, logger logrus.FieldLogger) *IdentityService {
	return &IdentityService{store: store, hasher: hasher, logger: logger}
}

// Login resolves an email and password pair to a profile. An unknown email and a wrong
// password produce the same error.
func (s *IdentityService) Login(ctx context.Context, email, password string) (profile *Profile, err error) {
	defer func() {
		observability.LoginsTotal.WithLabelValues(observability.Outcome(models.ErrorCode(err), err)).Inc()
	}()

	if missing := missingCredentials(email, password); len(missing) > 0 {
		return nil, models.NewMissingFieldError(missing...)
	}

	account, err := s.store.Accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil || !s.hasher.Matches(account.PasswordHash, password) {
		s.logger.WithField("email", email).Info("login rejected")
		return nil, models.NewInvalidCredentialsError()
	}

	host, err := s.store.Hosts.GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if host == nil {
		return userProfile(account), nil
	}

	var category *models.Category
	if host.CategoryID != nil {
		category, err = s.store.Categories.GetByID(ctx, *host.CategoryID)
		if err != nil && models.ErrorCode(err) != models.CodeNotFound {
			return nil, err
		}
	}
	return hostProfile(account, host, category), nil
}

// ResolveCategory interprets token as a category id, then as an exact category name.
// A token matching neither resolves to nil without an error; only database failures
// are returned.
func ResolveCategory(ctx context.Context, categories *repository.CategoryRepository, token string) (*models.Category, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	if id, err := uuid.Parse(token); err == nil {
		category, err := categories.GetByID(ctx, id)
		if err == nil {
			return category, nil
		}
		if models.ErrorCode(err) != models.CodeNotFound {
			return nil, err
		}
	}

	return categories.GetByName(ctx, token)
}

func missingCredentials(email, password string) []string {
	var missing []string
	if strings.TrimSpace(email) == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	return missing
}
