// Package handlers maps HTTP requests onto the marketplace services.
package handlers

import (
	"github.com/farellandr/hostspot/internal/repository"
	"github.com/farellandr/hostspot/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	store      *repository.Store
	identity   *service.IdentityService
	signup     *service.SignupService
	listings   *service.ListingService
	hosts      *service.HostService
	categories *service.CategoryService
	export     *service.ExportService
	logger     logrus.FieldLogger
}

// New wires the services over store. cache may be nil, in which case the export is
// rebuilt on every request.
func New(store *repository.Store, hasher *service.PasswordHasher, cache service.SnapshotCache, logger logrus.FieldLogger) *Handler {
	return &Handler{
		store:      store,
		identity:   service.NewIdentityService(store, hasher, logger),
		signup:     service.NewSignupService(store, hasher, cache, logger),
		listings:   service.NewListingService(store, cache, logger),
		hosts:      service.NewHostService(store, cache, logger),
		categories: service.NewCategoryService(store, cache, logger),
		export:     service.NewExportService(store, cache, logger),
		logger:     logger,
	}
}
