package handlers

import (
	"net/http"
	"time"

	"github.com/farellandr/hostspot/internal/helpers"
	"github.com/farellandr/hostspot/internal/service"
	"github.com/gin-gonic/gin"
)

type ListingRequest struct {
	Host        string     `json:"host" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"required"`
	ListingType string     `json:"listing_type" binding:"required,oneof=event service"`
	Latitude    *float64   `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude   *float64   `json:"longitude" binding:"required,gte=-180,lte=180"`
	Address     string     `json:"address" binding:"required,max=255"`
	EventDate   *time.Time `json:"event_date"`
	BookingLink string     `json:"booking_link" binding:"required,url"`
	Image       *string    `json:"image"`
}

type ListingPatchRequest struct {
	Host        *string  `json:"host"`
	Category    *string  `json:"category"`
	Title       *string  `json:"title" binding:"omitempty,max=200"`
	Description *string  `json:"description"`
	ListingType *string  `json:"listing_type" binding:"omitempty,oneof=event service"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Address     *string  `json:"address" binding:"omitempty,max=255"`
	BookingLink *string  `json:"booking_link" binding:"omitempty,url"`
	// event_date and image may be sent as null to clear them.
	EventDate service.Nullable[time.Time] `json:"event_date"`
	Image     service.Nullable[string]    `json:"image"`
}

func (r ListingRequest) input() service.ListingInput {
	return service.ListingInput{
		Host:        r.Host,
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		ListingType: r.ListingType,
		Latitude:    *r.Latitude,
		Longitude:   *r.Longitude,
		Address:     r.Address,
		EventDate:   r.EventDate,
		BookingLink: r.BookingLink,
		Image:       r.Image,
	}
}

// ListListings serves GET /listings/, optionally filtered by ?cat=<category name>.
func (h *Handler) ListListings(c *gin.Context) {
	listings, err := h.listings.List(c.Request.Context(), c.Query("cat"))
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *Handler) CreateListing(c *gin.Context) {
	var req ListingRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	listing, err := h.listings.Create(c.Request.Context(), req.input())
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (h *Handler) GetListing(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "Listing")
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	listing, err := h.listings.Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *Handler) UpdateListing(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "Listing")
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	var req ListingRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	listing, err := h.listings.Update(c.Request.Context(), id, req.input())
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *Handler) PatchListing(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "Listing")
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	var req ListingPatchRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	listing, err := h.listings.Patch(c.Request.Context(), id, service.ListingPatch{
		Host:        req.Host,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		ListingType: req.ListingType,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		EventDate:   req.EventDate,
		BookingLink: req.BookingLink,
		Image:       req.Image,
	})
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *Handler) DeleteListing(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "Listing")
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	if err := h.listings.Delete(c.Request.Context(), id); err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
