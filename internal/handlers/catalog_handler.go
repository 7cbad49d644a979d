package handlers

import (
	"net/http"

	"github.com/farellandr/hostspot/internal/helpers"
	"github.com/farellandr/hostspot/internal/service"
	"github.com/gin-gonic/gin"
)

type HostPatchRequest struct {
	Bio               *string                   `json:"bio"`
	PhoneNumber       *string                   `json:"phone_number" binding:"omitempty,max=32"`
	Category          *string                   `json:"category"`
	IsVerified        *bool                     `json:"is_verified"`
	BusinessAddress   *string                   `json:"business_address"`
	BusinessLatitude  service.Nullable[float64] `json:"business_latitude"`
	BusinessLongitude service.Nullable[float64] `json:"business_longitude"`
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory accepts either a category id or its exact name.
func (h *Handler) GetCategory(c *gin.Context) {
	category, err := h.categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListHosts(c *gin.Context) {
	hosts, err := h.hosts.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, hosts)
}

func (h *Handler) GetHost(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "Host")
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	host, err := h.hosts.Get(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, host)
}

func (h *Handler) PatchHost(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "Host")
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	var req HostPatchRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	host, err := h.hosts.Patch(c.Request.Context(), id, service.HostPatch{
		Bio:         req.Bio,
		PhoneNumber: req.PhoneNumber,
		Category:    req.Category,
		IsVerified:  req.IsVerified,
		Address:     req.BusinessAddress,
		Latitude:    req.BusinessLatitude,
		Longitude:   req.BusinessLongitude,
	})
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, host)
}

func (h *Handler) DeleteHost(c *gin.Context) {
	id, err := helpers.ParseUUIDParam(c, "id", "Host")
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	if err := h.hosts.Delete(c.Request.Context(), id); err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
