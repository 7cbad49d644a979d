package handlers

import (
	"net/http"

	"github.com/farellandr/hostspot/internal/helpers"
	"github.com/farellandr/hostspot/internal/service"
	"github.com/gin-gonic/gin"
)

type UserSignupRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Address  string   `json:"address"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
}

type HostSignupRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	PhoneNumber string   `json:"phone_number"`
	Bio         string   `json:"bio"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) SignupUser(c *gin.Context) {
	var req UserSignupRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	profile, err := h.signup.SignupUser(c.Request.Context(), service.UserSignup{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Lat:      req.Lat,
		Lng:      req.Lng,
	})
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *Handler) SignupHost(c *gin.Context) {
	var req HostSignupRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	profile, err := h.signup.SignupHost(c.Request.Context(), service.HostSignup{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.PhoneNumber,
		Bio:      req.Bio,
		Category: req.Category,
		Address:  req.Address,
		Lat:      req.Latitude,
		Lng:      req.Longitude,
	})
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	profile, err := h.identity.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondWithAppError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
