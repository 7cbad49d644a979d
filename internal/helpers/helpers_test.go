package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForCode(t *testing.T) {
	tests := map[string]int{
		models.CodeMissingField:       http.StatusBadRequest,
		models.CodeDuplicateEmail:     http.StatusBadRequest,
		models.CodeDuplicatePhone:     http.StatusBadRequest,
		models.CodeValidation:         http.StatusBadRequest,
		models.CodeInvalidCredentials: http.StatusUnauthorized,
		models.CodeNotFound:           http.StatusNotFound,
		models.CodeInternal:           http.StatusInternalServerError,
		"SOMETHING_ELSE":              http.StatusInternalServerError,
	}
	for code, status := range tests {
		assert.Equal(t, status, StatusForCode(code), code)
	}
}

func TestRespondWithAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	respond := func(err error) (*httptest.ResponseRecorder, ErrorResponse) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
		RespondWithAppError(c, logger, err)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	w, body := respond(models.NewDuplicatePhoneError())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad Request", body.Error)
	assert.Equal(t, models.CodeDuplicatePhone, body.Code)
	assert.Empty(t, hook.AllEntries())

	w, body = respond(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error.", body.Message)
	assert.NotContains(t, w.Body.String(), "connection refused")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "request failed", hook.LastEntry().Message)
}

func TestBindJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()

	type request struct {
		BookingLink string `json:"booking_link" binding:"required"`
		Kind        string `json:"kind" binding:"omitempty,oneof=event service"`
	}

	bind := func(body string) error {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var req request
		return BindJSON(c, &req)
	}

	assert.NoError(t, bind(`{"booking_link":"https://e.com"}`))

	err := bind(`{}`)
	assert.Equal(t, models.CodeMissingField, models.ErrorCode(err))
	assert.Equal(t, "Missing required fields: booking_link.", err.Error())

	err = bind(``)
	assert.Equal(t, models.CodeMissingField, models.ErrorCode(err))

	err = bind(`{"booking_link":"x","kind":"party"}`)
	assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
	assert.Contains(t, err.Error(), "kind")

	err = bind(`{"booking_link":`)
	assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
}
