package helpers

import (
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// RegisterJSONFieldNames makes validation errors report json field names instead of Go
// struct field names.
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
}

// ParseUUIDParam reads a path parameter as a UUID. A malformed id cannot name an
// existing resource, so it is reported as not found.
func ParseUUIDParam(c *gin.Context, name, resource string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, models.NewNotFoundError(resource, raw)
	}
	return id, nil
}

// BindJSON decodes the request body into req. Missing required fields become a
// MISSING_FIELD error; any other binding failure is a VALIDATION_ERROR.
func BindJSON(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewValidationError("Invalid request body.")
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, fe.Field())
	}
	if len(missing) > 0 {
		return models.NewMissingFieldError(missing...)
	}
	return models.NewValidationError("Invalid value for fields: " + strings.Join(invalid, ", ") + ".")
}
