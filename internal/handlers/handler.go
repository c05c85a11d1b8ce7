package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mediconnect/mediconnect-api/internal/config"
)

// Handler carries the store handle every endpoint works against. It is
// constructed once at startup and shared; handlers hold no other state.
type Handler struct {
	DB  *mongo.Database
	JWT config.JWTConfig
}

func NewHandler(db *mongo.Database, jwtCfg config.JWTConfig) *Handler {
	return &Handler{DB: db, JWT: jwtCfg}
}

// bindJSON decodes the request body into req and, on failure, writes a 400
// with per-field messages when the failure is a validation one. Returns false
// if the request has already been answered.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	if ve, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = validationMessage(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// serverError logs the underlying failure and answers with a generic 500.
// Internal error text is never echoed to the caller.
func serverError(c *gin.Context, op string, err error) {
	logrus.WithError(err).Error(op)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
