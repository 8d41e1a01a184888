package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkdesk/internal/service"
	"inkdesk/internal/upstream"
	"inkdesk/internal/wizard"
)

type errorResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

type successResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func noContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context) {
	errorResponse(c, http.StatusUnauthorized, "sign in required")
}

// handleError turns a service error into the status and message the app shows.
// Anything not recognised is a 500 with a generic message.
func (h *Handler) handleError(c *gin.Context, err error) {
	var lookup *wizard.LookupError
	switch {
	case errors.As(err, &lookup):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponseBody{
			Status:  "error",
			Message: lookup.Error(),
			Code:    http.StatusUnprocessableEntity,
			Field:   lookup.Field,
		})
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, wizard.ErrClientRequired),
		errors.Is(err, wizard.ErrDateTimeRequired),
		errors.Is(err, wizard.ErrStepOutOfRange),
		errors.Is(err, wizard.ErrUnknownClient),
		errors.Is(err, wizard.ErrNotProjectMode),
		errors.Is(err, wizard.ErrSignatureRequired):
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrSessionExpired),
		errors.Is(err, service.ErrNoAPIKey),
		errors.Is(err, upstream.ErrUnauthorized):
		errorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrWizardNotFound):
		errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoOrganisation):
		errorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUpstreamFailed):
		errorResponse(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, context.Canceled):
		c.Abort()
	default:
		h.logger.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
