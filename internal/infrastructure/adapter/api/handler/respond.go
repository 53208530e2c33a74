package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps a domain error to its HTTP status
func statusFor(err error) int {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrInvalidCredentials),
		errors.Is(err, domainerr.ErrPasswordMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrAccountRejected),
		errors.Is(err, domainerr.ErrNotOwner),
		errors.Is(err, domainerr.ErrDefaultImmutable):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsConflictError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error body for a domain error
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs
		message = domainerr.ErrInternalServer.Error()
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBindError writes the standardized body for a malformed request
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrMissingFields),
		Message: "Invalid request format: " + err.Error(),
	})
}
