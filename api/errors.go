package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrFlightNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrCheckoutInProgress):
		return http.StatusConflict
	case errors.Is(err, booking.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrMissingSearchField),
		errors.Is(err, domain.ErrInvalidSeatClass),
		errors.Is(err, domain.ErrInvalidPassengerCount),
		errors.Is(err, domain.ErrInvalidTripType),
		errors.Is(err, flights.ErrInvalidSortKey),
		errors.Is(err, booking.ErrNoPassengers),
		errors.Is(err, booking.ErrInvalidGender):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
