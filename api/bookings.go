package api

import (
	"net/http"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service booking.BookingUseCase
	logger  *zap.Logger
}

type passengerRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
}

type createBookingRequest struct {
	Passengers []passengerRequest `json:"passengers" binding:"required,min=1,dive"`
}

func NewBookingHandler(service booking.BookingUseCase, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

// Register expects router to already require authentication.
func (h *BookingHandler) Register(router *gin.RouterGroup, limit gin.HandlerFunc) {
	router.POST("/:flightId", limit, h.create)
	router.GET("/checkout", h.status)
}

func (h *BookingHandler) create(c *gin.Context) {
	class, err := domain.ParseSeatClass(c.DefaultQuery("class", "economy"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passengers := make([]domain.Passenger, len(req.Passengers))
	for i, p := range req.Passengers {
		passengers[i] = domain.Passenger{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			DateOfBirth: p.DateOfBirth,
			Gender:      domain.Gender(p.Gender),
		}
	}

	created, err := h.service.Checkout(c.Request.Context(), booking.CheckoutInput{
		User:       CurrentUser(c),
		FlightID:   c.Param("flightId"),
		SeatClass:  class,
		Passengers: passengers,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// status reports whether the caller has a checkout in flight.
func (h *BookingHandler) status(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		respondError(c, h.logger, domain.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_progress": h.service.InProgress(c.Request.Context(), user.ID)})
}
