package api

import (
	"net/http"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/pricing"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service flights.FlightUseCase
	logger  *zap.Logger
}

type searchQuery struct {
	Departure     string `form:"departure"`
	Destination   string `form:"destination"`
	DepartureDate string `form:"departureDate"`
	ReturnDate    string `form:"returnDate"`
	Passengers    int    `form:"passengers,default=1"`
	SeatClass     string `form:"seatClass,default=economy"`
	TripType      string `form:"tripType,default=one-way"`
	SortBy        string `form:"sortBy"`
}

type quoteQuery struct {
	Class      string `form:"class,default=economy"`
	Passengers int    `form:"passengers,default=1"`
}

type searchResult struct {
	domain.Flight
	Quote pricing.Quote `json:"quote"`
}

type flightDetails struct {
	Flight domain.Flight `json:"flight"`
	Quote  pricing.Quote `json:"quote"`
}

func NewFlightHandler(service flights.FlightUseCase, logger *zap.Logger) *FlightHandler {
	return &FlightHandler{service: service, logger: logger}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

func (h *FlightHandler) search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req, err := q.toRequest()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	found, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	results := make([]searchResult, 0, len(found))
	for _, f := range found {
		quote, err := pricing.NewQuote(f, req.Filters.SeatClass, req.Filters.Passengers)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		results = append(results, searchResult{Flight: f, Quote: quote})
	}
	c.JSON(http.StatusOK, results)
}

func (h *FlightHandler) get(c *gin.Context) {
	var q quoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	class, err := domain.ParseSeatClass(q.Class)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	flight, ok := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		return
	}

	quote, err := pricing.NewQuote(flight, class, q.Passengers)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, flightDetails{Flight: flight, Quote: quote})
}

func (q searchQuery) toRequest() (flights.SearchRequest, error) {
	class, err := domain.ParseSeatClass(q.SeatClass)
	if err != nil {
		return flights.SearchRequest{}, err
	}
	tripType, err := domain.ParseTripType(q.TripType)
	if err != nil {
		return flights.SearchRequest{}, err
	}
	sortBy, err := flights.ParseSortKey(q.SortBy)
	if err != nil {
		return flights.SearchRequest{}, err
	}
	return flights.SearchRequest{
		Filters: domain.SearchFilters{
			Departure:     q.Departure,
			Destination:   q.Destination,
			DepartureDate: q.DepartureDate,
			ReturnDate:    q.ReturnDate,
			Passengers:    q.Passengers,
			SeatClass:     class,
			TripType:      tripType,
		},
		SortBy: sortBy,
	}, nil
}
