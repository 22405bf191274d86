package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) []domain.Flight {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight)
}

func (m *MockFlightUseCase) Search(ctx context.Context, req flights.SearchRequest) ([]domain.Flight, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id string) (domain.Flight, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Flight), args.Bool(1)
}

func newTestContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, zap.NewNop())

	c, w := newTestContext("GET", "/flights")
	mockService.On("List", c.Request.Context()).Return(catalog.DefaultFlights())

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []domain.Flight
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 4)
	assert.Equal(t, 650, body[0].Price.Get(domain.SeatClassEconomy))

	mockService.AssertExpectations(t)
}

func TestFlightHandler_search(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, zap.NewNop())

	c, w := newTestContext("GET", "/flights/search?departure=new&destination=paris&departureDate=2024-04-10&passengers=3")

	want := flights.SearchRequest{
		Filters: domain.SearchFilters{
			Departure:     "new",
			Destination:   "paris",
			DepartureDate: "2024-04-10",
			Passengers:    3,
			SeatClass:     domain.SeatClassEconomy,
			TripType:      domain.TripTypeOneWay,
		},
		SortBy: flights.SortByPrice,
	}
	mockService.On("Search", c.Request.Context(), want).Return(catalog.DefaultFlights()[:1], nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []searchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "AF007", body[0].FlightNumber)
	assert.Equal(t, 650, body[0].Quote.PerPassenger)
	assert.Equal(t, 1950, body[0].Quote.Subtotal)
	assert.Equal(t, 1995, body[0].Quote.Total)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_search_BadRequest(t *testing.T) {
	cases := []string{
		"/flights/search?departure=new&destination=paris&departureDate=2024-04-10&seatClass=premium",
		"/flights/search?departure=new&destination=paris&departureDate=2024-04-10&tripType=multi-city",
		"/flights/search?departure=new&destination=paris&departureDate=2024-04-10&sortBy=stops",
		"/flights/search?departure=new&destination=paris&departureDate=2024-04-10&passengers=two",
	}
	for _, target := range cases {
		mockService := &MockFlightUseCase{}
		handler := NewFlightHandler(mockService, zap.NewNop())
		c, w := newTestContext("GET", target)

		handler.search(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		mockService.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	}
}

func TestFlightHandler_search_MissingField(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, zap.NewNop())

	c, w := newTestContext("GET", "/flights/search?departure=new")
	mockService.On("Search", c.Request.Context(), mock.Anything).
		Return(nil, fmt.Errorf("%w: destination", domain.ErrMissingSearchField))

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "destination")
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, zap.NewNop())

	c, w := newTestContext("GET", "/flights/3?class=business&passengers=2")
	c.Params = gin.Params{{Key: "id", Value: "3"}}

	flight := catalog.DefaultFlights()[2]
	mockService.On("GetByID", c.Request.Context(), "3").Return(flight, true)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body flightDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "BA117", body.Flight.FlightNumber)
	assert.Equal(t, domain.SeatClassBusiness, body.Quote.SeatClass)
	assert.Equal(t, 4400, body.Quote.Subtotal)
	assert.Equal(t, 4445, body.Quote.Total)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, zap.NewNop())

	c, w := newTestContext("GET", "/flights/999")
	c.Params = gin.Params{{Key: "id", Value: "999"}}
	mockService.On("GetByID", c.Request.Context(), "999").Return(domain.Flight{}, false)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Flight not found"}`, w.Body.String())
}

func TestFlightHandler_get_InvalidPassengers(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, zap.NewNop())

	c, w := newTestContext("GET", "/flights/1?passengers=0")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	mockService.On("GetByID", c.Request.Context(), "1").Return(catalog.DefaultFlights()[0], true)

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
