package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/skybooking/internal/auth"
	"github.com/Domenick1991/skybooking/internal/catalog"
	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/Domenick1991/skybooking/internal/service/dashboard"
	"github.com/Domenick1991/skybooking/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testApp struct {
	router *gin.Engine
	issuer *auth.Issuer
}

func newTestApp(t *testing.T, ratePerMinute int) testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	flightRepo := repository.NewFlightRepository(catalog.DefaultFlights())
	bookingRepo := repository.NewBookingRepository()
	bookingService := booking.NewBookingService(bookingRepo, flightRepo, booking.NewLocalGuard(), booking.SimulatedGateway{}, logger)

	issuer := auth.NewIssuer("test-secret", time.Hour)
	router := NewRouter(
		RouterConfig{CORSOrigins: []string{"http://localhost:5173"}, RatePerMinute: ratePerMinute},
		issuer,
		Handlers{
			Flights:   NewFlightHandler(flights.NewFlightService(flightRepo), logger),
			Bookings:  NewBookingHandler(bookingService, logger),
			Dashboard: NewDashboardHandler(dashboard.NewDashboardService(bookingRepo, flightRepo), logger),
		},
		logger,
	)
	return testApp{router: router, issuer: issuer}
}

func (a testApp) do(t *testing.T, method, target, body string, user *domain.User) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != nil {
		token, err := a.issuer.IssueToken(*user)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestRouter_SearchScenario(t *testing.T) {
	app := newTestApp(t, 30)

	w := app.do(t, "GET", "/api/v1/flights/search?departure=New&destination=paris&departureDate=2024-04-10&sortBy=price", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var results []searchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "2", results[1].ID)

	w = app.do(t, "GET", "/api/v1/flights/search?departure=New", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_AuthRequired(t *testing.T) {
	app := newTestApp(t, 30)

	assert.Equal(t, http.StatusUnauthorized, app.do(t, "GET", "/api/v1/profile/bookings", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, app.do(t, "POST", "/api/v1/bookings/1", twoPassengers, nil).Code)

	req := httptest.NewRequest("GET", "/api/v1/profile/bookings", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminRequiresFlag(t *testing.T) {
	app := newTestApp(t, 30)

	w := app.do(t, "GET", "/api/v1/admin/overview", "", &domain.User{ID: "u1"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, "GET", "/api/v1/admin/overview", "", &domain.User{ID: "admin", IsAdmin: true})
	require.Equal(t, http.StatusOK, w.Code)
	var overview dashboard.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, 4, overview.TotalFlights)
	assert.Equal(t, dashboard.PlaceholderTotalUsers, overview.TotalUsers)
}

func TestRouter_CheckoutThenProfileAndAdmin(t *testing.T) {
	app := newTestApp(t, 30)
	user := &domain.User{ID: "u1", Email: "jane@example.com"}
	admin := &domain.User{ID: "admin", IsAdmin: true}

	w := app.do(t, "POST", "/api/v1/bookings/1", twoPassengers, user)
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1300, created.TotalPrice)
	assert.Equal(t, 1345, created.AmountCharged)
	assert.Equal(t, domain.BookingStatusConfirmed, created.Status)

	w = app.do(t, "POST", "/api/v1/bookings/999", twoPassengers, user)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, "GET", "/api/v1/profile/bookings", "", user)
	require.Equal(t, http.StatusOK, w.Code)
	var views []dashboard.BookingView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, created.ID, views[0].ID)
	assert.Equal(t, 2, views[0].PassengerCount)

	w = app.do(t, "GET", "/api/v1/profile/bookings", "", &domain.User{ID: "u2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = app.do(t, "GET", "/api/v1/admin/overview", "", admin)
	var overview dashboard.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, 1, overview.TotalBookings)
	assert.Equal(t, 1300, overview.TotalRevenue)
	assert.Equal(t, "$1,300", overview.FormattedRevenue)
}

func TestRouter_CheckoutRateLimited(t *testing.T) {
	app := newTestApp(t, 1)
	user := &domain.User{ID: "u1"}

	assert.Equal(t, http.StatusCreated, app.do(t, "POST", "/api/v1/bookings/1", twoPassengers, user).Code)
	assert.Equal(t, http.StatusTooManyRequests, app.do(t, "POST", "/api/v1/bookings/1", twoPassengers, user).Code)

	// other users have their own bucket
	assert.Equal(t, http.StatusCreated, app.do(t, "POST", "/api/v1/bookings/1", twoPassengers, &domain.User{ID: "u2"}).Code)
}

func TestRouter_CORS(t *testing.T) {
	app := newTestApp(t, 30)

	req := httptest.NewRequest("GET", "/api/v1/flights", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
