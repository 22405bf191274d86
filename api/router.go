package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterConfig struct {
	CORSOrigins   []string
	RatePerMinute int
}

type Handlers struct {
	Flights   *FlightHandler
	Bookings  *BookingHandler
	Dashboard *DashboardHandler
}

// NewRouter mounts every JSON route under /api/v1.
func NewRouter(cfg RouterConfig, tokens TokenParser, h Handlers, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger), CORS(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	h.Flights.Register(v1.Group("/flights"))

	authed := v1.Group("", AuthMiddleware(tokens))
	h.Bookings.Register(authed.Group("/bookings"), NewRateLimiter(cfg.RatePerMinute).Middleware())
	h.Dashboard.RegisterProfile(authed.Group("/profile"))
	h.Dashboard.RegisterAdmin(authed.Group("/admin", RequireAdmin()))

	return r
}
