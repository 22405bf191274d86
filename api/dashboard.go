package api

import (
	"net/http"

	"github.com/Domenick1991/skybooking/internal/service/dashboard"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the profile and admin pages.
type DashboardHandler struct {
	service dashboard.DashboardUseCase
	logger  *zap.Logger
}

func NewDashboardHandler(service dashboard.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger}
}

func (h *DashboardHandler) RegisterProfile(router *gin.RouterGroup) {
	router.GET("/bookings", h.profileBookings)
}

func (h *DashboardHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/overview", h.overview)
	router.GET("/bookings", h.adminBookings)
	router.GET("/flights", h.adminFlights)
}

func (h *DashboardHandler) profileBookings(c *gin.Context) {
	views, err := h.service.ProfileBookings(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *DashboardHandler) overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) adminBookings(c *gin.Context) {
	views, err := h.service.AdminBookings(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *DashboardHandler) adminFlights(c *gin.Context) {
	list, err := h.service.AdminFlights(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
