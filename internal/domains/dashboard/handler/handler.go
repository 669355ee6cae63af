package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookong/internal/domains/dashboard/service"
	"bookong/internal/shared/response"
	"bookong/pkg/logger"
)

type DashboardHandler struct {
	service service.DashboardServiceInterface
}

func NewDashboardHandler(svc service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Overview handles GET /dashboard.
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard overview", err)
		response.InternalServerError(c, "Failed to load dashboard")
		return
	}

	response.Success(c, http.StatusOK, overview)
}
