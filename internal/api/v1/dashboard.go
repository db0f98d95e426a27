package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
	log     *logger.Logger
}

func NewDashboardHandler(service service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

// @Summary Dashboard summary
// @Description Counts and invoice totals computed from the current data
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	resp, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
