package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/service"
)

type SettingsHandler struct {
	service service.SettingsService
	log     *logger.Logger
}

func NewSettingsHandler(
	service service.SettingsService,
	log *logger.Logger,
) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		log:     log,
	}
}

// @Summary Get settings
// @Description Get the company settings
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	resp, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update settings
// @Description Merge the given fields into the company settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
