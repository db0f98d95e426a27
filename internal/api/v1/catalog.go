package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/service"
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a service
// @Description Create a service
// @Tags Services
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a service
// @Description Get a service
// @Tags Services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, err := parseID(c, "service")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List services
// @Description List every service in creation order
// @Tags Services
// @Produce json
// @Success 200 {array} dto.ServiceResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	resp, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a service
// @Description Merge the given fields into a service
// @Tags Services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param service body dto.UpdateServiceRequest true "Service"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := parseID(c, "service")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a service
// @Description Delete a service
// @Tags Services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := parseID(c, "service")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Service deleted successfully."})
}
