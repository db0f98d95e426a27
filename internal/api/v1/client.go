package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/service"
)

type ClientHandler struct {
	service service.ClientService
	log     *logger.Logger
}

func NewClientHandler(service service.ClientService, log *logger.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a client
// @Description Create a client
// @Tags Clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateClient(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a client
// @Description Get a client
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := parseID(c, "client")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetClient(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List clients
// @Description List every client in creation order
// @Tags Clients
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	resp, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a client
// @Description Merge the given fields into a client
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param client body dto.UpdateClientRequest true "Client"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := parseID(c, "client")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateClient(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a client
// @Description Delete a client
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := parseID(c, "client")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteClient(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Client deleted successfully."})
}
