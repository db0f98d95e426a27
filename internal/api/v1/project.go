package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lumelec/backoffice/internal/api/dto"
	"github.com/lumelec/backoffice/internal/logger"
	"github.com/lumelec/backoffice/internal/service"
)

type ProjectHandler struct {
	service service.ProjectService
	log     *logger.Logger
}

func NewProjectHandler(service service.ProjectService, log *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a project
// @Description Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateProject(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a project
// @Description Get a project
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := parseID(c, "project")
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List projects
// @Description List every project in creation order
// @Tags Projects
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	resp, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a project
// @Description Merge the given fields into a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Project"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := parseID(c, "project")
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a project
// @Description Delete a project
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := parseID(c, "project")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Project deleted successfully."})
}
