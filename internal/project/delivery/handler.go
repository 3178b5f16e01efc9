package delivery

import (
	"net/http"

	projectdto "taskboard-backend/internal/project/dto"
	"taskboard-backend/internal/project/repository"
	"taskboard-backend/internal/project/usecase"
	"taskboard-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUsecase usecase.ProjectUsecase
}

func NewProjectHandler(projectUsecase usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{projectUsecase: projectUsecase}
}

// GET /api/projects?isArchived=&isFavorite=
func (h *ProjectHandler) List(c *gin.Context) {
	if !response.AllowQuery(c, "isArchived", "isFavorite") {
		return
	}
	isArchived, err := response.OptionalBool(c, "isArchived")
	if err != nil {
		response.Error(c, err)
		return
	}
	isFavorite, err := response.OptionalBool(c, "isFavorite")
	if err != nil {
		response.Error(c, err)
		return
	}

	projects, err := h.projectUsecase.List(c.Request.Context(), c.GetString("userID"), repository.ListFilter{
		IsArchived: isArchived,
		IsFavorite: isFavorite,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	project, err := h.projectUsecase.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req projectdto.CreateProjectRequest
	if !response.BindJSON(c, &req) {
		return
	}
	project, err := h.projectUsecase.Create(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req projectdto.UpdateProjectRequest
	if !response.BindJSON(c, &req) {
		return
	}
	project, err := h.projectUsecase.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	if err := h.projectUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
