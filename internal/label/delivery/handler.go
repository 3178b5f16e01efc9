package delivery

import (
	"net/http"

	labeldto "taskboard-backend/internal/label/dto"
	"taskboard-backend/internal/label/usecase"
	"taskboard-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type LabelHandler struct {
	labelUsecase usecase.LabelUsecase
}

func NewLabelHandler(labelUsecase usecase.LabelUsecase) *LabelHandler {
	return &LabelHandler{labelUsecase: labelUsecase}
}

// GET /api/labels
func (h *LabelHandler) List(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	labels, err := h.labelUsecase.List(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, labels)
}

// GET /api/labels/:id
func (h *LabelHandler) Get(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	label, err := h.labelUsecase.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, label)
}

// POST /api/labels
func (h *LabelHandler) Create(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req labeldto.CreateLabelRequest
	if !response.BindJSON(c, &req) {
		return
	}
	label, err := h.labelUsecase.Create(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, label)
}

// PUT /api/labels/:id
func (h *LabelHandler) Update(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req labeldto.UpdateLabelRequest
	if !response.BindJSON(c, &req) {
		return
	}
	label, err := h.labelUsecase.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, label)
}

// DELETE /api/labels/:id
func (h *LabelHandler) Delete(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	if err := h.labelUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Label deleted successfully"})
}

// POST /api/task-labels
func (h *LabelHandler) Assign(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req labeldto.TaskLabelRequest
	if !response.BindJSON(c, &req) {
		return
	}
	taskLabel, err := h.labelUsecase.Assign(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, taskLabel)
}

// DELETE /api/task-labels?taskId=&labelId=
func (h *LabelHandler) Unassign(c *gin.Context) {
	if !response.AllowQuery(c, "taskId", "labelId") {
		return
	}
	req := labeldto.TaskLabelRequest{
		TaskID:  c.Query("taskId"),
		LabelID: c.Query("labelId"),
	}
	if err := h.labelUsecase.Unassign(c.Request.Context(), c.GetString("userID"), &req); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Label removed from task successfully"})
}
