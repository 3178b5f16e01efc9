package delivery

import (
	"net/http"

	reminderdto "taskboard-backend/internal/reminder/dto"
	"taskboard-backend/internal/reminder/usecase"
	"taskboard-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{reminderUsecase: reminderUsecase}
}

// GET /api/reminders?taskId=
func (h *ReminderHandler) List(c *gin.Context) {
	if !response.AllowQuery(c, "taskId") {
		return
	}
	reminders, err := h.reminderUsecase.List(c.Request.Context(), c.GetString("userID"), response.OptionalString(c, "taskId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// POST /api/reminders
func (h *ReminderHandler) Create(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req reminderdto.CreateReminderRequest
	if !response.BindJSON(c, &req) {
		return
	}
	reminder, err := h.reminderUsecase.Create(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

// PUT /api/reminders/:id
func (h *ReminderHandler) Update(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req reminderdto.UpdateReminderRequest
	if !response.BindJSON(c, &req) {
		return
	}
	reminder, err := h.reminderUsecase.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// DELETE /api/reminders/:id
func (h *ReminderHandler) Delete(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	if err := h.reminderUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
