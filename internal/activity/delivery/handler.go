package delivery

import (
	"net/http"

	activitydto "taskboard-backend/internal/activity/dto"
	"taskboard-backend/internal/activity/repository"
	"taskboard-backend/internal/activity/usecase"
	"taskboard-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityUsecase usecase.ActivityUsecase
}

func NewActivityHandler(activityUsecase usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{activityUsecase: activityUsecase}
}

// GET /api/activities?taskId=&projectId=&limit=50&offset=0
func (h *ActivityHandler) List(c *gin.Context) {
	if !response.AllowQuery(c, "taskId", "projectId", "limit", "offset") {
		return
	}

	limit, err := response.IntQuery(c, "limit", usecase.DefaultLimit, 1)
	if err != nil {
		response.Error(c, err)
		return
	}
	offset, err := response.IntQuery(c, "offset", 0, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	activities, err := h.activityUsecase.List(c.Request.Context(), c.GetString("userID"), repository.ListFilter{
		TaskID:    response.OptionalString(c, "taskId"),
		ProjectID: response.OptionalString(c, "projectId"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, activitydto.NewActivityResponses(activities))
}
