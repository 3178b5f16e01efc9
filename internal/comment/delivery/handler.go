package delivery

import (
	"net/http"

	commentdto "taskboard-backend/internal/comment/dto"
	"taskboard-backend/internal/comment/usecase"
	"taskboard-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUsecase usecase.CommentUsecase
}

func NewCommentHandler(commentUsecase usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

// GET /api/comments?taskId=
func (h *CommentHandler) List(c *gin.Context) {
	if !response.AllowQuery(c, "taskId") {
		return
	}
	comments, err := h.commentUsecase.List(c.Request.Context(), c.GetString("userID"), c.Query("taskId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req commentdto.CreateCommentRequest
	if !response.BindJSON(c, &req) {
		return
	}
	comment, err := h.commentUsecase.Create(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// PUT /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req commentdto.UpdateCommentRequest
	if !response.BindJSON(c, &req) {
		return
	}
	comment, err := h.commentUsecase.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	if err := h.commentUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
