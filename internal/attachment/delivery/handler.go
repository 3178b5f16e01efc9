package delivery

import (
	"net/http"

	"taskboard-backend/internal/attachment/usecase"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AttachmentHandler struct {
	attachmentUsecase usecase.AttachmentUsecase
}

func NewAttachmentHandler(attachmentUsecase usecase.AttachmentUsecase) *AttachmentHandler {
	return &AttachmentHandler{attachmentUsecase: attachmentUsecase}
}

// POST /api/tasks/:id/attachments (multipart field "file")
func (h *AttachmentHandler) Upload(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Validation("file is a required field"))
		return
	}
	file, err := header.Open()
	if err != nil {
		response.Error(c, apperror.Internal("open upload", err))
		return
	}
	defer file.Close()

	attachment, err := h.attachmentUsecase.Upload(c.Request.Context(), c.GetString("userID"), c.Param("id"), usecase.Upload{
		Name:    header.Filename,
		Size:    header.Size,
		Content: file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// GET /api/tasks/:id/attachments
func (h *AttachmentHandler) List(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	attachments, err := h.attachmentUsecase.List(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// GET /api/attachments/:id/download
func (h *AttachmentHandler) Download(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	attachment, err := h.attachmentUsecase.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Type", attachment.MimeType)
	c.FileAttachment(attachment.Path, attachment.OriginalName)
}

// DELETE /api/attachments/:id
func (h *AttachmentHandler) Delete(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	if err := h.attachmentUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attachment deleted successfully"})
}
