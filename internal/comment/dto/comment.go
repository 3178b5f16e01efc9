package dto

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
	TaskID  string `json:"taskId"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content" binding:"omitempty,min=1"`
}
