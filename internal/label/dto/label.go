package dto

type CreateLabelRequest struct {
	Name  string `json:"name" binding:"required,min=1"`
	Color string `json:"color"`
}

type UpdateLabelRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Color *string `json:"color"`
}

func (r *UpdateLabelRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Color != nil {
		fields["color"] = *r.Color
	}
	return fields
}

// TaskLabelRequest is checked by hand so a missing id yields the combined message.
type TaskLabelRequest struct {
	TaskID  string `json:"taskId" form:"taskId"`
	LabelID string `json:"labelId" form:"labelId"`
}
