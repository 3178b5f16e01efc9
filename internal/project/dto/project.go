package dto

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsFavorite  *bool  `json:"isFavorite"`
}

// UpdateProjectRequest leaves absent fields untouched.
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsFavorite  *bool   `json:"isFavorite"`
	IsArchived  *bool   `json:"isArchived"`
}

func (r *UpdateProjectRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Color != nil {
		fields["color"] = *r.Color
	}
	if r.IsFavorite != nil {
		fields["is_favorite"] = *r.IsFavorite
	}
	if r.IsArchived != nil {
		fields["is_archived"] = *r.IsArchived
	}
	return fields
}
