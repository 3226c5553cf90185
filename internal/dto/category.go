package dto

import "time"

// CreateCategoryRequest contains the data for a new category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Type string `json:"type" validate:"required,category_type"`
}

// UpdateCategoryRequest carries a partial category update
type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type *string `json:"type,omitempty" validate:"omitempty,category_type"`
}

// CategoryResponse represents a category owned by the current user
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
