package category

type CreateCategoryRequest struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	IsInternCategory bool    `json:"isInternCategory"`
	ParentCategoryID *string `json:"parentCategory"`
}

type UpdateCategoryRequest struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	IsInternCategory *bool   `json:"isInternCategory"`
	ParentCategoryID *string `json:"parentCategory"`
}

type CategoryResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	IsInternCategory bool    `json:"isInternCategory"`
	ParentCategoryID *string `json:"parentCategory,omitempty"`
}
