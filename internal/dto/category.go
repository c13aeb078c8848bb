package dto

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
