package book

import "bookshelf/internal/domain"

type CreateRequest struct {
	ISBN        string `json:"isbn" binding:"required,max=20"`
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Author      string `json:"author" binding:"required,max=100"`
	Stock       int    `json:"stock" binding:"gte=0"`
}

// UpdateRequest deliberately has no ISBN field: the key is immutable.
type UpdateRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Author      string `json:"author" binding:"required,max=100"`
	Stock       int    `json:"stock" binding:"gte=0"`
}

type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	Favorites *bool
}

type ListResult struct {
	Books []domain.Book `json:"books"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
