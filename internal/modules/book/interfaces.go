package book

import (
	"context"

	"bookshelf/internal/domain"
	"bookshelf/internal/repository"
)

// BookStore — only the methods the book service uses.
type BookStore interface {
	Create(ctx context.Context, b *domain.Book) error
	GetByISBN(ctx context.Context, isbn string, userID int64) (*domain.Book, error)
	List(ctx context.Context, userID int64, filter repository.BookFilter) ([]domain.Book, int64, error)
	Update(ctx context.Context, b *domain.Book) error
	Delete(ctx context.Context, isbn string, userID int64) error
}
