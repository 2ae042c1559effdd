package book

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bookshelf/internal/domain"
	"bookshelf/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type Service struct {
	books BookStore
}

func NewService(books BookStore) *Service {
	return &Service{books: books}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) error {
	_, err := s.books.GetByISBN(ctx, req.ISBN, userID)
	if err == nil {
		return ErrBookExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.books.Create(ctx, &domain.Book{
		ISBN:        req.ISBN,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Author:      req.Author,
		Stock:       req.Stock,
	})
}

func (s *Service) List(ctx context.Context, userID int64, q ListQuery) (*ListResult, error) {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 || q.Limit > maxLimit {
		q.Limit = defaultLimit
	}

	books, total, err := s.books.List(ctx, userID, repository.BookFilter{
		Search:    q.Search,
		Favorites: q.Favorites,
		Page:      q.Page,
		Limit:     q.Limit,
	})
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []domain.Book{}
	}

	return &ListResult{
		Books: books,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}, nil
}

func (s *Service) Get(ctx context.Context, isbn string, userID int64) (*domain.Book, error) {
	b, err := s.books.GetByISBN(ctx, isbn, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, isbn string, userID int64, req UpdateRequest) (*domain.Book, error) {
	b, err := s.Get(ctx, isbn, userID)
	if err != nil {
		return nil, err
	}

	b.Name = req.Name
	b.Description = req.Description
	b.Author = req.Author
	b.Stock = req.Stock

	if err := s.books.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ToggleFavorite(ctx context.Context, isbn string, userID int64) (*domain.Book, error) {
	b, err := s.Get(ctx, isbn, userID)
	if err != nil {
		return nil, err
	}

	b.Favorite = !b.Favorite
	if err := s.books.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, isbn string, userID int64) error {
	if _, err := s.Get(ctx, isbn, userID); err != nil {
		return err
	}
	return s.books.Delete(ctx, isbn, userID)
}
