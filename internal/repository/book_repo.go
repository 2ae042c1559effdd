package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"bookshelf/internal/domain"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// BookFilter narrows a per-user listing. Zero values mean "no filter".
type BookFilter struct {
	Search    string
	Favorites *bool
	Page      int
	Limit     int
}

func (r *BookRepository) Create(ctx context.Context, b *domain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepository) GetByISBN(ctx context.Context, isbn string, userID int64) (*domain.Book, error) {
	var b domain.Book
	if err := r.db.WithContext(ctx).Where("isbn = ? AND user_id = ?", isbn, userID).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookRepository) List(ctx context.Context, userID int64, filter BookFilter) ([]domain.Book, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Book{}).Where("user_id = ?", userID)

	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("name LIKE ? OR author LIKE ?", like, like)
	}
	if filter.Favorites != nil {
		q = q.Where("favorite = ?", *filter.Favorites)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var books []domain.Book
	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&books).Error
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookRepository) Update(ctx context.Context, b *domain.Book) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookRepository) Delete(ctx context.Context, isbn string, userID int64) error {
	return r.db.WithContext(ctx).
		Where("isbn = ? AND user_id = ?", isbn, userID).
		Delete(&domain.Book{}).Error
}
