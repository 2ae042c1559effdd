package repository

import (
	"context"

	"gorm.io/gorm"

	"bookshelf/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// GetByName matches the stored name exactly; callers normalize case at the
// boundary.
func (r *UserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByRefreshToken finds the user whose stored refresh token equals the
// presented value. This is the revocation check: a cleared or rotated token
// matches nothing.
func (r *UserRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("refresh_token = ?", refreshToken).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateRefreshToken overwrites the stored refresh token; nil clears it.
// Last write wins, there is no compare-and-swap on the previous value.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshToken *string) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Update("refresh_token", refreshToken).Error
}
