package domain

import "time"

// Book belongs to exactly one user; the ISBN is unique per owner, not
// globally.
type Book struct {
	ID          int64     `json:"-" gorm:"primaryKey"`
	ISBN        string    `json:"isbn" gorm:"size:20;not null;uniqueIndex:idx_books_isbn_user"`
	UserID      int64     `json:"-" gorm:"not null;uniqueIndex:idx_books_isbn_user;index"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"size:1000"`
	Author      string    `json:"author" gorm:"size:100;not null"`
	Stock       int       `json:"stock" gorm:"not null;default:0"`
	Favorite    bool      `json:"favorite" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Book) TableName() string { return "books" }
