package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table.
type BookModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Author      string    `gorm:"type:varchar(255);not null"`
	Price       float64   `gorm:"type:numeric(10,2);not null;default:0"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// All returns every persistence model, in migration order.
func All() []any {
	return []any{
		&AccountModel{},
		&BookModel{},
	}
}
