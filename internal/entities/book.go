package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Book struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Title           string          `gorm:"not null;index;size:512" json:"title"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	PublicationDate time.Time       `gorm:"type:date;not null" json:"publication_date"`
	AuthorID        uint            `gorm:"not null;index" json:"author_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Author is populated by read queries that join the authors table.
	// Writes never persist it.
	Author Author `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Book) TableName() string {
	return "books"
}
