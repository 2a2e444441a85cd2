package entities

import "time"

// Author owns zero or more books. Books reference their author through
// Book.AuthorID; the author row carries no back-reference.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LastName  string    `gorm:"not null;index;size:256" json:"last_name"`
	FirstName string    `gorm:"not null;size:256" json:"first_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}
