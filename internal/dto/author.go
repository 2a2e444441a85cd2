package dto

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"

	"github.com/mrlokans/catalog/internal/entities"
)

// AuthorDTO is the externally visible shape of an author.
type AuthorDTO struct {
	ID        uint   `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
}

// Validate checks the client supplied fields. ID is never validated since
// it is ignored on write.
func (a AuthorDTO) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.LastName, validation.By(notBlank("last name is required"))),
		validation.Field(&a.FirstName, validation.By(notBlank("first name is required"))),
	)
}

// ToEntity copies the writable fields into a new author. The ID is left
// zero so storage assigns it.
func (a AuthorDTO) ToEntity() entities.Author {
	return entities.Author{
		LastName:  strings.TrimSpace(a.LastName),
		FirstName: strings.TrimSpace(a.FirstName),
	}
}

// ApplyTo overwrites the mutable fields of an existing author.
func (a AuthorDTO) ApplyTo(author *entities.Author) {
	author.LastName = strings.TrimSpace(a.LastName)
	author.FirstName = strings.TrimSpace(a.FirstName)
}

func FromAuthor(author entities.Author) AuthorDTO {
	return AuthorDTO{
		ID:        author.ID,
		LastName:  author.LastName,
		FirstName: author.FirstName,
	}
}

// FromAuthors maps a slice, always returning a non-nil result so empty
// lists serialize as [].
func FromAuthors(authors []entities.Author) []AuthorDTO {
	return lo.Map(authors, func(a entities.Author, _ int) AuthorDTO {
		return FromAuthor(a)
	})
}
