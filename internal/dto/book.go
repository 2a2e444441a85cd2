package dto

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mrlokans/catalog/internal/entities"
)

// DateLayout is the wire format of publication dates.
const DateLayout = "2006-01-02"

func init() {
	// prices go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// BookDTO is the externally visible shape of a book. AuthorLastName and
// AuthorFirstName are filled on read from the joined author and ignored on
// write; the author is addressed only by AuthorID.
type BookDTO struct {
	ID              uint            `json:"id"`
	Title           string          `json:"title"`
	Price           decimal.Decimal `json:"price"`
	PublicationDate string          `json:"publicationDate"`
	AuthorID        uint            `json:"authorId"`
	AuthorLastName  string          `json:"authorLastName,omitempty"`
	AuthorFirstName string          `json:"authorFirstName,omitempty"`
}

func (b BookDTO) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.By(notBlank("title is required"))),
		validation.Field(&b.Price,
			validation.By(positiveDecimal),
			validation.By(priceInRange),
			validation.By(priceCents),
		),
		validation.Field(&b.PublicationDate,
			validation.Required.Error("publication date is required"),
			validation.Date(DateLayout).Error("publication date must be formatted as YYYY-MM-DD"),
		),
		validation.Field(&b.AuthorID, validation.Required.Error("author is required")),
	)
}

// ParsedPublicationDate returns the publication date at midnight UTC.
func (b BookDTO) ParsedPublicationDate() (time.Time, error) {
	return time.ParseInLocation(DateLayout, b.PublicationDate, time.UTC)
}

// ToEntity builds a new book owned by author. The ID is left zero so storage
// assigns it.
func (b BookDTO) ToEntity(author entities.Author) (entities.Book, error) {
	var book entities.Book
	if err := b.ApplyTo(&book, author); err != nil {
		return entities.Book{}, err
	}
	return book, nil
}

// ApplyTo overwrites every mutable field of book, including the owning
// author. The book's ID is left as is.
func (b BookDTO) ApplyTo(book *entities.Book, author entities.Author) error {
	published, err := b.ParsedPublicationDate()
	if err != nil {
		return err
	}
	book.Title = strings.TrimSpace(b.Title)
	book.Price = b.Price
	book.PublicationDate = published
	book.AuthorID = author.ID
	book.Author = author
	return nil
}

// FromBook maps a book whose Author was loaded by a join.
func FromBook(book entities.Book) BookDTO {
	return BookDTO{
		ID:              book.ID,
		Title:           book.Title,
		Price:           book.Price,
		PublicationDate: book.PublicationDate.Format(DateLayout),
		AuthorID:        book.AuthorID,
		AuthorLastName:  book.Author.LastName,
		AuthorFirstName: book.Author.FirstName,
	}
}

func FromBooks(books []entities.Book) []BookDTO {
	return lo.Map(books, func(b entities.Book, _ int) BookDTO {
		return FromBook(b)
	})
}
