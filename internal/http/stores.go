package http

import (
	"context"

	"github.com/mrlokans/catalog/internal/dto"
)

// This file consolidates the service interfaces used by HTTP controllers.
// Each controller depends only on the operations it calls; the concrete
// implementations live in internal/services.

// AuthorService provides the author use cases.
type AuthorService interface {
	ListAuthors(ctx context.Context) ([]dto.AuthorDTO, error)
	GetAuthor(ctx context.Context, id uint) (dto.AuthorDTO, error)
	CreateAuthor(ctx context.Context, input dto.AuthorDTO) (dto.AuthorDTO, error)
	UpdateAuthor(ctx context.Context, id uint, input dto.AuthorDTO) (dto.AuthorDTO, error)
	DeleteAuthor(ctx context.Context, id uint) error
	SearchAuthorsByLastName(ctx context.Context, query string) ([]dto.AuthorDTO, error)
}

// BookService provides the book use cases.
type BookService interface {
	ListBooks(ctx context.Context) ([]dto.BookDTO, error)
	GetBook(ctx context.Context, id uint) (dto.BookDTO, error)
	CreateBook(ctx context.Context, input dto.BookDTO) (dto.BookDTO, error)
	UpdateBook(ctx context.Context, id uint, input dto.BookDTO) (dto.BookDTO, error)
	DeleteBook(ctx context.Context, id uint) error
	SearchBooksByTitle(ctx context.Context, query string) ([]dto.BookDTO, error)
	ListBooksByAuthor(ctx context.Context, authorID uint) ([]dto.BookDTO, error)
}

// Pinger reports store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}
