package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/dto"
	"github.com/mrlokans/catalog/internal/entities"
)

// BookService implements the book use cases. It resolves author references
// through authors before any write so a missing author never leaves a
// partially written book.
type BookService struct {
	books   BookRepository
	authors AuthorFinder
}

// NewBookService creates a new BookService.
func NewBookService(books BookRepository, authors AuthorFinder) *BookService {
	return &BookService{books: books, authors: authors}
}

func (s *BookService) ListBooks(ctx context.Context) ([]dto.BookDTO, error) {
	books, err := s.books.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return dto.FromBooks(books), nil
}

func (s *BookService) GetBook(ctx context.Context, id uint) (dto.BookDTO, error) {
	book, err := s.findBook(ctx, id)
	if err != nil {
		return dto.BookDTO{}, err
	}
	return dto.FromBook(*book), nil
}

// CreateBook validates input, resolves its author and stores a new book.
// Any ID or author name on input is ignored.
func (s *BookService) CreateBook(ctx context.Context, input dto.BookDTO) (dto.BookDTO, error) {
	if err := newValidationError(input.Validate()); err != nil {
		return dto.BookDTO{}, err
	}

	author, err := s.resolveAuthor(ctx, input.AuthorID)
	if err != nil {
		return dto.BookDTO{}, err
	}

	book, err := input.ToEntity(*author)
	if err != nil {
		return dto.BookDTO{}, NewFieldError("publicationDate", err.Error())
	}
	if err := s.books.Save(ctx, &book); err != nil {
		return dto.BookDTO{}, fmt.Errorf("failed to create book: %w", err)
	}

	log.Info().Uint("book_id", book.ID).Uint("author_id", book.AuthorID).Msg("Book created")
	return dto.FromBook(book), nil
}

// UpdateBook fully replaces an existing book, possibly moving it to another
// author. Both the book and the new author must exist.
func (s *BookService) UpdateBook(ctx context.Context, id uint, input dto.BookDTO) (dto.BookDTO, error) {
	if err := newValidationError(input.Validate()); err != nil {
		return dto.BookDTO{}, err
	}

	book, err := s.findBook(ctx, id)
	if err != nil {
		return dto.BookDTO{}, err
	}

	author, err := s.resolveAuthor(ctx, input.AuthorID)
	if err != nil {
		return dto.BookDTO{}, err
	}

	if err := input.ApplyTo(book, *author); err != nil {
		return dto.BookDTO{}, NewFieldError("publicationDate", err.Error())
	}
	err = s.books.Save(ctx, book)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.BookDTO{}, bookNotFound(id)
	}
	if err != nil {
		return dto.BookDTO{}, fmt.Errorf("failed to update book %d: %w", id, err)
	}

	return dto.FromBook(*book), nil
}

func (s *BookService) DeleteBook(ctx context.Context, id uint) error {
	exists, err := s.books.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check book %d: %w", id, err)
	}
	if !exists {
		return bookNotFound(id)
	}

	if err := s.books.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	return nil
}

// SearchBooksByTitle matches titles containing query, ignoring case. An
// empty query returns every book.
func (s *BookService) SearchBooksByTitle(ctx context.Context, query string) ([]dto.BookDTO, error) {
	books, err := s.books.SearchByTitle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return dto.FromBooks(books), nil
}

// ListBooksByAuthor filters books by author. An unknown author yields an
// empty slice, not an error.
func (s *BookService) ListBooksByAuthor(ctx context.Context, authorID uint) ([]dto.BookDTO, error) {
	books, err := s.books.FindByAuthorID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books of author %d: %w", authorID, err)
	}
	return dto.FromBooks(books), nil
}

func (s *BookService) findBook(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, bookNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}
	return book, nil
}

func (s *BookService) resolveAuthor(ctx context.Context, authorID uint) (*entities.Author, error) {
	author, err := s.authors.FindByID(ctx, authorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, authorNotFound(authorID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve author %d: %w", authorID, err)
	}
	return author, nil
}
