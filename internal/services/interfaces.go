package services

import (
	"context"

	"github.com/mrlokans/catalog/internal/entities"
)

// AuthorRepository is the storage contract the author service depends on.
// FindByID returns gorm.ErrRecordNotFound when the row is absent.
type AuthorRepository interface {
	FindAll(ctx context.Context) ([]entities.Author, error)
	FindByID(ctx context.Context, id uint) (*entities.Author, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, author *entities.Author) error
	// DeleteByID also removes every book owned by the author.
	DeleteByID(ctx context.Context, id uint) error
	SearchByLastName(ctx context.Context, query string) ([]entities.Author, error)
}

// AuthorFinder resolves author references for the book service.
type AuthorFinder interface {
	FindByID(ctx context.Context, id uint) (*entities.Author, error)
}

// BookRepository is the storage contract the book service depends on.
// Reads populate Book.Author; FindByID returns gorm.ErrRecordNotFound when
// the row is absent.
type BookRepository interface {
	FindAll(ctx context.Context) ([]entities.Book, error)
	FindByID(ctx context.Context, id uint) (*entities.Book, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, book *entities.Book) error
	DeleteByID(ctx context.Context, id uint) error
	SearchByTitle(ctx context.Context, query string) ([]entities.Book, error)
	FindByAuthorID(ctx context.Context, authorID uint) ([]entities.Book, error)
}
