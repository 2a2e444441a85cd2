// Package books provides database operations for book management.
//
// This package implements the BookRepository interface defined in
// internal/services/interfaces.go.
//
// Every read joins the owning author so callers can render the author's
// name without a second query. Writes never touch the authors table.
//
// # Interface Implementation
//
//	var _ services.BookRepository = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	books, err := repo.FindByAuthorID(ctx, 1)
package books

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// withAuthor scopes a read to join the owning author.
func (r *Repository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Joins("Author")
}

// FindAll retrieves every book ordered by id.
func (r *Repository) FindAll(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.withAuthor(ctx).Order("books.id ASC").Find(&books).Error
	return books, err
}

// FindByID retrieves a book. Returns gorm.ErrRecordNotFound when absent.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.withAuthor(ctx).Where("books.id = ?", id).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ExistsByID reports whether a book with the given id exists.
func (r *Repository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Save inserts the book when its ID is zero and updates all columns
// otherwise. The Author association is never written. Updating a book that
// no longer exists returns gorm.ErrRecordNotFound and writes nothing.
func (r *Repository) Save(ctx context.Context, book *entities.Book) error {
	if book.ID == 0 {
		return r.db.WithContext(ctx).Omit(clause.Associations).Create(book).Error
	}

	result := r.db.WithContext(ctx).
		Model(book).
		Select("*").
		Omit("created_at", clause.Associations).
		Updates(book)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByID removes a single book. Callers check existence first.
func (r *Repository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Book{}, id).Error
}

// SearchByTitle returns books whose title contains query, ignoring case.
// An empty query matches every book.
func (r *Repository) SearchByTitle(ctx context.Context, query string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.withAuthor(ctx).
		Where("LOWER(books.title) LIKE ? ESCAPE ?", database.ContainsPattern(r.db, query), database.LikeEscape).
		Order("books.id ASC").
		Find(&books).Error
	return books, err
}

// FindByAuthorID returns the books owned by an author. It does not check
// that the author exists.
func (r *Repository) FindByAuthorID(ctx context.Context, authorID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.withAuthor(ctx).
		Where("books.author_id = ?", authorID).
		Order("books.id ASC").
		Find(&books).Error
	return books, err
}

// Count returns the number of books.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error
	return count, err
}
