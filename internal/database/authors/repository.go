// Package authors provides database operations for author management.
//
// This package implements the AuthorRepository interface defined in
// internal/services/interfaces.go.
//
// # Interface Implementation
//
//	var _ services.AuthorRepository = (*Repository)(nil)
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	author, err := repo.FindByID(ctx, 1)
package authors

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindAll retrieves every author ordered by id.
func (r *Repository) FindAll(ctx context.Context) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.WithContext(ctx).Order("id ASC").Find(&authors).Error
	return authors, err
}

// FindByID retrieves an author. Returns gorm.ErrRecordNotFound when absent.
func (r *Repository) FindByID(ctx context.Context, id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.WithContext(ctx).First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// ExistsByID reports whether an author with the given id exists.
func (r *Repository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Save inserts the author when its ID is zero and updates all columns
// otherwise. The generated ID is written back into author. Updating an
// author that no longer exists returns gorm.ErrRecordNotFound and writes
// nothing.
func (r *Repository) Save(ctx context.Context, author *entities.Author) error {
	if author.ID == 0 {
		return r.db.WithContext(ctx).Create(author).Error
	}

	result := r.db.WithContext(ctx).
		Model(author).
		Select("*").
		Omit("created_at").
		Updates(author)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByID removes the author together with every book that references
// it, in one transaction. Callers check existence first.
func (r *Repository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
			return fmt.Errorf("failed to delete books of author %d: %w", id, err)
		}
		if err := tx.Delete(&entities.Author{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete author %d: %w", id, err)
		}
		return nil
	})
}

// SearchByLastName returns authors whose last name contains query,
// ignoring case. An empty query matches every author.
func (r *Repository) SearchByLastName(ctx context.Context, query string) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.WithContext(ctx).
		Where("LOWER(last_name) LIKE ? ESCAPE ?", database.ContainsPattern(r.db, query), database.LikeEscape).
		Order("id ASC").
		Find(&authors).Error
	return authors, err
}

// Count returns the number of authors.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Author{}).Count(&count).Error
	return count, err
}
