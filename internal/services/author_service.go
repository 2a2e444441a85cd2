package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/dto"
)

// AuthorService implements the author use cases on top of an
// AuthorRepository.
type AuthorService struct {
	repo AuthorRepository
}

// NewAuthorService creates a new AuthorService.
func NewAuthorService(repo AuthorRepository) *AuthorService {
	return &AuthorService{repo: repo}
}

// ListAuthors returns every author. An empty catalog yields an empty slice.
func (s *AuthorService) ListAuthors(ctx context.Context) ([]dto.AuthorDTO, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return dto.FromAuthors(authors), nil
}

func (s *AuthorService) GetAuthor(ctx context.Context, id uint) (dto.AuthorDTO, error) {
	author, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AuthorDTO{}, authorNotFound(id)
	}
	if err != nil {
		return dto.AuthorDTO{}, fmt.Errorf("failed to get author %d: %w", id, err)
	}
	return dto.FromAuthor(*author), nil
}

// CreateAuthor stores a new author. Any ID on input is ignored.
func (s *AuthorService) CreateAuthor(ctx context.Context, input dto.AuthorDTO) (dto.AuthorDTO, error) {
	if err := newValidationError(input.Validate()); err != nil {
		return dto.AuthorDTO{}, err
	}

	author := input.ToEntity()
	if err := s.repo.Save(ctx, &author); err != nil {
		return dto.AuthorDTO{}, fmt.Errorf("failed to create author: %w", err)
	}

	log.Info().Uint("author_id", author.ID).Msg("Author created")
	return dto.FromAuthor(author), nil
}

// UpdateAuthor replaces the names of an existing author. It never creates
// a row and leaves the author's books untouched.
func (s *AuthorService) UpdateAuthor(ctx context.Context, id uint, input dto.AuthorDTO) (dto.AuthorDTO, error) {
	if err := newValidationError(input.Validate()); err != nil {
		return dto.AuthorDTO{}, err
	}

	author, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AuthorDTO{}, authorNotFound(id)
	}
	if err != nil {
		return dto.AuthorDTO{}, fmt.Errorf("failed to get author %d: %w", id, err)
	}

	input.ApplyTo(author)
	err = s.repo.Save(ctx, author)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AuthorDTO{}, authorNotFound(id)
	}
	if err != nil {
		return dto.AuthorDTO{}, fmt.Errorf("failed to update author %d: %w", id, err)
	}

	return dto.FromAuthor(*author), nil
}

// DeleteAuthor permanently removes the author and every book it owns.
// The deletion cannot be undone.
func (s *AuthorService) DeleteAuthor(ctx context.Context, id uint) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check author %d: %w", id, err)
	}
	if !exists {
		return authorNotFound(id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete author %d: %w", id, err)
	}

	log.Info().Uint("author_id", id).Msg("Author deleted with all of their books")
	return nil
}

// SearchAuthorsByLastName matches last names containing query, ignoring
// case. An empty query returns every author.
func (s *AuthorService) SearchAuthorsByLastName(ctx context.Context, query string) ([]dto.AuthorDTO, error) {
	authors, err := s.repo.SearchByLastName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search authors: %w", err)
	}
	return dto.FromAuthors(authors), nil
}
