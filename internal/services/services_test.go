package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/dto"
)

type testCatalog struct {
	authors *AuthorService
	books   *BookService
}

func setupTestRepositories(t *testing.T) (*authors.Repository, *books.Repository) {
	t.Helper()

	db, err := database.NewSQLiteDatabase(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return authors.NewRepository(db.DB), books.NewRepository(db.DB)
}

func setupTestCatalog(t *testing.T) *testCatalog {
	t.Helper()

	authorsRepo, booksRepo := setupTestRepositories(t)

	return &testCatalog{
		authors: NewAuthorService(authorsRepo),
		books:   NewBookService(booksRepo, authorsRepo),
	}
}

func (c *testCatalog) mustCreateAuthor(t *testing.T, lastName, firstName string) dto.AuthorDTO {
	t.Helper()
	author, err := c.authors.CreateAuthor(context.Background(), dto.AuthorDTO{LastName: lastName, FirstName: firstName})
	require.NoError(t, err)
	return author
}

func (c *testCatalog) mustCreateBook(t *testing.T, title, price, date string, authorID uint) dto.BookDTO {
	t.Helper()
	book, err := c.books.CreateBook(context.Background(), dto.BookDTO{
		Title:           title,
		Price:           decimal.RequireFromString(price),
		PublicationDate: date,
		AuthorID:        authorID,
	})
	require.NoError(t, err)
	return book
}

func assertNotFound(t *testing.T, err error, resource string, id uint) {
	t.Helper()
	require.ErrorIs(t, err, ErrNotFound)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, resource, nf.Resource)
	assert.Equal(t, id, nf.ID)
}
