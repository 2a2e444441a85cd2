package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/dto"
	"github.com/mrlokans/catalog/internal/entities"
)

// vanishingAuthorRepository deletes the author right before saving it,
// as a concurrent DELETE landing between lookup and write would.
type vanishingAuthorRepository struct {
	*authors.Repository
}

func (r vanishingAuthorRepository) Save(ctx context.Context, author *entities.Author) error {
	if author.ID != 0 {
		if err := r.Repository.DeleteByID(ctx, author.ID); err != nil {
			return err
		}
	}
	return r.Repository.Save(ctx, author)
}

func TestAuthorService_CreateThenGet(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	created, err := c.authors.CreateAuthor(ctx, dto.AuthorDTO{ID: 42, LastName: "Hugo", FirstName: "Victor"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, uint(42), created.ID, "client supplied id must be ignored")

	got, err := c.authors.GetAuthor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Hugo", got.LastName)
	assert.Equal(t, "Victor", got.FirstName)
}

func TestAuthorService_CreateAuthor_Validation(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	_, err := c.authors.CreateAuthor(ctx, dto.AuthorDTO{LastName: "", FirstName: "Victor"})

	require.ErrorIs(t, err, ErrValidation)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "lastName")

	all, err := c.authors.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAuthorService_GetAuthor_NotFound(t *testing.T) {
	c := setupTestCatalog(t)

	_, err := c.authors.GetAuthor(context.Background(), 7)

	assertNotFound(t, err, ResourceAuthor, 7)
}

func TestAuthorService_ListAuthors(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	empty, err := c.authors.ListAuthors(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	c.mustCreateAuthor(t, "Hugo", "Victor")
	c.mustCreateAuthor(t, "Dumas", "Alexandre")

	all, err := c.authors.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAuthorService_UpdateAuthor(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	hugo := c.mustCreateAuthor(t, "Hugo", "Victor")
	book := c.mustCreateBook(t, "Les Misérables", "12.50", "1862-04-03", hugo.ID)

	updated, err := c.authors.UpdateAuthor(ctx, hugo.ID, dto.AuthorDTO{ID: 999, LastName: "Hugo", FirstName: "Victor-Marie"})
	require.NoError(t, err)
	assert.Equal(t, hugo.ID, updated.ID)
	assert.Equal(t, "Victor-Marie", updated.FirstName)

	// books keep pointing at the author and see the new name
	got, err := c.books.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, hugo.ID, got.AuthorID)
	assert.Equal(t, "Victor-Marie", got.AuthorFirstName)
}

func TestAuthorService_UpdateAuthor_NotFoundDoesNotCreate(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	_, err := c.authors.UpdateAuthor(ctx, 12, dto.AuthorDTO{LastName: "Verne", FirstName: "Jules"})

	assertNotFound(t, err, ResourceAuthor, 12)

	all, err := c.authors.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAuthorService_UpdateAuthor_DeletedMeanwhileIsNotRecreated(t *testing.T) {
	authorsRepo, _ := setupTestRepositories(t)
	ctx := context.Background()

	created, err := NewAuthorService(authorsRepo).CreateAuthor(ctx, dto.AuthorDTO{LastName: "Hugo", FirstName: "Victor"})
	require.NoError(t, err)

	svc := NewAuthorService(vanishingAuthorRepository{authorsRepo})
	_, err = svc.UpdateAuthor(ctx, created.ID, dto.AuthorDTO{LastName: "Hugo", FirstName: "Victor-Marie"})

	assertNotFound(t, err, ResourceAuthor, created.ID)
	exists, err := authorsRepo.ExistsByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAuthorService_DeleteAuthor_CascadesToBooks(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	hugo := c.mustCreateAuthor(t, "Hugo", "Victor")
	dumas := c.mustCreateAuthor(t, "Dumas", "Alexandre")
	c.mustCreateBook(t, "Les Misérables", "12.50", "1862-04-03", hugo.ID)
	c.mustCreateBook(t, "Notre-Dame de Paris", "10.99", "1831-03-16", hugo.ID)
	kept := c.mustCreateBook(t, "Les Trois Mousquetaires", "13.50", "1844-03-01", dumas.ID)

	require.NoError(t, c.authors.DeleteAuthor(ctx, hugo.ID))

	_, err := c.authors.GetAuthor(ctx, hugo.ID)
	assertNotFound(t, err, ResourceAuthor, hugo.ID)

	byAuthor, err := c.books.ListBooksByAuthor(ctx, hugo.ID)
	require.NoError(t, err)
	assert.Empty(t, byAuthor)

	remaining, err := c.books.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}

func TestAuthorService_DeleteAuthor_NotFound(t *testing.T) {
	c := setupTestCatalog(t)

	err := c.authors.DeleteAuthor(context.Background(), 3)

	assertNotFound(t, err, ResourceAuthor, 3)
}

func TestAuthorService_SearchAuthorsByLastName(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	c.mustCreateAuthor(t, "Hugo", "Victor")
	c.mustCreateAuthor(t, "Verne", "Jules")

	lower, err := c.authors.SearchAuthorsByLastName(ctx, "hugo")
	require.NoError(t, err)
	upper, err := c.authors.SearchAuthorsByLastName(ctx, "HUGO")
	require.NoError(t, err)
	require.Len(t, lower, 1)
	assert.Equal(t, lower, upper)

	all, err := c.authors.SearchAuthorsByLastName(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := c.authors.SearchAuthorsByLastName(ctx, "Balzac")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
