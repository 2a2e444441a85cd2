package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/catalog/internal/dto"
)

func createAuthor(t *testing.T, router *gin.Engine, lastName, firstName string) dto.AuthorDTO {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/authors", map[string]string{
		"lastName":  lastName,
		"firstName": firstName,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[dto.AuthorDTO](t, w)
}

func TestAuthorsController_ListAuthors(t *testing.T) {
	t.Run("returns empty array when no authors", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(t, router, http.MethodGet, "/api/authors", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("returns authors in creation order", func(t *testing.T) {
		router := setupTestRouter(t)
		hugo := createAuthor(t, router, "Hugo", "Victor")
		zola := createAuthor(t, router, "Zola", "Émile")

		w := doRequest(t, router, http.MethodGet, "/api/authors", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[[]dto.AuthorDTO](t, w)
		assert.Equal(t, []dto.AuthorDTO{hugo, zola}, got)
	})
}

func TestAuthorsController_CreateAuthor(t *testing.T) {
	t.Run("assigns id and ignores body id", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(t, router, http.MethodPost, "/api/authors", map[string]any{
			"id":        42,
			"lastName":  "Hugo",
			"firstName": "Victor",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		author := decodeBody[dto.AuthorDTO](t, w)
		assert.NotZero(t, author.ID)
		assert.NotEqual(t, uint(42), author.ID)
		assert.Equal(t, "Hugo", author.LastName)
		assert.Equal(t, "Victor", author.FirstName)
	})

	t.Run("rejects blank last name", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(t, router, http.MethodPost, "/api/authors", map[string]string{
			"lastName":  "  ",
			"firstName": "Victor",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		response := decodeBody[ErrorResponse](t, w)
		assert.Equal(t, CodeValidation, response.Code)
		assert.Contains(t, response.Details, "lastName")

		list := doRequest(t, router, http.MethodGet, "/api/authors", nil)
		assert.JSONEq(t, `[]`, list.Body.String())
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(t, router, http.MethodPost, "/api/authors", `{"lastName":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		response := decodeBody[ErrorResponse](t, w)
		assert.Equal(t, CodeBadRequest, response.Code)
	})
}

func TestAuthorsController_GetAuthor(t *testing.T) {
	router := setupTestRouter(t)
	hugo := createAuthor(t, router, "Hugo", "Victor")

	t.Run("returns author", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/authors/%d", hugo.ID), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, hugo, decodeBody[dto.AuthorDTO](t, w))
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/authors/999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		response := decodeBody[ErrorResponse](t, w)
		assert.Equal(t, CodeNotFound, response.Code)
		assert.Equal(t, "author not found with id: 999", response.Error)
	})

	t.Run("returns 400 for non-numeric id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/authors/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorsController_UpdateAuthor(t *testing.T) {
	t.Run("path id wins over body id", func(t *testing.T) {
		router := setupTestRouter(t)
		hugo := createAuthor(t, router, "Hugo", "Victor")
		zola := createAuthor(t, router, "Zola", "Émile")

		w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/authors/%d", hugo.ID), map[string]any{
			"id":        zola.ID,
			"lastName":  "Hugo",
			"firstName": "Victor-Marie",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		updated := decodeBody[dto.AuthorDTO](t, w)
		assert.Equal(t, hugo.ID, updated.ID)
		assert.Equal(t, "Victor-Marie", updated.FirstName)

		untouched := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/authors/%d", zola.ID), nil)
		assert.Equal(t, zola, decodeBody[dto.AuthorDTO](t, untouched))
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(t, router, http.MethodPut, "/api/authors/5", map[string]string{
			"lastName":  "Hugo",
			"firstName": "Victor",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("validation wins over unknown id", func(t *testing.T) {
		router := setupTestRouter(t)

		w := doRequest(t, router, http.MethodPut, "/api/authors/5", map[string]string{"lastName": ""})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorsController_DeleteAuthor(t *testing.T) {
	router := setupTestRouter(t)
	hugo := createAuthor(t, router, "Hugo", "Victor")
	book := createBook(t, router, "Les Misérables", "12.50", "1862-04-03", hugo.ID)

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/authors/%d", hugo.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	gone := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/authors/%d", hugo.ID), nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)

	bookGone := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/books/%d", book.ID), nil)
	assert.Equal(t, http.StatusNotFound, bookGone.Code)

	again := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/authors/%d", hugo.ID), nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestAuthorsController_SearchAuthors(t *testing.T) {
	router := setupTestRouter(t)
	hugo := createAuthor(t, router, "Hugo", "Victor")
	createAuthor(t, router, "Dumas", "Alexandre")

	t.Run("matches case-insensitively", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/authors/search?lastName=HUG", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []dto.AuthorDTO{hugo}, decodeBody[[]dto.AuthorDTO](t, w))
	})

	t.Run("missing query returns everyone", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/authors/search", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody[[]dto.AuthorDTO](t, w), 2)
	})

	t.Run("no match returns empty array", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/authors/search?lastName=Balzac", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
