package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/dto"
)

type AuthorsController struct {
	service AuthorService
}

func NewAuthorsController(service AuthorService) *AuthorsController {
	return &AuthorsController{service: service}
}

// ListAuthors returns every author
// GET /api/authors
func (ac *AuthorsController) ListAuthors(c *gin.Context) {
	authors, err := ac.service.ListAuthors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list authors")
		return
	}
	respondOK(c, authors)
}

// GetAuthor returns a single author
// GET /api/authors/:id
func (ac *AuthorsController) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.service.GetAuthor(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get author")
		return
	}
	respondOK(c, author)
}

// CreateAuthor adds an author
// POST /api/authors
func (ac *AuthorsController) CreateAuthor(c *gin.Context) {
	var input dto.AuthorDTO
	if !bindJSON(c, &input) {
		return
	}

	author, err := ac.service.CreateAuthor(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "create author")
		return
	}
	respondCreated(c, author)
}

// UpdateAuthor replaces an author's names; the path id wins over any body id
// PUT /api/authors/:id
func (ac *AuthorsController) UpdateAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.AuthorDTO
	if !bindJSON(c, &input) {
		return
	}

	author, err := ac.service.UpdateAuthor(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, "update author")
		return
	}
	respondOK(c, author)
}

// DeleteAuthor removes an author and all of their books
// DELETE /api/authors/:id
func (ac *AuthorsController) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.service.DeleteAuthor(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete author")
		return
	}
	respondNoContent(c)
}

// SearchAuthors matches last names case-insensitively
// GET /api/authors/search?lastName=
func (ac *AuthorsController) SearchAuthors(c *gin.Context) {
	authors, err := ac.service.SearchAuthorsByLastName(c.Request.Context(), c.Query("lastName"))
	if err != nil {
		respondServiceError(c, err, "search authors")
		return
	}
	respondOK(c, authors)
}
