package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/dto"
)

type BooksController struct {
	service BookService
}

func NewBooksController(service BookService) *BooksController {
	return &BooksController{service: service}
}

// ListBooks returns every book
// GET /api/books
func (bc *BooksController) ListBooks(c *gin.Context) {
	books, err := bc.service.ListBooks(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list books")
		return
	}
	respondOK(c, books)
}

// GetBook returns a single book
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.service.GetBook(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get book")
		return
	}
	respondOK(c, book)
}

// CreateBook adds a book to an existing author
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var input dto.BookDTO
	if !bindJSON(c, &input) {
		return
	}

	book, err := bc.service.CreateBook(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, "create book")
		return
	}
	respondCreated(c, book)
}

// UpdateBook replaces a book; the path id wins over any body id
// PUT /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.BookDTO
	if !bindJSON(c, &input) {
		return
	}

	book, err := bc.service.UpdateBook(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err, "update book")
		return
	}
	respondOK(c, book)
}

// DeleteBook removes a book
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.service.DeleteBook(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete book")
		return
	}
	respondNoContent(c)
}

// SearchBooks matches titles case-insensitively
// GET /api/books/search?title=
func (bc *BooksController) SearchBooks(c *gin.Context) {
	books, err := bc.service.SearchBooksByTitle(c.Request.Context(), c.Query("title"))
	if err != nil {
		respondServiceError(c, err, "search books")
		return
	}
	respondOK(c, books)
}

// GetBooksByAuthor lists an author's books; unknown authors yield []
// GET /api/books/author/:authorId
func (bc *BooksController) GetBooksByAuthor(c *gin.Context) {
	authorID, ok := parseIDParam(c, "authorId")
	if !ok {
		return
	}

	books, err := bc.service.ListBooksByAuthor(c.Request.Context(), authorID)
	if err != nil {
		respondServiceError(c, err, "books by author")
		return
	}
	respondOK(c, books)
}
