package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RecoveryMiddleware())
	router.Use(SecurityHeadersMiddleware())
	router.Use(CORSMiddleware(cfg.AllowOrigins))

	health := NewHealthController(cfg.Database, cfg.Version)
	authorsController := NewAuthorsController(cfg.AuthorService)
	booksController := NewBooksController(cfg.BookService)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")
	api.Use(SanitizeInputMiddleware())

	// Authors API endpoints
	api.GET("/authors", authorsController.ListAuthors)
	api.GET("/authors/search", authorsController.SearchAuthors)
	api.GET("/authors/:id", authorsController.GetAuthor)
	api.POST("/authors", authorsController.CreateAuthor)
	api.PUT("/authors/:id", authorsController.UpdateAuthor)
	api.DELETE("/authors/:id", authorsController.DeleteAuthor)

	// Books API endpoints
	api.GET("/books", booksController.ListBooks)
	api.GET("/books/search", booksController.SearchBooks)
	api.GET("/books/author/:authorId", booksController.GetBooksByAuthor)
	api.GET("/books/:id", booksController.GetBook)
	api.POST("/books", booksController.CreateBook)
	api.PUT("/books/:id", booksController.UpdateBook)
	api.DELETE("/books/:id", booksController.DeleteBook)

	return router
}
