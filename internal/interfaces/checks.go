package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// AuthorRepository implementations
var _ services.AuthorRepository = (*authors.Repository)(nil)

// AuthorFinder implementations
var _ services.AuthorFinder = (*authors.Repository)(nil)

// BookRepository implementations
var _ services.BookRepository = (*books.Repository)(nil)

// =============================================================================
// HTTP Layer
// =============================================================================

// Service implementations used by controllers
var _ http.AuthorService = (*services.AuthorService)(nil)
var _ http.BookService = (*services.BookService)(nil)

// Health check
var _ http.Pinger = (*database.Database)(nil)
