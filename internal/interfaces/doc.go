// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - AuthorRepository: Author persistence (internal/services/interfaces.go)
//   - AuthorFinder: Author lookup used when resolving a book's author (internal/services/interfaces.go)
//   - BookRepository: Book persistence (internal/services/interfaces.go)
//
// ## HTTP Interfaces
//
//   - AuthorService, BookService: Use cases behind the controllers (internal/http/stores.go)
//   - Pinger: Store connectivity for /health (internal/http/stores.go)
//
// # Adding a New Catalog Resource
//
// To add a new resource (e.g., publishers):
//
//  1. Add the entity in internal/entities/ and register it in database.NewDatabase
//
//  2. Create sub-package: internal/database/publishers/
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add the DTO in internal/dto/ with a Validate method
//
//  4. Add the service in internal/services/ and the controller in internal/http/
//
//  5. Register routes in router.go and add compile-time checks to checks.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
