// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations
//	├── pattern.go       # LIKE pattern helpers shared by searches
//	├── authors/         # Author CRUD, last name search, cascading delete
//	└── books/           # Book CRUD, title search, filter by author
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	authorsRepo := authors.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	author, err := authorsRepo.FindByID(ctx, 1)
//	hugo, err := booksRepo.FindByAuthorID(ctx, author.ID)
//
// # Interface Implementations
//
//   - authors.Repository: implements services.AuthorRepository
//   - books.Repository: implements services.BookRepository
//
// Lookups of a missing row return gorm.ErrRecordNotFound unchanged so the
// service layer can tell absence apart from storage failures.
package database
