package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	AuthorService AuthorService
	BookService   BookService

	// Health checks
	Database Pinger

	// Allowed CORS origins; empty or "*" allows all
	AllowOrigins []string

	// Application info
	Version string
}
