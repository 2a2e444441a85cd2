package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/logging"
)

// MigrateCommand creates or updates the catalog schema without starting
// the HTTP server.
type MigrateCommand struct {
	Driver   string
	Path     string
	DSN      string
	LogLevel string
	Verbose  bool
}

// NewMigrateCommand seeds flag defaults from cfg.
func NewMigrateCommand(cfg *config.Config) *MigrateCommand {
	return &MigrateCommand{
		Driver:   cfg.Database.Driver,
		Path:     cfg.Database.Path,
		DSN:      cfg.Database.DSN,
		LogLevel: cfg.Database.LogLevel,
	}
}

func (cmd *MigrateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)

	fs.StringVar(&cmd.Driver, "driver", cmd.Driver, "Database driver: sqlite or postgres")
	fs.StringVar(&cmd.Path, "db", cmd.Path, "Path to the sqlite database file")
	fs.StringVar(&cmd.DSN, "dsn", cmd.DSN, "Postgres connection string")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Log every SQL statement")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s migrate [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create or update the authors and books tables.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s migrate -db ./catalog.db\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s migrate -driver postgres -dsn \"host=localhost user=catalog dbname=catalog\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch cmd.Driver {
	case config.DriverSQLite:
		if cmd.Path == "" {
			return fmt.Errorf("required flag -db not provided")
		}
	case config.DriverPostgres:
		if cmd.DSN == "" {
			return fmt.Errorf("required flag -dsn not provided")
		}
	default:
		return fmt.Errorf("unsupported driver %q", cmd.Driver)
	}

	if cmd.Verbose {
		cmd.LogLevel = "info"
	}

	return nil
}

func (cmd *MigrateCommand) Run() error {
	logging.Init("info", "console")

	db, err := database.NewDatabase(config.Database{
		Driver:   cmd.Driver,
		Path:     cmd.Path,
		DSN:      cmd.DSN,
		LogLevel: cmd.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	authorCount, err := authors.NewRepository(db.DB).Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count authors: %w", err)
	}
	bookCount, err := books.NewRepository(db.DB).Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count books: %w", err)
	}

	fmt.Println("Migration complete")
	fmt.Printf("  Authors: %d\n", authorCount)
	fmt.Printf("  Books:   %d\n", bookCount)

	return nil
}
