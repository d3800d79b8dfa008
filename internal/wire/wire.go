// Package wire provides dependency injection for the desk application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/desk/internal/adapters/cli"
	"github.com/example/desk/internal/adapters/ident"
	"github.com/example/desk/internal/adapters/seed"
	"github.com/example/desk/internal/adapters/sqlite"
	"github.com/example/desk/internal/app"
	"github.com/example/desk/internal/config"
	"github.com/example/desk/internal/db"
	"github.com/example/desk/internal/ports/primary"
)

var (
	cfg         = config.DefaultConfig()
	deskService primary.DeskService
	database    *sql.DB
	once        sync.Once
)

// Configure sets the configuration used to build services.
// It must be called before the first service is requested.
func Configure(c *config.Config) {
	cfg = c
}

// DeskService returns the singleton DeskService instance.
func DeskService() primary.DeskService {
	once.Do(initServices)
	return deskService
}

// Close releases the activity database, if one was opened.
func Close() error {
	if database != nil {
		return database.Close()
	}
	return nil
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	deskService, database, err = BuildDeskService(cfg)
	if err != nil {
		log.Fatalf("failed to initialize desk: %v", err)
	}
}

// BuildDeskService wires a fresh, unseeded DeskService for c.
// The caller owns the returned database.
func BuildDeskService(c *config.Config) (*app.DeskServiceImpl, *sql.DB, error) {
	// Get database connection
	activityDB, err := db.Open(c.ActivityDB)
	if err != nil {
		return nil, nil, err
	}

	// Create secondary adapters
	activityRepo := sqlite.NewActivityRepository(activityDB)
	activityLog := sqlite.NewActivityLogWriter(activityRepo, c.Operator)
	seeds := seed.NewYAMLSource(c.SeedFile)
	ids := ident.NewUUIDGenerator()

	return app.NewDeskService(seeds, activityLog, activityRepo, ids, nil), activityDB, nil
}

// DeskAdapter returns a new DeskAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func DeskAdapter() *cliadapter.DeskAdapter {
	return DeskAdapterWithOutput(os.Stdout)
}

// DeskAdapterWithOutput returns a new DeskAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func DeskAdapterWithOutput(out io.Writer) *cliadapter.DeskAdapter {
	return cliadapter.NewDeskAdapter(DeskService(), out)
}
