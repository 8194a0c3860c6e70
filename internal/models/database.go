package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Connect opens the SQLite database and configures the connection.
//
// The returned handle is the single seam between the ledger core and
// its storage backend. Repositories receive it explicitly, there is no
// package level database.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection makes every repository operation a critical
	// section and prevents SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(Account{}, Category{}, Budget{}, Transaction{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("bookkeeper:after_query", queryCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Query().After("*").Register("bookkeeper:after_query_general", generalCallback)
	if err != nil {
		return nil, err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("bookkeeper:after_create", createUpdateCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Create().After("*").Register("bookkeeper:after_create_general", generalCallback)
	if err != nil {
		return nil, err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("bookkeeper:after_update", createUpdateCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Update().After("*").Register("bookkeeper:after_update_general", generalCallback)
	if err != nil {
		return nil, err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("bookkeeper:after_delete_general", generalCallback)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for
// create and update calls and replaces them with taxonomy errors.
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// Account names must be unique
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: accounts.name") {
		db.Error = ErrAccountNameNotUnique
		return
	}

	// One budget per category and month
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: budgets.category_id, budgets.month") {
		db.Error = ErrBudgetNotUnique
		return
	}

	// Explicitly set IDs that already exist
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed") {
		db.Error = ErrIDNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// We log the error and provide a general error message so that
		// server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}
