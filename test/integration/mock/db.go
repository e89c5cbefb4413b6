// Package mock provides shared test infrastructure: an in-memory ledger
// database, an in-process Redis, and a controllable clock.
package mock

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-guard/backend/internal/integration/persistence/model"
)

// NewDb opens a fresh in-memory sqlite database with the ledger schema
// migrated, for use through gorm exactly like the production connection.
func NewDb() (*gorm.DB, error) {
	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory sqlite: %w", err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbConn.AutoMigrate(&model.TransactionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return dbConn, nil
}
