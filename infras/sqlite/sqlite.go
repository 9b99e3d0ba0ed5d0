package sqlite

//nolint:revive
import (
	"fmt"

	"lodge/config"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLite serializes writers internally, so a single open connection keeps
// the driver from ever returning SQLITE_BUSY to concurrent inserts.
const sqliteMaxOpenConnection = 1

type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		DB: CreateSQLiteConnection(config),
	}
}

// CreateSQLiteConnection opens the local database file, creating it if absent.
func CreateSQLiteConnection(config *config.Config) *sqlx.DB {
	descriptor := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(0)", config.DB.SQLite.Path)

	sqlDB, err := sqlx.Connect("sqlite", descriptor)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("path", config.DB.SQLite.Path).
			Msg("Failed opening database file")

		return nil
	}

	sqlDB.SetMaxOpenConns(sqliteMaxOpenConnection)

	log.Info().
		Str("path", config.DB.SQLite.Path).
		Msg("Connected to database")

	return sqlDB
}
