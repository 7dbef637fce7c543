package repos

import (
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"stockroom/internal/config"
)

// Open connects to the MySQL server, creates the target database if it is
// missing, then opens the pooled handle every repository shares. Startup
// must not proceed if any step fails.
func Open(cfg config.Config) (*sqlx.DB, error) {
	boot, err := sqlx.Connect("mysql", dsn(cfg, ""))
	if err != nil {
		return nil, err
	}
	_, err = boot.Exec("CREATE DATABASE IF NOT EXISTS " + quoteIdent(cfg.DBName))
	boot.Close()
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("mysql", dsn(cfg, cfg.DBName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.DBPoolMax)

	if err := ensureSchema(db, schemaMySQL); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func dsn(cfg config.Config, dbname string) string {
	c := mysql.NewConfig()
	c.Net = "tcp"
	c.Addr = cfg.DBHost
	c.User = cfg.DBUser
	c.Passwd = cfg.DBPassword
	c.DBName = dbname
	// RowsAffected counts matched rows, so updating a row to its current
	// values still reports it as found rather than as a missing id.
	c.ClientFoundRows = true
	return c.FormatDSN()
}

func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "") + "`"
}

// Each statement runs on its own Exec; the driver rejects multi-statement
// strings by default.
func ensureSchema(db *sqlx.DB, stmts []string) error {
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

var schemaMySQL = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10, 2) NOT NULL CHECK (price >= 0),
		quantity INT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// OpenMemory opens an in-memory SQLite mirror of the schema above. Tests
// run against it so they need no running MySQL server.
func OpenMemory() (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// A second pooled connection would see its own empty :memory: database.
	db.SetMaxOpenConns(1)
	if err := ensureSchema(db, schemaSQLite); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

var schemaSQLite = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		price NUMERIC NOT NULL CHECK (price >= 0),
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		created_at TEXT DEFAULT CURRENT_TIMESTAMP,
		updated_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`,
}
