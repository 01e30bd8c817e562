package database

import (
	"embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/lordcript/gestion-achatss.io/config"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

func init() {
	// modernc registers as "sqlite", which sqlx does not know a bindvar for.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects to the store named by DATABASE_URL, falling back to the embedded
// SQLite file when unset, and applies pending migrations.
func Open(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	driver, dsn, dialect, dir := resolve(cfg)

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connexion à la base (%s): %w", driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Second)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		db.Close()
		return nil, err
	}
	if err := goose.Up(db.DB, dir); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

func resolve(cfg *config.DatabaseConfig) (driver, dsn, dialect, dir string) {
	url := cfg.URL
	switch {
	case url == "" || strings.HasPrefix(url, "sqlite"):
		// Accepte la convention SQLAlchemy de l'original: sqlite:///./achats_local.db
		path := cfg.SQLitePath
		for _, prefix := range []string{"sqlite:///", "sqlite://", "sqlite:"} {
			if strings.HasPrefix(url, prefix) {
				if p := strings.TrimPrefix(url, prefix); p != "" {
					path = p
				}
				break
			}
		}
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
		return "sqlite", dsn, "sqlite3", "migrations/sqlite"
	default:
		return "pgx", url, "postgres", "migrations/postgres"
	}
}
