package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*/*.sql
var migrations embed.FS

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DB envuelve *sql.DB con el dialecto, que define placeholders y migraciones.
type DB struct {
	*sql.DB
	dialect Dialect
}

func (d *DB) Dialect() Dialect { return d.dialect }

// Open elige driver por DSN: postgres:// -> pgx, cualquier otra cosa es un
// archivo SQLite (modernc, sin cgo).
func Open(ctx context.Context, dsn string) (*DB, error) {
	dialect, driver, source := parseDSN(dsn)

	if dialect == DialectSQLite && source != ":memory:" && !strings.HasPrefix(source, "file:") {
		if err := os.MkdirAll(filepath.Dir(source), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}
	switch dialect {
	case DialectPostgres:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(1 * time.Hour)
	case DialectSQLite:
		// un solo writer; evita SQLITE_BUSY entre conexiones
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return &DB{DB: db, dialect: dialect}, nil
}

func parseDSN(dsn string) (Dialect, string, string) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, "pgx", dsn
	case strings.HasPrefix(lower, "sqlite://"):
		return DialectSQLite, "sqlite", dsn[len("sqlite://"):]
	}
	return DialectSQLite, "sqlite", dsn
}

// goose guarda dialecto y FS en globals; serializamos.
var gooseMu sync.Mutex

// Migrate aplica todas las migraciones embebidas del dialecto.
func Migrate(db *DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	dir, err := prepareGoose(db.dialect)
	if err != nil {
		return err
	}
	return goose.Up(db.DB, dir)
}

// resetSchema baja todo a la versión 0 y vuelve a subir. Se usa cuando la
// tabla desapareció pero goose_db_version sigue diciendo que está migrada.
func resetSchema(ctx context.Context, db *DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	dir, err := prepareGoose(db.dialect)
	if err != nil {
		return err
	}
	if err := goose.DownToContext(ctx, db.DB, dir, 0); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, dir); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func prepareGoose(d Dialect) (string, error) {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(string(d)); err != nil {
		return "", err
	}
	if d == DialectPostgres {
		return "migrations/postgres", nil
	}
	return "migrations/sqlite", nil
}

// rebind pasa los "?" a "$n" para postgres.
func (d *DB) rebind(q string) string {
	if d.dialect != DialectPostgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isMissingTable detecta "no such table" (sqlite) y undefined_table (postgres).
func isMissingTable(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01"
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such table")
}
