package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const probeQuery = "SELECT 1"

var ErrUnexpectedResult = errors.New("unexpected probe result")

// Prober checks a relational database with a one-shot connection. Nothing is
// kept open between calls.
type Prober struct {
	driver string
	dsn    string
}

func New(driver, dsn string) *Prober {
	return &Prober{
		driver: driver,
		dsn:    dsn,
	}
}

func (p *Prober) Driver() string {
	return p.driver
}

// Probe opens a connection, runs SELECT 1 and closes the connection on every path.
func (p *Prober) Probe(ctx context.Context) error {
	db, err := sql.Open(p.driver, p.dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	var one int
	if err := db.QueryRowContext(ctx, probeQuery).Scan(&one); err != nil {
		return fmt.Errorf("probe query failed: %w", err)
	}

	if one != 1 {
		return fmt.Errorf("%w: %d", ErrUnexpectedResult, one)
	}

	return nil
}
