package database

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aouiniamine/devbox/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedPort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestProbe_SQLiteInMemory(t *testing.T) {
	p := New("sqlite3", ":memory:")

	assert.NoError(t, p.Probe(context.Background()))
	assert.Equal(t, "sqlite3", p.Driver())
}

func TestProbe_SQLiteUnopenable(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing", "dir", "dev.db")

	err := New("sqlite3", dsn).Probe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestProbe_SQLiteMissingFileIsNotCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devdb")
	cfg := config.DatabaseConfig{Driver: "sqlite3", Name: path}

	err := New(cfg.Driver, cfg.DSN()).Probe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "probe must not create %s", path)
}

func TestProbe_SQLiteExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devdb")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	cfg := config.DatabaseConfig{Driver: "sqlite3", Name: path}

	assert.NoError(t, New(cfg.Driver, cfg.DSN()).Probe(context.Background()))
}

func TestProbe_ConnectionRefused(t *testing.T) {
	addr := closedPort(t)

	for _, driver := range []string{"pgx", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			p := New(driver, "postgres://postgres:postgres@"+addr+"/devdb?sslmode=disable&connect_timeout=2")

			err := p.Probe(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "connection refused")
		})
	}
}

func TestProbe_UnknownDriver(t *testing.T) {
	err := New("nope", "whatever").Probe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
}

func TestProbe_QueryErrorStillCloses(t *testing.T) {
	db, mock, err := sqlmock.NewWithDSN("probe_query_error")
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT 1").WillReturnError(errors.New("relation does not exist"))
	mock.ExpectClose()

	err = New("sqlmock", "probe_query_error").Probe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relation does not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProbe_UnexpectedResult(t *testing.T) {
	db, mock, err := sqlmock.NewWithDSN("probe_unexpected")
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(2))
	mock.ExpectClose()

	err = New("sqlmock", "probe_unexpected").Probe(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedResult)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProbe_Success(t *testing.T) {
	db, mock, err := sqlmock.NewWithDSN("probe_success")
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectClose()

	assert.NoError(t, New("sqlmock", "probe_success").Probe(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProbe_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New("pgx", "postgres://postgres:postgres@"+closedPort(t)+"/devdb?sslmode=disable").Probe(ctx)
	assert.Error(t, err)
}
