package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestConnectRejectsEmptyURL(t *testing.T) {
	if _, err := Connect(context.Background(), "   ", DefaultServerOptions()); err == nil {
		t.Fatal("expected error for empty DATABASE_URL")
	}
}

func TestConnectPingsDatabase(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	mock.ExpectPing()

	orig := openDB
	openDB = func(driverName, dsn string) (*sql.DB, error) {
		return mockDB, nil
	}
	defer func() { openDB = orig }()

	conn, err := Connect(context.Background(), "postgres://ignored", DefaultServerOptions())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if conn != mockDB {
		t.Fatal("expected the opened handle to be returned")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOptionsFromEnvAppliesOverrides(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("DB_MAX_IDLE_CONNS", "2")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "90s")
	t.Setenv("DB_PING_TIMEOUT", "2s")

	opts := OptionsFromEnv(DefaultServerOptions())

	if opts.MaxOpenConns != 3 {
		t.Fatalf("MaxOpenConns = %d, want 3", opts.MaxOpenConns)
	}
	if opts.MaxIdleConns != 2 {
		t.Fatalf("MaxIdleConns = %d, want 2", opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("ConnMaxLifetime = %v, want 30m", opts.ConnMaxLifetime)
	}
	if opts.ConnMaxIdleTime != 90*time.Second {
		t.Fatalf("ConnMaxIdleTime = %v, want 90s", opts.ConnMaxIdleTime)
	}
	if opts.PingTimeout != 2*time.Second {
		t.Fatalf("PingTimeout = %v, want 2s", opts.PingTimeout)
	}
}

func TestOptionsFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	opts := OptionsFromEnv(DefaultServerOptions())
	if opts.MaxOpenConns != DefaultServerOptions().MaxOpenConns {
		t.Fatalf("invalid env var should keep default, got %d", opts.MaxOpenConns)
	}
}
