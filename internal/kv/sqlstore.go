package kv

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// SQLStore keeps key-value pairs in a single two-column table over
// database/sql. Two drivers are supported: the embedded SQLite driver
// for local single-file deployments (the default, and :memory: in
// tests) and MySQL for deployments with an existing server.
type SQLStore struct {
	db     *sql.DB
	upsert string
}

const sqliteSchema = `CREATE TABLE IF NOT EXISTS kv (
	k TEXT PRIMARY KEY,
	v BLOB NOT NULL
)`

const mysqlSchema = `CREATE TABLE IF NOT EXISTS kv (
	k VARCHAR(255) PRIMARY KEY,
	v LONGBLOB NOT NULL
)`

// OpenSQLite opens (or creates) a SQLite-backed store at path. Pass
// ":memory:" for a throwaway database.
func OpenSQLite(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The modernc driver serializes access through a single
	// connection; more would race on :memory: databases.
	db.SetMaxOpenConns(1)
	return initStore(db, sqliteSchema,
		`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`)
}

// OpenMySQL connects to MySQL, verifies the connection and ensures
// the kv table exists.
func OpenMySQL(user, pass, host, port, name string) (*SQLStore, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return initStore(db, mysqlSchema,
		`INSERT INTO kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)`)
}

func initStore(db *sql.DB, schema, upsert string) (*SQLStore, error) {
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLStore{db: db, upsert: upsert}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := s.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, s.upsert, key, value)
	return err
}

func (s *SQLStore) Close() error { return s.db.Close() }
