package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	_ "modernc.org/sqlite"

	"github.com/smartcontractkit/timelock/internal/utils/safecast"
	"github.com/smartcontractkit/timelock/sdk"
)

// SQLite is an AccountStore backed by a sqlite database. It also persists a
// slot counter so that a local deployment keeps its clock across restarts.
type SQLite struct {
	db *sql.DB
}

var (
	_ sdk.AccountStore = (*SQLite)(nil)
	_ sdk.Clock        = (*SQLite)(nil)
)

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database %s: %w", path, err)
	}
	// sqlite allows a single writer; serialize through one connection.
	db.SetMaxOpenConns(1)

	s, err := NewSQLite(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// NewSQLite wraps an open database and applies the schema.
func NewSQLite(ctx context.Context, db *sql.DB) (*SQLite, error) {
	s := &SQLite{db: db}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("unable to migrate database: %w", err)
	}

	return s, nil
}

func (s *SQLite) migrate(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS accounts (
		pubkey TEXT PRIMARY KEY,
		data BLOB NOT NULL
	);
	CREATE TABLE IF NOT EXISTS slots (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		slot INTEGER NOT NULL
	);
	INSERT OR IGNORE INTO slots (id, slot) VALUES (1, 0);`
	_, err := s.db.ExecContext(ctx, query)

	return err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) GetAccount(ctx context.Context, key solana.PublicKey) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM accounts WHERE pubkey = ?`, key.String()).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", sdk.ErrAccountNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read account %s: %w", key, err)
	}

	return data, nil
}

func (s *SQLite) CreateAccount(ctx context.Context, key solana.PublicKey, data []byte) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (pubkey, data) VALUES (?, ?) ON CONFLICT (pubkey) DO NOTHING`,
		key.String(), data,
	)
	if err != nil {
		return fmt.Errorf("unable to create account %s: %w", key, err)
	}

	return requireAffected(res, key, sdk.ErrAccountExists)
}

// PutAccount overwrites an existing account.
func (s *SQLite) PutAccount(ctx context.Context, key solana.PublicKey, data []byte) error {
	res, err := s.db.ExecContext(ctx, `UPDATE accounts SET data = ? WHERE pubkey = ?`, data, key.String())
	if err != nil {
		return fmt.Errorf("unable to write account %s: %w", key, err)
	}

	return requireAffected(res, key, sdk.ErrAccountNotFound)
}

func requireAffected(res sql.Result, key solana.PublicKey, sentinel error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unable to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", sentinel, key)
	}

	return nil
}

// CurrentSlot returns the persisted slot counter.
func (s *SQLite) CurrentSlot(ctx context.Context) (uint64, error) {
	var slot int64
	if err := s.db.QueryRowContext(ctx, `SELECT slot FROM slots WHERE id = 1`).Scan(&slot); err != nil {
		return 0, fmt.Errorf("unable to read slot: %w", err)
	}

	return safecast.Int64ToUint64(slot)
}

// AdvanceSlot moves the persisted slot counter forward by n and returns the
// new slot.
func (s *SQLite) AdvanceSlot(ctx context.Context, n uint64) (uint64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("unable to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var cur int64
	if err = tx.QueryRowContext(ctx, `SELECT slot FROM slots WHERE id = 1`).Scan(&cur); err != nil {
		return 0, fmt.Errorf("unable to read slot: %w", err)
	}
	curSlot, err := safecast.Int64ToUint64(cur)
	if err != nil {
		return 0, err
	}
	next, err := safecast.Uint64ToInt64(safecast.SaturatingAdd(curSlot, n))
	if err != nil {
		return 0, fmt.Errorf("slot out of range: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `UPDATE slots SET slot = ? WHERE id = 1`, next); err != nil {
		return 0, fmt.Errorf("unable to write slot: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("unable to commit slot: %w", err)
	}

	return uint64(next), nil //nolint:gosec // checked by Uint64ToInt64
}
