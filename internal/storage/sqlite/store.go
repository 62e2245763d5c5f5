// Package sqlite provides the durable deal store backing persisted sessions.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/NoahPeres/ti4engine/internal/game/audit"
	"github.com/NoahPeres/ti4engine/internal/game/trade"
	"github.com/NoahPeres/ti4engine/internal/storage/record"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS deals (
	id TEXT PRIMARY KEY,
	proposer TEXT NOT NULL,
	target TEXT NOT NULL,
	offer_json TEXT NOT NULL,
	request_json TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at_ms INTEGER NOT NULL,
	completed_at_ms INTEGER
);

CREATE TABLE IF NOT EXISTS audit_events (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id TEXT NOT NULL DEFAULT '',
	event_name TEXT NOT NULL,
	severity TEXT NOT NULL,
	deal_id TEXT NOT NULL DEFAULT '',
	code TEXT NOT NULL DEFAULT '',
	attributes_json TEXT NOT NULL DEFAULT '{}',
	ts_ms INTEGER NOT NULL
);
`

// Store provides a SQLite-backed deal and audit store.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite-backed store at the provided path, creating the
// schema when missing.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores or replaces the snapshot for the deal's ID.
func (s *Store) Put(ctx context.Context, tx trade.Transaction) error {
	offerJSON, err := marshalOffer(tx.Offer)
	if err != nil {
		return fmt.Errorf("encode offer: %w", err)
	}
	requestJSON, err := marshalOffer(tx.Request)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO deals (id, proposer, target, offer_json, request_json, status, created_at_ms, completed_at_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			completed_at_ms = excluded.completed_at_ms`,
		tx.ID, tx.Proposer, tx.Target, offerJSON, requestJSON,
		trade.StatusLabel(tx.Status), toMillis(tx.CreatedAt), toNullMillis(tx.CompletedAt))
	if err != nil {
		return fmt.Errorf("put deal: %w", err)
	}
	return nil
}

// Get returns the stored snapshot for the ID.
func (s *Store) Get(ctx context.Context, id string) (trade.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, proposer, target, offer_json, request_json, status, created_at_ms, completed_at_ms
		FROM deals WHERE id = ?`, id)

	tx, err := scanDeal(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return trade.Transaction{}, trade.ErrNotFound
	}
	if err != nil {
		return trade.Transaction{}, fmt.Errorf("get deal: %w", err)
	}
	return tx, nil
}

// List returns every stored snapshot in creation order.
func (s *Store) List(ctx context.Context) ([]trade.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, proposer, target, offer_json, request_json, status, created_at_ms, completed_at_ms
		FROM deals ORDER BY created_at_ms, id`)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	var out []trade.Transaction
	for rows.Next() {
		tx, err := scanDeal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deals: %w", err)
	}
	return out, nil
}

// AppendAuditEvent records an audit event.
func (s *Store) AppendAuditEvent(ctx context.Context, evt audit.Event) error {
	attributes := evt.Attributes
	if attributes == nil {
		attributes = map[string]string{}
	}
	attributesJSON, err := json.Marshal(attributes)
	if err != nil {
		return fmt.Errorf("encode attributes: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audit_events (event_id, event_name, severity, deal_id, code, attributes_json, ts_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		evt.EventID, evt.EventName, string(evt.Severity), evt.DealID, evt.Code, string(attributesJSON), toMillis(evt.Timestamp))
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func marshalOffer(offer trade.Offer) (string, error) {
	encoded, err := json.Marshal(record.FromOffer(offer))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func unmarshalOffer(encoded string) (trade.Offer, error) {
	var r record.Offer
	if err := json.Unmarshal([]byte(encoded), &r); err != nil {
		return trade.Offer{}, err
	}
	return r.ToOffer()
}

func scanDeal(scan func(dest ...any) error) (trade.Transaction, error) {
	var (
		tx            trade.Transaction
		offerJSON     string
		requestJSON   string
		statusLabel   string
		createdAtMs   int64
		completedAtMs sql.NullInt64
	)
	if err := scan(&tx.ID, &tx.Proposer, &tx.Target, &offerJSON, &requestJSON,
		&statusLabel, &createdAtMs, &completedAtMs); err != nil {
		return trade.Transaction{}, err
	}

	status, ok := trade.NormalizeStatusLabel(statusLabel)
	if !ok {
		return trade.Transaction{}, fmt.Errorf("unknown deal status %q", statusLabel)
	}
	tx.Status = status
	tx.CreatedAt = fromMillis(createdAtMs)
	tx.CompletedAt = fromNullMillis(completedAtMs)

	var err error
	if tx.Offer, err = unmarshalOffer(offerJSON); err != nil {
		return trade.Transaction{}, fmt.Errorf("decode offer: %w", err)
	}
	if tx.Request, err = unmarshalOffer(requestJSON); err != nil {
		return trade.Transaction{}, fmt.Errorf("decode request: %w", err)
	}
	return tx, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis reverses toMillis for persisted millisecond timestamps.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// toNullMillis maps optional domain times to sql.NullInt64 for nullable DB columns.
func toNullMillis(value *time.Time) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*value), Valid: true}
}

// fromNullMillis maps nullable SQL timestamps back into optional domain time values.
func fromNullMillis(value sql.NullInt64) *time.Time {
	if !value.Valid {
		return nil
	}
	t := fromMillis(value.Int64)
	return &t
}
