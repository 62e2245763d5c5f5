// Package bbolt provides a BoltDB-backed deal store for single-file,
// pure-Go persistence.
package bbolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/NoahPeres/ti4engine/internal/game/audit"
	"github.com/NoahPeres/ti4engine/internal/game/trade"
	"github.com/NoahPeres/ti4engine/internal/storage/record"
	"go.etcd.io/bbolt"
)

const (
	dealBucket  = "deal"
	auditBucket = "audit"
)

// Store provides a BoltDB-backed deal and audit store.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// dealRecord is the persisted deal shape.
type dealRecord struct {
	ID            string       `json:"id"`
	Proposer      string       `json:"proposer"`
	Target        string       `json:"target"`
	Offer         record.Offer `json:"offer"`
	Request       record.Offer `json:"request"`
	Status        string       `json:"status"`
	CreatedAtMs   int64        `json:"created_at_ms"`
	CompletedAtMs *int64       `json:"completed_at_ms,omitempty"`
}

// Put stores or replaces the snapshot for the deal's ID.
func (s *Store) Put(ctx context.Context, tx trade.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(tx.ID) == "" {
		return fmt.Errorf("deal id is required")
	}

	rec := dealRecord{
		ID:          tx.ID,
		Proposer:    tx.Proposer,
		Target:      tx.Target,
		Offer:       record.FromOffer(tx.Offer),
		Request:     record.FromOffer(tx.Request),
		Status:      trade.StatusLabel(tx.Status),
		CreatedAtMs: tx.CreatedAt.UTC().UnixMilli(),
	}
	if tx.CompletedAt != nil {
		ms := tx.CompletedAt.UTC().UnixMilli()
		rec.CompletedAtMs = &ms
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal deal: %w", err)
	}

	return s.db.Update(func(btx *bbolt.Tx) error {
		bucket := btx.Bucket([]byte(dealBucket))
		if bucket == nil {
			return fmt.Errorf("deal bucket is missing")
		}
		return bucket.Put([]byte(tx.ID), payload)
	})
}

// Get returns the stored snapshot for the ID.
func (s *Store) Get(ctx context.Context, id string) (trade.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return trade.Transaction{}, err
	}

	var tx trade.Transaction
	err := s.db.View(func(btx *bbolt.Tx) error {
		bucket := btx.Bucket([]byte(dealBucket))
		if bucket == nil {
			return fmt.Errorf("deal bucket is missing")
		}
		payload := bucket.Get([]byte(id))
		if payload == nil {
			return trade.ErrNotFound
		}
		var err error
		tx, err = decodeDeal(payload)
		return err
	})
	if err != nil {
		return trade.Transaction{}, err
	}
	return tx, nil
}

// List returns every stored snapshot in creation order.
func (s *Store) List(ctx context.Context) ([]trade.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []trade.Transaction
	err := s.db.View(func(btx *bbolt.Tx) error {
		bucket := btx.Bucket([]byte(dealBucket))
		if bucket == nil {
			return fmt.Errorf("deal bucket is missing")
		}
		return bucket.ForEach(func(_, payload []byte) error {
			tx, err := decodeDeal(payload)
			if err != nil {
				return err
			}
			out = append(out, tx)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// AppendAuditEvent records an audit event under the next bucket sequence.
func (s *Store) AppendAuditEvent(ctx context.Context, evt audit.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	return s.db.Update(func(btx *bbolt.Tx) error {
		bucket := btx.Bucket([]byte(auditBucket))
		if bucket == nil {
			return fmt.Errorf("audit bucket is missing")
		}
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("next audit sequence: %w", err)
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return bucket.Put(key, payload)
	})
}

func decodeDeal(payload []byte) (trade.Transaction, error) {
	var rec dealRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return trade.Transaction{}, fmt.Errorf("unmarshal deal: %w", err)
	}

	status, ok := trade.NormalizeStatusLabel(rec.Status)
	if !ok {
		return trade.Transaction{}, fmt.Errorf("unknown deal status %q", rec.Status)
	}
	offer, err := rec.Offer.ToOffer()
	if err != nil {
		return trade.Transaction{}, fmt.Errorf("decode offer: %w", err)
	}
	request, err := rec.Request.ToOffer()
	if err != nil {
		return trade.Transaction{}, fmt.Errorf("decode request: %w", err)
	}

	tx := trade.Transaction{
		ID:        rec.ID,
		Proposer:  rec.Proposer,
		Target:    rec.Target,
		Offer:     offer,
		Request:   request,
		Status:    status,
		CreatedAt: time.UnixMilli(rec.CreatedAtMs).UTC(),
	}
	if rec.CompletedAtMs != nil {
		completed := time.UnixMilli(*rec.CompletedAtMs).UTC()
		tx.CompletedAt = &completed
	}
	return tx, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(btx *bbolt.Tx) error {
		for _, name := range []string{dealBucket, auditBucket} {
			if _, err := btx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
