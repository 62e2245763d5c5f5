package trade

import (
	"context"

	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

// ErrNotFound indicates a requested deal record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "deal not found")

// TransactionStore persists deal snapshots. Put replaces any existing
// snapshot for the same ID; implementations never mutate stored values in
// place. Get returns ErrNotFound for unknown IDs. List returns snapshots in
// creation order.
type TransactionStore interface {
	Put(ctx context.Context, tx Transaction) error
	Get(ctx context.Context, id string) (Transaction, error)
	List(ctx context.Context) ([]Transaction, error)
}
