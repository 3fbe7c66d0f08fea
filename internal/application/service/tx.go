package service

import "context"

// StoreTx provides the transactional boundary for multi-record writes.
// The context passed to fn carries the transaction so collaborators that
// share the database join it.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}
