package player

import "context"

// Repository describes the durable player record store.
type Repository interface {
	Insert(ctx context.Context, item Player) error
	// InsertBatch writes all players in one transaction; one bad row fails
	// the whole batch.
	InsertBatch(ctx context.Context, items []Player) error
	Update(ctx context.Context, item Player) error
	ListAll(ctx context.Context) ([]Player, error)
}
