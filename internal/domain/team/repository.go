package team

import "context"

// Repository describes the durable team record store.
type Repository interface {
	Insert(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) error
	Delete(ctx context.Context, teamID string) error
	ListAll(ctx context.Context) ([]Team, error)
}
