package calculations

import "context"

type Repository interface {
	Create(ctx context.Context, c Calculation) error
	GetByID(ctx context.Context, id string) (Calculation, error)
	// ListByUser devuelve los más recientes primero, como máximo limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]Calculation, error)
}
