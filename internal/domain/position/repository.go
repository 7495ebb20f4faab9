package position

import (
	"context"

	"github.com/coopportal/coopportal/internal/types"
)

type Repository interface {
	Create(ctx context.Context, p *Position) error
	Get(ctx context.Context, id string) (*Position, error)
	Update(ctx context.Context, p *Position) error
	UpdateStatus(ctx context.Context, id string, status types.PositionStatus) error
	// Delete hard-removes the row. The service layer guards it with the
	// application-count check; repositories never decide policy.
	Delete(ctx context.Context, id string) error
	ListWithCounts(ctx context.Context) ([]*WithCount, error)
	ListActive(ctx context.Context) ([]*Listing, error)
	Analytics(ctx context.Context) ([]*Analytics, error)
}
