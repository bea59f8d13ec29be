package interfaces

import (
	"context"
	"time"

	"gmcl_backoffice/internal/domain/entities"
)

// IRendezVousRepository abstracts DynamoDB persistence for RendezVous.
//
// ListByDateRange returns appointments with from <= date < to. The use case
// owns the boundary arithmetic (end-date padding, day windows).
type IRendezVousRepository interface {
	Create(ctx context.Context, r entities.RendezVous) (entities.RendezVous, error)
	GetByID(ctx context.Context, id string) (entities.RendezVous, error)
	List(ctx context.Context) ([]entities.RendezVous, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.RendezVous, error)
	Update(ctx context.Context, r entities.RendezVous) (entities.RendezVous, error)
	Confirm(ctx context.Context, id, confirmedBy string, confirmedAt time.Time) (entities.RendezVous, error)
	Delete(ctx context.Context, id string) (bool, error)
}
