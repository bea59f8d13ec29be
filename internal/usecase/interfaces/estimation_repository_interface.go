package interfaces

import (
	"context"

	"gmcl_backoffice/internal/domain/entities"
)

// IEstimationRepository abstracts DynamoDB persistence for Estimation.
//
// Not-found is reported as a zero-value entity (empty ID), not an error;
// use cases translate that into their own sentinel. Update replaces the
// whole item (last-write-wins, no concurrency token).
type IEstimationRepository interface {
	Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error)
	GetByID(ctx context.Context, id string) (entities.Estimation, error)
	List(ctx context.Context) ([]entities.Estimation, error)
	Update(ctx context.Context, e entities.Estimation) (entities.Estimation, error)
	Delete(ctx context.Context, id string) (bool, error)
}
