package interfaces

import (
	"context"

	"gmcl_backoffice/internal/domain/entities"
)

type IStockRepository interface {
	Create(ctx context.Context, s entities.Stock) (entities.Stock, error)
	GetByID(ctx context.Context, id string) (entities.Stock, error)
	List(ctx context.Context) ([]entities.Stock, error)
	Update(ctx context.Context, s entities.Stock) (entities.Stock, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type IAssignmentRepository interface {
	Create(ctx context.Context, a entities.Assignment) (entities.Assignment, error)
	GetByID(ctx context.Context, id string) (entities.Assignment, error)
	List(ctx context.Context) ([]entities.Assignment, error)
	ListByItemID(ctx context.Context, itemID string) ([]entities.Assignment, error)
	Update(ctx context.Context, a entities.Assignment) (entities.Assignment, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByItemID(ctx context.Context, itemID string) (int, error)
}
