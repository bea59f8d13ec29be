package interfaces

import (
	"context"

	"gmcl_backoffice/internal/domain/entities"
)

// IEmployeeRepository abstracts DynamoDB persistence for Employee.
// ListManagers feeds the notification fan-out.
type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	ListManagers(ctx context.Context) ([]entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
}
