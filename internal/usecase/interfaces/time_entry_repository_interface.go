package interfaces

import (
	"context"
	"time"

	"gmcl_backoffice/internal/domain/entities"
)

// TimeEntryFilter narrows List results; zero values mean "no constraint".
type TimeEntryFilter struct {
	EmployeeName string
	From         time.Time
	To           time.Time
}

type ITimeEntryRepository interface {
	Create(ctx context.Context, t entities.TimeEntry) (entities.TimeEntry, error)
	GetByID(ctx context.Context, id string) (entities.TimeEntry, error)
	List(ctx context.Context, filter TimeEntryFilter) ([]entities.TimeEntry, error)
	Update(ctx context.Context, t entities.TimeEntry) (entities.TimeEntry, error)
	Delete(ctx context.Context, id string) (bool, error)
}
