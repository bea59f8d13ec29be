package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gmcl_backoffice/internal/domain/entities"
	"gmcl_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAssignmentNotFound    = errors.New("assignment not found")
	ErrInvalidAssignmentID   = errors.New("invalid assignment id")
	ErrInvalidAssignmentData = errors.New("invalid assignment data")
)

type CreateAssignmentCommand struct {
	EmployeeName string
	ItemName     string
	ItemID       string
	Date         time.Time
	Quantity     int
}

type IAssignmentUseCase interface {
	Create(ctx context.Context, cmd CreateAssignmentCommand) (entities.Assignment, error)
	List(ctx context.Context) ([]entities.Assignment, error)
	ListByItemID(ctx context.Context, itemID string) ([]entities.Assignment, error)
	GetByID(ctx context.Context, id string) (entities.Assignment, error)
	Update(ctx context.Context, id string, cmd CreateAssignmentCommand) (entities.Assignment, error)
	Delete(ctx context.Context, id string) error
}

type AssignmentUseCase struct {
	repo interfaces.IAssignmentRepository
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(repo interfaces.IAssignmentRepository) *AssignmentUseCase {
	return &AssignmentUseCase{repo: repo}
}

func (u *AssignmentUseCase) Create(ctx context.Context, cmd CreateAssignmentCommand) (entities.Assignment, error) {
	if strings.TrimSpace(cmd.EmployeeName) == "" || strings.TrimSpace(cmd.ItemName) == "" ||
		strings.TrimSpace(cmd.ItemID) == "" || cmd.Date.IsZero() || cmd.Quantity <= 0 {
		return entities.Assignment{}, ErrInvalidAssignmentData
	}

	a := entities.Assignment{
		ID:           uuid.NewString(),
		EmployeeName: strings.TrimSpace(cmd.EmployeeName),
		ItemName:     strings.TrimSpace(cmd.ItemName),
		ItemID:       strings.TrimSpace(cmd.ItemID),
		Date:         cmd.Date,
		Quantity:     cmd.Quantity,
		CreatedAt:    time.Now().UTC(),
	}
	return u.repo.Create(ctx, a)
}

func (u *AssignmentUseCase) List(ctx context.Context) ([]entities.Assignment, error) {
	return u.repo.List(ctx)
}

func (u *AssignmentUseCase) ListByItemID(ctx context.Context, itemID string) ([]entities.Assignment, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidAssignmentData
	}
	return u.repo.ListByItemID(ctx, itemID)
}

func (u *AssignmentUseCase) GetByID(ctx context.Context, id string) (entities.Assignment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Assignment{}, ErrInvalidAssignmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Assignment{}, err
	}
	if a.ID == "" {
		return entities.Assignment{}, ErrAssignmentNotFound
	}
	return a, nil
}

func (u *AssignmentUseCase) Update(ctx context.Context, id string, cmd CreateAssignmentCommand) (entities.Assignment, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Assignment{}, err
	}
	if strings.TrimSpace(cmd.EmployeeName) == "" || strings.TrimSpace(cmd.ItemName) == "" ||
		strings.TrimSpace(cmd.ItemID) == "" || cmd.Date.IsZero() || cmd.Quantity <= 0 {
		return entities.Assignment{}, ErrInvalidAssignmentData
	}

	existing.EmployeeName = strings.TrimSpace(cmd.EmployeeName)
	existing.ItemName = strings.TrimSpace(cmd.ItemName)
	existing.ItemID = strings.TrimSpace(cmd.ItemID)
	existing.Date = cmd.Date
	existing.Quantity = cmd.Quantity

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Assignment{}, err
	}
	if updated.ID == "" {
		return entities.Assignment{}, ErrAssignmentNotFound
	}
	return updated, nil
}

func (u *AssignmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidAssignmentID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAssignmentNotFound
	}
	return nil
}
