package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gmcl_backoffice/internal/domain/entities"
	"gmcl_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrStockNotFound    = errors.New("stock not found")
	ErrInvalidStockID   = errors.New("invalid stock id")
	ErrInvalidStockData = errors.New("invalid stock data")
)

type CreateStockCommand struct {
	Name             string
	Quantity         int
	Category         string
	QuantityConsumed int
}

// IStockUseCase exposes inventory operations. Delete owns the cascade
// policy: removing a stock removes every assignment referencing it.
type IStockUseCase interface {
	Create(ctx context.Context, cmd CreateStockCommand) (entities.Stock, error)
	List(ctx context.Context) ([]entities.Stock, error)
	GetByID(ctx context.Context, id string) (entities.Stock, error)
	Update(ctx context.Context, id string, cmd CreateStockCommand) (entities.Stock, error)
	Delete(ctx context.Context, id string) error
}

type StockUseCase struct {
	repo           interfaces.IStockRepository
	assignmentRepo interfaces.IAssignmentRepository
}

var _ IStockUseCase = (*StockUseCase)(nil)

func NewStockUseCase(repo interfaces.IStockRepository, assignmentRepo interfaces.IAssignmentRepository) *StockUseCase {
	return &StockUseCase{repo: repo, assignmentRepo: assignmentRepo}
}

func (u *StockUseCase) Create(ctx context.Context, cmd CreateStockCommand) (entities.Stock, error) {
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Category) == "" || cmd.Quantity < 0 {
		return entities.Stock{}, ErrInvalidStockData
	}

	now := time.Now().UTC()
	s := entities.Stock{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(cmd.Name),
		Quantity:         cmd.Quantity,
		Category:         strings.TrimSpace(cmd.Category),
		QuantityConsumed: cmd.QuantityConsumed,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, s)
}

func (u *StockUseCase) List(ctx context.Context) ([]entities.Stock, error) {
	return u.repo.List(ctx)
}

func (u *StockUseCase) GetByID(ctx context.Context, id string) (entities.Stock, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Stock{}, ErrInvalidStockID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Stock{}, err
	}
	if s.ID == "" {
		return entities.Stock{}, ErrStockNotFound
	}
	return s, nil
}

func (u *StockUseCase) Update(ctx context.Context, id string, cmd CreateStockCommand) (entities.Stock, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Stock{}, err
	}
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Category) == "" || cmd.Quantity < 0 {
		return entities.Stock{}, ErrInvalidStockData
	}

	existing.Name = strings.TrimSpace(cmd.Name)
	existing.Quantity = cmd.Quantity
	existing.Category = strings.TrimSpace(cmd.Category)
	existing.QuantityConsumed = cmd.QuantityConsumed
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Stock{}, err
	}
	if updated.ID == "" {
		return entities.Stock{}, ErrStockNotFound
	}
	return updated, nil
}

// Delete removes the stock row, then every assignment whose itemId
// references it. The cascade is an explicit delete-then-dependents step
// owned here, not a storage trigger.
func (u *StockUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidStockID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStockNotFound
	}

	n, err := u.assignmentRepo.DeleteByItemID(ctx, id)
	if err != nil {
		return err
	}
	log.Printf("[stock][usecase] deleted id=%s cascaded_assignments=%d", id, n)
	return nil
}
