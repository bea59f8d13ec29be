package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gmcl_backoffice/internal/domain/entities"
	"gmcl_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrInvalidEmployeeID   = errors.New("invalid employee id")
	ErrInvalidEmployeeData = errors.New("invalid employee data")
)

// CreateEmployeeCommand carries staff record fields. Password arrives in
// clear over the request and is bcrypt-hashed before it ever reaches the
// store; the hash is never serialized back out.
type CreateEmployeeCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

type IEmployeeUseCase interface {
	Create(ctx context.Context, cmd CreateEmployeeCommand) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	Update(ctx context.Context, id string, cmd CreateEmployeeCommand) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

func (u *EmployeeUseCase) Create(ctx context.Context, cmd CreateEmployeeCommand) (entities.Employee, error) {
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return entities.Employee{}, ErrInvalidEmployeeData
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Employee{}, err
	}

	now := time.Now().UTC()
	e := entities.Employee{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(cmd.Name),
		Email:        strings.TrimSpace(cmd.Email),
		PasswordHash: string(hash),
		Role:         strings.TrimSpace(cmd.Role),
		Phone:        strings.TrimSpace(cmd.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EmployeeUseCase) List(ctx context.Context) ([]entities.Employee, error) {
	return u.repo.List(ctx)
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

// Update replaces the record fields; the password hash changes only when a
// new password is supplied.
func (u *EmployeeUseCase) Update(ctx context.Context, id string, cmd CreateEmployeeCommand) (entities.Employee, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Email) == "" {
		return entities.Employee{}, ErrInvalidEmployeeData
	}

	existing.Name = strings.TrimSpace(cmd.Name)
	existing.Email = strings.TrimSpace(cmd.Email)
	existing.Role = strings.TrimSpace(cmd.Role)
	existing.Phone = strings.TrimSpace(cmd.Phone)
	existing.UpdatedAt = time.Now().UTC()

	if cmd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.Employee{}, err
		}
		existing.PasswordHash = string(hash)
	}

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Employee{}, err
	}
	if updated.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return updated, nil
}

func (u *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEmployeeID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEmployeeNotFound
	}
	return nil
}
