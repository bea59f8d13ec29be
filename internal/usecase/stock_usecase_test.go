package usecase

import (
	"context"
	"errors"
	"testing"

	"gmcl_backoffice/internal/domain/entities"
	mock_interfaces "gmcl_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStockUseCase_Create(t *testing.T) {
	t.Run("invalid data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		assignRepo := mock_interfaces.NewMockIAssignmentRepository(ctrl)
		uc := NewStockUseCase(repo, assignRepo)

		if _, err := uc.Create(context.Background(), CreateStockCommand{Name: "Brake pads", Category: "parts", Quantity: -1}); !errors.Is(err, ErrInvalidStockData) {
			t.Fatalf("expected ErrInvalidStockData, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		assignRepo := mock_interfaces.NewMockIAssignmentRepository(ctrl)
		uc := NewStockUseCase(repo, assignRepo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Stock) (entities.Stock, error) {
				if s.ID == "" || s.Name != "Brake pads" {
					t.Fatalf("unexpected stock %+v", s)
				}
				return s, nil
			})

		if _, err := uc.Create(context.Background(), CreateStockCommand{Name: "Brake pads", Category: "parts", Quantity: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestStockUseCase_Delete(t *testing.T) {
	t.Run("cascades to assignments of that item only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		assignRepo := mock_interfaces.NewMockIAssignmentRepository(ctrl)
		uc := NewStockUseCase(repo, assignRepo)

		repo.EXPECT().Delete(gomock.Any(), "item-1").Return(true, nil)
		assignRepo.EXPECT().DeleteByItemID(gomock.Any(), "item-1").Return(2, nil)

		if err := uc.Delete(context.Background(), "item-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found skips the cascade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		assignRepo := mock_interfaces.NewMockIAssignmentRepository(ctrl)
		uc := NewStockUseCase(repo, assignRepo)

		repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)
		// DeleteByItemID must not be called for a stock that was never deleted.

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrStockNotFound) {
			t.Fatalf("expected ErrStockNotFound, got %v", err)
		}
	})

	t.Run("cascade failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStockRepository(ctrl)
		assignRepo := mock_interfaces.NewMockIAssignmentRepository(ctrl)
		uc := NewStockUseCase(repo, assignRepo)

		repo.EXPECT().Delete(gomock.Any(), "item-1").Return(true, nil)
		assignRepo.EXPECT().DeleteByItemID(gomock.Any(), "item-1").Return(0, errors.New("db down"))

		if err := uc.Delete(context.Background(), "item-1"); err == nil {
			t.Fatal("expected cascade error to surface")
		}
	})
}
