package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gmcl_backoffice/internal/domain/entities"
	"gmcl_backoffice/internal/usecase/interfaces"
	mock_interfaces "gmcl_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTimeEntryUseCase_List(t *testing.T) {
	t.Run("end date is padded by one day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimeEntryRepository(ctrl)
		uc := NewTimeEntryUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter interfaces.TimeEntryFilter) ([]entities.TimeEntry, error) {
				wantTo := time.Date(2024, 1, 13, 0, 0, 0, 0, time.Local)
				if filter.EmployeeName != "Marie" || !filter.To.Equal(wantTo) {
					t.Fatalf("unexpected filter %+v", filter)
				}
				return nil, nil
			})

		if _, err := uc.List(context.Background(), "Marie", "2024-01-10", "2024-01-12"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimeEntryRepository(ctrl)
		uc := NewTimeEntryUseCase(repo)

		if _, err := uc.List(context.Background(), "", "nope", ""); !errors.Is(err, ErrInvalidTimeEntryData) {
			t.Fatalf("expected ErrInvalidTimeEntryData, got %v", err)
		}
	})
}

func TestTimeEntryUseCase_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITimeEntryRepository(ctrl)
	uc := NewTimeEntryUseCase(repo)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.TimeEntry{
		{EmployeeName: "Marie", Hours: 8},
		{EmployeeName: "Jean", Hours: 6},
		{EmployeeName: "Marie", Hours: 4},
	}, nil)

	report, err := uc.Report(context.Background(), "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(report))
	}
	if report[0].EmployeeName != "Marie" || report[0].TotalHours != 12 || report[0].Entries != 2 {
		t.Fatalf("unexpected first line %+v", report[0])
	}
	if report[1].EmployeeName != "Jean" || report[1].TotalHours != 6 {
		t.Fatalf("unexpected second line %+v", report[1])
	}
}

func TestTimeEntryUseCase_GetByEmployeeAndDate(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimeEntryRepository(ctrl)
		uc := NewTimeEntryUseCase(repo)

		day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
		repo.EXPECT().List(gomock.Any(), interfaces.TimeEntryFilter{
			EmployeeName: "Marie", From: day, To: day.AddDate(0, 0, 1),
		}).Return([]entities.TimeEntry{{ID: "te-1", EmployeeName: "Marie"}}, nil)

		entry, err := uc.GetByEmployeeAndDate(context.Background(), "Marie", "2024-01-15")
		if err != nil || entry.ID != "te-1" {
			t.Fatalf("unexpected result %+v %v", entry, err)
		}
	})

	t.Run("no entry that day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimeEntryRepository(ctrl)
		uc := NewTimeEntryUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		if _, err := uc.GetByEmployeeAndDate(context.Background(), "Marie", "2024-01-15"); !errors.Is(err, ErrTimeEntryNotFound) {
			t.Fatalf("expected ErrTimeEntryNotFound, got %v", err)
		}
	})
}

func TestTimeEntryUseCase_Create(t *testing.T) {
	t.Run("negative hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimeEntryRepository(ctrl)
		uc := NewTimeEntryUseCase(repo)

		cmd := CreateTimeEntryCommand{EmployeeName: "Marie", Date: time.Now(), Hours: -1}
		if _, err := uc.Create(context.Background(), cmd); !errors.Is(err, ErrInvalidTimeEntryData) {
			t.Fatalf("expected ErrInvalidTimeEntryData, got %v", err)
		}
	})
}
