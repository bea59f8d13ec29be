package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gmcl_backoffice/internal/domain/entities"
	mock_interfaces "gmcl_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validRendezVousCommand() CreateRendezVousCommand {
	return CreateRendezVousCommand{
		ClientFullName:    "Jean Tremblay",
		ClientPhoneNumber: "+15145550001",
		ClientEmail:       "jean@example.com",
		Date:              time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
		Heure:             "10:30",
		Type:              "Inspection",
		PreferredLanguage: "fr",
		ContactMethod:     "email",
	}
}

func TestRendezVousUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(nil, nil))

		cmd := validRendezVousCommand()
		cmd.Heure = ""
		if _, err := uc.Create(context.Background(), cmd); !errors.Is(err, ErrInvalidRendezVousData) {
			t.Fatalf("expected ErrInvalidRendezVousData, got %v", err)
		}
	})

	t.Run("notifies managers only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(mailer, nil))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.RendezVous) (entities.RendezVous, error) {
				if r.Confirmation {
					t.Fatal("fresh rendez-vous must not be confirmed")
				}
				return r, nil
			})
		empRepo.EXPECT().ListManagers(gomock.Any()).Return([]entities.Employee{
			{ID: "m1", Name: "Marie", Email: "marie@gmcl.ca", Role: entities.RoleManager},
		}, nil)
		// One manager email, no client notification on plain create.
		mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("msg-1", nil).Times(1)

		if _, err := uc.Create(context.Background(), validRendezVousCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRendezVousUseCase_CreateAndConfirm(t *testing.T) {
	t.Run("persists already confirmed and notifies client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(mailer, nil))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.RendezVous) (entities.RendezVous, error) {
				if !r.Confirmation || r.ConfirmedBy != "Marie" {
					t.Fatalf("expected confirmed rendez-vous, got %+v", r)
				}
				if r.ConfirmedAt.IsZero() || !r.ConfirmedAt.Equal(r.CreatedAt) {
					t.Fatalf("expected ConfirmedAt = CreatedAt, got %v / %v", r.ConfirmedAt, r.CreatedAt)
				}
				return r, nil
			})
		// Client confirmation email; no manager fan-out on the walk-in path.
		mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("msg-1", nil).Times(1)

		if _, err := uc.CreateAndConfirm(context.Background(), validRendezVousCommand(), "Marie"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing confirmedBy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(nil, nil))

		if _, err := uc.CreateAndConfirm(context.Background(), validRendezVousCommand(), " "); !errors.Is(err, ErrInvalidConfirmedBy) {
			t.Fatalf("expected ErrInvalidConfirmedBy, got %v", err)
		}
	})
}

func TestRendezVousUseCase_Confirm(t *testing.T) {
	t.Run("re-confirming resends the client notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(mailer, nil))

		confirmed := entities.RendezVous{
			ID: "rdv-1", ClientFullName: "Jean", ClientEmail: "jean@example.com",
			Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), Heure: "10:30",
			Type: "Inspection", ContactMethod: "email",
			Confirmation: true, ConfirmedBy: "Marie",
		}
		repo.EXPECT().Confirm(gomock.Any(), "rdv-1", "Marie", gomock.Any()).Return(confirmed, nil)
		mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("msg-1", nil)

		if _, err := uc.Confirm(context.Background(), "rdv-1", "Marie"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(nil, nil))

		repo.EXPECT().Confirm(gomock.Any(), "missing", "Marie", gomock.Any()).Return(entities.RendezVous{}, nil)

		if _, err := uc.Confirm(context.Background(), "missing", "Marie"); !errors.Is(err, ErrRendezVousNotFound) {
			t.Fatalf("expected ErrRendezVousNotFound, got %v", err)
		}
	})
}

func TestRendezVousUseCase_GetAll(t *testing.T) {
	t.Run("no range lists everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(nil, nil))

		repo.EXPECT().List(gomock.Any()).Return([]entities.RendezVous{{ID: "rdv-1"}}, nil)

		list, err := uc.GetAll(context.Background(), "", "")
		if err != nil || len(list) != 1 {
			t.Fatalf("unexpected result %v %v", list, err)
		}
	})

	t.Run("end date is padded by one day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(nil, nil))

		wantFrom := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
		wantTo := time.Date(2024, 1, 13, 0, 0, 0, 0, time.Local)
		repo.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, from, to time.Time) ([]entities.RendezVous, error) {
				if !from.Equal(wantFrom) || !to.Equal(wantTo) {
					t.Fatalf("unexpected window [%v, %v)", from, to)
				}
				return nil, nil
			})

		if _, err := uc.GetAll(context.Background(), "2024-01-10", "2024-01-12"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bad range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(nil, nil))

		if _, err := uc.GetAll(context.Background(), "2024-01-10", "nope"); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestRendezVousUseCase_GetByDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
	empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(nil, nil))

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	repo.EXPECT().ListByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, from, to time.Time) ([]entities.RendezVous, error) {
			if !from.Equal(day) || !to.Equal(day.AddDate(0, 0, 1)) {
				t.Fatalf("unexpected day window [%v, %v)", from, to)
			}
			return nil, nil
		})

	if _, err := uc.GetByDate(context.Background(), "2024-01-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRendezVousUseCase_Update(t *testing.T) {
	t.Run("preserves confirmation state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRendezVousRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewRendezVousUseCase(repo, empRepo, NewDispatcher(nil, nil))

		confirmedAt := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "rdv-1").Return(entities.RendezVous{
			ID: "rdv-1", Confirmation: true, ConfirmedBy: "Marie", ConfirmedAt: confirmedAt,
			CreatedAt: confirmedAt,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.RendezVous) (entities.RendezVous, error) {
				if !r.Confirmation || r.ConfirmedBy != "Marie" || !r.ConfirmedAt.Equal(confirmedAt) {
					t.Fatalf("confirmation state lost: %+v", r)
				}
				if r.Heure != "14:00" {
					t.Fatalf("update not applied: %+v", r)
				}
				return r, nil
			})

		cmd := validRendezVousCommand()
		cmd.Heure = "14:00"
		if _, err := uc.Update(context.Background(), "rdv-1", cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
