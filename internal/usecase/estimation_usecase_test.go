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

func validEstimationCommand() CreateEstimationCommand {
	return CreateEstimationCommand{
		Type:              "repair",
		FullName:          "Jean Tremblay",
		Email:             "jean@example.com",
		Phone:             "+15145550001",
		Brand:             "Honda",
		Model:             "Civic",
		Trim:              "EX",
		Year:              2019,
		Description:       "Rear bumper damage",
		PreferredLanguage: "fr",
		ContactMethod:     "email",
	}
}

func TestEstimationUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, nil, NewDispatcher(nil, nil))

		cmd := validEstimationCommand()
		cmd.FullName = "  "
		if _, err := uc.Create(context.Background(), cmd); !errors.Is(err, ErrInvalidEstimationData) {
			t.Fatalf("expected ErrInvalidEstimationData, got %v", err)
		}
	})

	t.Run("store failure fails the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, nil, NewDispatcher(nil, nil))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimation{}, errors.New("db down"))

		if _, err := uc.Create(context.Background(), validEstimationCommand()); err == nil {
			t.Fatal("expected error when storage fails")
		}
	})

	t.Run("success with normalized images", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		normalizer := mock_interfaces.NewMockIImageNormalizer(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, normalizer, NewDispatcher(nil, nil))

		files := []interfaces.UploadedImage{{Path: "uploads/1-1.jpg", ContentType: "image/jpeg"}}
		normalizer.EXPECT().Normalize(files).Return([]string{"uploads/1-1.jpg"})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if e.ID == "" {
					t.Fatal("expected generated id")
				}
				if len(e.Images) != 1 || e.Images[0] != "uploads/1-1.jpg" {
					t.Fatalf("unexpected images %v", e.Images)
				}
				return e, nil
			})
		empRepo.EXPECT().ListManagers(gomock.Any()).Return(nil, nil)

		cmd := validEstimationCommand()
		cmd.Files = files
		created, err := uc.Create(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.FullName != "Jean Tremblay" {
			t.Fatalf("unexpected estimation %+v", created)
		}
	})

	t.Run("notification failures do not fail the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		sms := mock_interfaces.NewMockISMSSender(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, nil, NewDispatcher(mailer, sms))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) { return e, nil })
		empRepo.EXPECT().ListManagers(gomock.Any()).Return([]entities.Employee{
			{ID: "m1", Name: "Marie", Email: "marie@gmcl.ca", Phone: "+15145550009", Role: entities.RoleManager},
		}, nil)
		mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("", errors.New("provider down")).AnyTimes()
		sms.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("webhook down")).AnyTimes()

		cmd := validEstimationCommand()
		cmd.ContactMethod = "both"
		if _, err := uc.Create(context.Background(), cmd); err != nil {
			t.Fatalf("notification failure must not fail creation, got %v", err)
		}
	})

	t.Run("manager load failure still creates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, nil, NewDispatcher(nil, nil))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) { return e, nil })
		empRepo.EXPECT().ListManagers(gomock.Any()).Return(nil, errors.New("scan failed"))

		if _, err := uc.Create(context.Background(), validEstimationCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimationUseCase_MarkAsSeen(t *testing.T) {
	t.Run("appends new viewer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, nil, NewDispatcher(nil, nil))

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{ID: "est-1", Seen: []string{"Alice"}}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if len(e.Seen) != 2 || e.Seen[1] != "Bob" {
					t.Fatalf("unexpected seen set %v", e.Seen)
				}
				return e, nil
			})

		if _, err := uc.MarkAsSeen(context.Background(), "est-1", "Bob"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repeat viewer is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, nil, NewDispatcher(nil, nil))

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimation{ID: "est-1", Seen: []string{"Alice"}}, nil)
		// No Update expected: the seen set never holds duplicates.

		e, err := uc.MarkAsSeen(context.Background(), "est-1", "Alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(e.Seen) != 1 {
			t.Fatalf("expected unchanged seen set, got %v", e.Seen)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, nil, NewDispatcher(nil, nil))

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimation{}, nil)

		if _, err := uc.MarkAsSeen(context.Background(), "missing", "Alice"); !errors.Is(err, ErrEstimationNotFound) {
			t.Fatalf("expected ErrEstimationNotFound, got %v", err)
		}
	})
}

func TestEstimationUseCase_Reply(t *testing.T) {
	t.Run("records reply and overwrites previous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, nil, NewDispatcher(mailer, nil))

		existing := entities.Estimation{
			ID: "est-1", FullName: "Jean", Email: "jean@example.com",
			Brand: "Honda", Model: "Civic", ContactMethod: "email",
			Reply: true, ReplyBy: "Old", ReplyMessage: "old answer",
			ReplyDate: time.Now().Add(-48 * time.Hour),
		}
		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if e.ReplyBy != "Marie" || e.ReplyMessage != "new answer" {
					t.Fatalf("reply not overwritten: %+v", e)
				}
				return e, nil
			})
		mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("msg-1", nil)

		if _, err := uc.Reply(context.Background(), "est-1", "Marie", "new answer"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty reply message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, nil, NewDispatcher(nil, nil))

		if _, err := uc.Reply(context.Background(), "est-1", "Marie", "  "); !errors.Is(err, ErrInvalidReply) {
			t.Fatalf("expected ErrInvalidReply, got %v", err)
		}
	})
}

func TestEstimationUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		empRepo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEstimationUseCase(repo, empRepo, nil, NewDispatcher(nil, nil))

		repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrEstimationNotFound) {
			t.Fatalf("expected ErrEstimationNotFound, got %v", err)
		}
	})
}
