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
	ErrRendezVousNotFound    = errors.New("rendez-vous not found")
	ErrInvalidRendezVousID   = errors.New("invalid rendez-vous id")
	ErrInvalidRendezVousData = errors.New("invalid rendez-vous data")
	ErrInvalidConfirmedBy    = errors.New("invalid confirmedBy")
	ErrInvalidDateRange      = errors.New("invalid date range")
)

// CreateRendezVousCommand carries the appointment intake fields.
type CreateRendezVousCommand struct {
	ClientFullName    string
	ClientPhoneNumber string
	ClientEmail       string
	Date              time.Time
	Heure             string
	Type              string
	Description       string
	EstimationID      string
	PreferredLanguage string
	ContactMethod     string
}

// IRendezVousUseCase exposes the appointment workflow.
//
// Create notifies managers only; CreateAndConfirm persists an
// already-confirmed appointment and notifies the client only — the walk-in
// shortcut for staff-entered bookings skips the manager fan-out entirely.
type IRendezVousUseCase interface {
	Create(ctx context.Context, cmd CreateRendezVousCommand) (entities.RendezVous, error)
	CreateAndConfirm(ctx context.Context, cmd CreateRendezVousCommand, confirmedBy string) (entities.RendezVous, error)
	Confirm(ctx context.Context, id, confirmedBy string) (entities.RendezVous, error)
	GetByID(ctx context.Context, id string) (entities.RendezVous, error)
	GetAll(ctx context.Context, startDate, endDate string) ([]entities.RendezVous, error)
	GetByDate(ctx context.Context, date string) ([]entities.RendezVous, error)
	Update(ctx context.Context, id string, cmd CreateRendezVousCommand) (entities.RendezVous, error)
	Delete(ctx context.Context, id string) error
}

type RendezVousUseCase struct {
	repo         interfaces.IRendezVousRepository
	employeeRepo interfaces.IEmployeeRepository
	dispatcher   *Dispatcher
}

var _ IRendezVousUseCase = (*RendezVousUseCase)(nil)

func NewRendezVousUseCase(
	repo interfaces.IRendezVousRepository,
	employeeRepo interfaces.IEmployeeRepository,
	dispatcher *Dispatcher,
) *RendezVousUseCase {
	return &RendezVousUseCase{repo: repo, employeeRepo: employeeRepo, dispatcher: dispatcher}
}

func (u *RendezVousUseCase) build(cmd CreateRendezVousCommand) (entities.RendezVous, error) {
	if strings.TrimSpace(cmd.ClientFullName) == "" || strings.TrimSpace(cmd.ClientEmail) == "" ||
		strings.TrimSpace(cmd.ClientPhoneNumber) == "" || strings.TrimSpace(cmd.Type) == "" ||
		cmd.Date.IsZero() || strings.TrimSpace(cmd.Heure) == "" {
		return entities.RendezVous{}, ErrInvalidRendezVousData
	}

	now := time.Now().UTC()
	return entities.RendezVous{
		ID:                uuid.NewString(),
		ClientFullName:    strings.TrimSpace(cmd.ClientFullName),
		ClientPhoneNumber: strings.TrimSpace(cmd.ClientPhoneNumber),
		ClientEmail:       strings.TrimSpace(cmd.ClientEmail),
		Date:              cmd.Date,
		Heure:             strings.TrimSpace(cmd.Heure),
		Type:              strings.TrimSpace(cmd.Type),
		Description:       cmd.Description,
		EstimationID:      strings.TrimSpace(cmd.EstimationID),
		PreferredLanguage: strings.TrimSpace(cmd.PreferredLanguage),
		ContactMethod:     strings.TrimSpace(cmd.ContactMethod),
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (u *RendezVousUseCase) Create(ctx context.Context, cmd CreateRendezVousCommand) (entities.RendezVous, error) {
	rdv, err := u.build(cmd)
	if err != nil {
		return entities.RendezVous{}, err
	}

	created, err := u.repo.Create(ctx, rdv)
	if err != nil {
		log.Printf("[rendezvous][usecase] create failed err=%v", err)
		return entities.RendezVous{}, err
	}
	log.Printf("[rendezvous][usecase] created id=%s date=%s %s", created.ID, created.Date.Format("2006-01-02"), created.Heure)

	u.dispatcher.Dispatch(ctx, u.managerNotifications(ctx, created))
	return created, nil
}

func (u *RendezVousUseCase) managerNotifications(ctx context.Context, rdv entities.RendezVous) []Outbound {
	managers, err := u.employeeRepo.ListManagers(ctx)
	if err != nil {
		log.Printf("[rendezvous][usecase] loading managers failed id=%s err=%v", rdv.ID, err)
		return nil
	}

	var batch []Outbound
	for _, m := range managers {
		email := managerRendezVousEmail(m, rdv)
		batch = append(batch, Outbound{Email: &email})
		if m.Phone != "" {
			batch = append(batch, Outbound{SMS: &SMS{Phone: m.Phone, Message: managerRendezVousSMS(rdv)}})
		}
	}
	return batch
}

// CreateAndConfirm persists the appointment already confirmed and notifies
// the client only.
func (u *RendezVousUseCase) CreateAndConfirm(ctx context.Context, cmd CreateRendezVousCommand, confirmedBy string) (entities.RendezVous, error) {
	confirmedBy = strings.TrimSpace(confirmedBy)
	if confirmedBy == "" {
		return entities.RendezVous{}, ErrInvalidConfirmedBy
	}

	rdv, err := u.build(cmd)
	if err != nil {
		return entities.RendezVous{}, err
	}
	rdv.Confirmation = true
	rdv.ConfirmedBy = confirmedBy
	rdv.ConfirmedAt = rdv.CreatedAt

	created, err := u.repo.Create(ctx, rdv)
	if err != nil {
		log.Printf("[rendezvous][usecase] create-confirm failed err=%v", err)
		return entities.RendezVous{}, err
	}
	log.Printf("[rendezvous][usecase] created confirmed id=%s by=%s", created.ID, confirmedBy)

	u.dispatcher.Dispatch(ctx, u.clientConfirmationNotifications(created))
	return created, nil
}

// Confirm flips the confirmation flag and notifies the client. Re-confirming
// overwrites confirmer and timestamp and re-sends the notification.
func (u *RendezVousUseCase) Confirm(ctx context.Context, id, confirmedBy string) (entities.RendezVous, error) {
	id = strings.TrimSpace(id)
	confirmedBy = strings.TrimSpace(confirmedBy)
	if id == "" {
		return entities.RendezVous{}, ErrInvalidRendezVousID
	}
	if confirmedBy == "" {
		return entities.RendezVous{}, ErrInvalidConfirmedBy
	}

	updated, err := u.repo.Confirm(ctx, id, confirmedBy, time.Now().UTC())
	if err != nil {
		return entities.RendezVous{}, err
	}
	if updated.ID == "" {
		return entities.RendezVous{}, ErrRendezVousNotFound
	}
	log.Printf("[rendezvous][usecase] confirmed id=%s by=%s", updated.ID, confirmedBy)

	u.dispatcher.Dispatch(ctx, u.clientConfirmationNotifications(updated))
	return updated, nil
}

func (u *RendezVousUseCase) clientConfirmationNotifications(rdv entities.RendezVous) []Outbound {
	var batch []Outbound
	if wantsEmail(rdv.ContactMethod) {
		email := clientConfirmationEmail(rdv)
		batch = append(batch, Outbound{Email: &email})
	}
	if wantsSMS(rdv.ContactMethod) {
		batch = append(batch, Outbound{SMS: &SMS{Phone: rdv.ClientPhoneNumber, Message: clientConfirmationSMS(rdv)}})
	}
	return batch
}

func (u *RendezVousUseCase) GetByID(ctx context.Context, id string) (entities.RendezVous, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RendezVous{}, ErrInvalidRendezVousID
	}

	rdv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RendezVous{}, err
	}
	if rdv.ID == "" {
		return entities.RendezVous{}, ErrRendezVousNotFound
	}
	return rdv, nil
}

// GetAll lists appointments. With startDate/endDate ("2006-01-02") it
// returns those with startDate <= date < endDate+1day: the end boundary is
// padded by one calendar day so the whole end date is included regardless
// of time-of-day components stored.
func (u *RendezVousUseCase) GetAll(ctx context.Context, startDate, endDate string) ([]entities.RendezVous, error) {
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)
	if startDate == "" && endDate == "" {
		return u.repo.List(ctx)
	}

	from, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	to := end.AddDate(0, 0, 1)
	return u.repo.ListByDateRange(ctx, from, to)
}

// GetByDate returns appointments within [00:00:00.000, 23:59:59.999] of the
// given calendar day in server-local time.
func (u *RendezVousUseCase) GetByDate(ctx context.Context, date string) ([]entities.RendezVous, error) {
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), time.Local)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	return u.repo.ListByDateRange(ctx, day, day.AddDate(0, 0, 1))
}

func (u *RendezVousUseCase) Update(ctx context.Context, id string, cmd CreateRendezVousCommand) (entities.RendezVous, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RendezVous{}, ErrInvalidRendezVousID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RendezVous{}, err
	}
	if existing.ID == "" {
		return entities.RendezVous{}, ErrRendezVousNotFound
	}

	rdv, err := u.build(cmd)
	if err != nil {
		return entities.RendezVous{}, err
	}
	rdv.ID = existing.ID
	rdv.Confirmation = existing.Confirmation
	rdv.ConfirmedBy = existing.ConfirmedBy
	rdv.ConfirmedAt = existing.ConfirmedAt
	rdv.CreatedAt = existing.CreatedAt
	rdv.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, rdv)
	if err != nil {
		return entities.RendezVous{}, err
	}
	if updated.ID == "" {
		return entities.RendezVous{}, ErrRendezVousNotFound
	}
	return updated, nil
}

func (u *RendezVousUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRendezVousID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRendezVousNotFound
	}
	return nil
}
