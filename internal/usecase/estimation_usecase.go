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
	ErrEstimationNotFound    = errors.New("estimation not found")
	ErrInvalidEstimationID   = errors.New("invalid estimation id")
	ErrInvalidEstimationData = errors.New("invalid estimation data")
	ErrInvalidSeenBy         = errors.New("invalid seenBy")
	ErrInvalidReply          = errors.New("invalid reply")
)

// CreateEstimationCommand carries the intake fields plus the uploaded image
// files already saved to the uploads directory by the HTTP adapter.
type CreateEstimationCommand struct {
	Type              string
	FullName          string
	Email             string
	Phone             string
	Brand             string
	Model             string
	Trim              string
	Year              int
	Description       string
	PreferredLanguage string
	ContactMethod     string
	Files             []interfaces.UploadedImage
}

// IEstimationUseCase exposes the estimation intake workflow and the
// follow-up operations on submitted estimations.
//
// Create runs the full pipeline: media normalization, persistence, then
// best-effort notification fan-out (client per contact method, managers
// always). Notification and media failures never fail the request; only a
// validation or storage failure does.
type IEstimationUseCase interface {
	Create(ctx context.Context, cmd CreateEstimationCommand) (entities.Estimation, error)
	List(ctx context.Context) ([]entities.Estimation, error)
	MarkAsSeen(ctx context.Context, estimationID, seenBy string) (entities.Estimation, error)
	Reply(ctx context.Context, estimationID, replyBy, replyMessage string) (entities.Estimation, error)
	Delete(ctx context.Context, estimationID string) error
}

type EstimationUseCase struct {
	repo         interfaces.IEstimationRepository
	employeeRepo interfaces.IEmployeeRepository
	normalizer   interfaces.IImageNormalizer
	dispatcher   *Dispatcher
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(
	repo interfaces.IEstimationRepository,
	employeeRepo interfaces.IEmployeeRepository,
	normalizer interfaces.IImageNormalizer,
	dispatcher *Dispatcher,
) *EstimationUseCase {
	return &EstimationUseCase{
		repo:         repo,
		employeeRepo: employeeRepo,
		normalizer:   normalizer,
		dispatcher:   dispatcher,
	}
}

func (u *EstimationUseCase) Create(ctx context.Context, cmd CreateEstimationCommand) (entities.Estimation, error) {
	log.Printf("[estimation][usecase] create start client=%q vehicle=%q %q files=%d", cmd.FullName, cmd.Brand, cmd.Model, len(cmd.Files))

	if strings.TrimSpace(cmd.FullName) == "" || strings.TrimSpace(cmd.Email) == "" ||
		strings.TrimSpace(cmd.Phone) == "" || strings.TrimSpace(cmd.Brand) == "" ||
		strings.TrimSpace(cmd.Model) == "" || strings.TrimSpace(cmd.Type) == "" {
		return entities.Estimation{}, ErrInvalidEstimationData
	}

	// Images are optional: zero usable files is fine.
	var images []string
	if u.normalizer != nil && len(cmd.Files) > 0 {
		images = u.normalizer.Normalize(cmd.Files)
	}

	now := time.Now().UTC()
	e := entities.Estimation{
		ID:                uuid.NewString(),
		Type:              strings.TrimSpace(cmd.Type),
		FullName:          strings.TrimSpace(cmd.FullName),
		Email:             strings.TrimSpace(cmd.Email),
		Phone:             strings.TrimSpace(cmd.Phone),
		Brand:             strings.TrimSpace(cmd.Brand),
		Model:             strings.TrimSpace(cmd.Model),
		Trim:              strings.TrimSpace(cmd.Trim),
		Year:              cmd.Year,
		Description:       cmd.Description,
		Images:            images,
		PreferredLanguage: strings.TrimSpace(cmd.PreferredLanguage),
		ContactMethod:     strings.TrimSpace(cmd.ContactMethod),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[estimation][usecase] create failed err=%v", err)
		return entities.Estimation{}, err
	}
	log.Printf("[estimation][usecase] created id=%s images=%d", created.ID, len(created.Images))

	u.dispatcher.Dispatch(ctx, u.intakeNotifications(ctx, created))
	return created, nil
}

// intakeNotifications builds the full intake batch: client confirmation per
// contact method, plus a French email+SMS for every manager.
func (u *EstimationUseCase) intakeNotifications(ctx context.Context, e entities.Estimation) []Outbound {
	var batch []Outbound

	if wantsEmail(e.ContactMethod) {
		email := clientEstimationEmail(e)
		batch = append(batch, Outbound{Email: &email})
	}
	if wantsSMS(e.ContactMethod) {
		batch = append(batch, Outbound{SMS: &SMS{Phone: e.Phone, Message: clientEstimationSMS(e)}})
	}

	managers, err := u.employeeRepo.ListManagers(ctx)
	if err != nil {
		// Staff notification is best-effort like everything else here.
		log.Printf("[estimation][usecase] loading managers failed id=%s err=%v", e.ID, err)
		return batch
	}
	for _, m := range managers {
		email := managerEstimationEmail(m, e)
		batch = append(batch, Outbound{Email: &email})
		if m.Phone != "" {
			batch = append(batch, Outbound{SMS: &SMS{Phone: m.Phone, Message: managerEstimationSMS(e)}})
		}
	}
	return batch
}

func (u *EstimationUseCase) List(ctx context.Context) ([]entities.Estimation, error) {
	return u.repo.List(ctx)
}

// MarkAsSeen appends seenBy to the estimation's seen set. Repeated calls
// with the same identity are no-ops: the set never holds duplicates.
func (u *EstimationUseCase) MarkAsSeen(ctx context.Context, estimationID, seenBy string) (entities.Estimation, error) {
	estimationID = strings.TrimSpace(estimationID)
	seenBy = strings.TrimSpace(seenBy)
	if estimationID == "" {
		return entities.Estimation{}, ErrInvalidEstimationID
	}
	if seenBy == "" {
		return entities.Estimation{}, ErrInvalidSeenBy
	}

	e, err := u.repo.GetByID(ctx, estimationID)
	if err != nil {
		return entities.Estimation{}, err
	}
	if e.ID == "" {
		return entities.Estimation{}, ErrEstimationNotFound
	}
	if e.SeenBy(seenBy) {
		return e, nil
	}

	e.Seen = append(e.Seen, seenBy)
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

// Reply records the staff answer and notifies the client. Replying again
// overwrites the previous reply and re-sends the notification.
func (u *EstimationUseCase) Reply(ctx context.Context, estimationID, replyBy, replyMessage string) (entities.Estimation, error) {
	estimationID = strings.TrimSpace(estimationID)
	if estimationID == "" {
		return entities.Estimation{}, ErrInvalidEstimationID
	}
	if strings.TrimSpace(replyBy) == "" || strings.TrimSpace(replyMessage) == "" {
		return entities.Estimation{}, ErrInvalidReply
	}

	e, err := u.repo.GetByID(ctx, estimationID)
	if err != nil {
		return entities.Estimation{}, err
	}
	if e.ID == "" {
		return entities.Estimation{}, ErrEstimationNotFound
	}

	now := time.Now().UTC()
	e.Reply = true
	e.ReplyBy = strings.TrimSpace(replyBy)
	e.ReplyMessage = replyMessage
	e.ReplyDate = now
	e.UpdatedAt = now

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimation{}, err
	}
	log.Printf("[estimation][usecase] reply recorded id=%s by=%s", updated.ID, updated.ReplyBy)

	var batch []Outbound
	if wantsEmail(updated.ContactMethod) {
		email := clientReplyEmail(updated)
		batch = append(batch, Outbound{Email: &email})
	}
	if wantsSMS(updated.ContactMethod) {
		batch = append(batch, Outbound{SMS: &SMS{Phone: updated.Phone, Message: clientReplySMS(updated)}})
	}
	u.dispatcher.Dispatch(ctx, batch)

	return updated, nil
}

func (u *EstimationUseCase) Delete(ctx context.Context, estimationID string) error {
	estimationID = strings.TrimSpace(estimationID)
	if estimationID == "" {
		return ErrInvalidEstimationID
	}

	deleted, err := u.repo.Delete(ctx, estimationID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEstimationNotFound
	}
	return nil
}
