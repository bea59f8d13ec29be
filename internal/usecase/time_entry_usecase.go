package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gmcl_backoffice/internal/domain/entities"
	"gmcl_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTimeEntryNotFound    = errors.New("time entry not found")
	ErrInvalidTimeEntryID   = errors.New("invalid time entry id")
	ErrInvalidTimeEntryData = errors.New("invalid time entry data")
)

type CreateTimeEntryCommand struct {
	EmployeeName string
	Date         time.Time
	StartTime    string
	EndTime      string
	Hours        float64
	Note         string
}

// TimeReportLine aggregates hours for one employee over the report window.
type TimeReportLine struct {
	EmployeeName string  `json:"employeeName"`
	TotalHours   float64 `json:"totalHours"`
	Entries      int     `json:"entries"`
}

type ITimeEntryUseCase interface {
	Create(ctx context.Context, cmd CreateTimeEntryCommand) (entities.TimeEntry, error)
	List(ctx context.Context, employeeName, startDate, endDate string) ([]entities.TimeEntry, error)
	GetByEmployeeAndDate(ctx context.Context, employeeName, date string) (entities.TimeEntry, error)
	Report(ctx context.Context, startDate, endDate string) ([]TimeReportLine, error)
	Update(ctx context.Context, id string, cmd CreateTimeEntryCommand) (entities.TimeEntry, error)
	Delete(ctx context.Context, id string) error
}

type TimeEntryUseCase struct {
	repo interfaces.ITimeEntryRepository
}

var _ ITimeEntryUseCase = (*TimeEntryUseCase)(nil)

func NewTimeEntryUseCase(repo interfaces.ITimeEntryRepository) *TimeEntryUseCase {
	return &TimeEntryUseCase{repo: repo}
}

func (u *TimeEntryUseCase) Create(ctx context.Context, cmd CreateTimeEntryCommand) (entities.TimeEntry, error) {
	if strings.TrimSpace(cmd.EmployeeName) == "" || cmd.Date.IsZero() || cmd.Hours < 0 {
		return entities.TimeEntry{}, ErrInvalidTimeEntryData
	}

	now := time.Now().UTC()
	t := entities.TimeEntry{
		ID:           uuid.NewString(),
		EmployeeName: strings.TrimSpace(cmd.EmployeeName),
		Date:         cmd.Date,
		StartTime:    strings.TrimSpace(cmd.StartTime),
		EndTime:      strings.TrimSpace(cmd.EndTime),
		Hours:        cmd.Hours,
		Note:         cmd.Note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, t)
}

func (u *TimeEntryUseCase) List(ctx context.Context, employeeName, startDate, endDate string) ([]entities.TimeEntry, error) {
	filter, err := buildTimeEntryFilter(employeeName, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return u.repo.List(ctx, filter)
}

// GetByEmployeeAndDate returns the employee's entry for the given calendar
// day (server-local time).
func (u *TimeEntryUseCase) GetByEmployeeAndDate(ctx context.Context, employeeName, date string) (entities.TimeEntry, error) {
	employeeName = strings.TrimSpace(employeeName)
	if employeeName == "" {
		return entities.TimeEntry{}, ErrInvalidTimeEntryData
	}
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), time.Local)
	if err != nil {
		return entities.TimeEntry{}, ErrInvalidTimeEntryData
	}

	entries, err := u.repo.List(ctx, interfaces.TimeEntryFilter{
		EmployeeName: employeeName,
		From:         day,
		To:           day.AddDate(0, 0, 1),
	})
	if err != nil {
		return entities.TimeEntry{}, err
	}
	if len(entries) == 0 {
		return entities.TimeEntry{}, ErrTimeEntryNotFound
	}
	return entries[0], nil
}

// Report totals hours per employee over the window, busiest first.
func (u *TimeEntryUseCase) Report(ctx context.Context, startDate, endDate string) ([]TimeReportLine, error) {
	filter, err := buildTimeEntryFilter("", startDate, endDate)
	if err != nil {
		return nil, err
	}

	entries, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals := map[string]*TimeReportLine{}
	for _, e := range entries {
		line, ok := totals[e.EmployeeName]
		if !ok {
			line = &TimeReportLine{EmployeeName: e.EmployeeName}
			totals[e.EmployeeName] = line
		}
		line.TotalHours += e.Hours
		line.Entries++
	}

	report := make([]TimeReportLine, 0, len(totals))
	for _, line := range totals {
		report = append(report, *line)
	}
	sort.Slice(report, func(i, j int) bool {
		if report[i].TotalHours != report[j].TotalHours {
			return report[i].TotalHours > report[j].TotalHours
		}
		return report[i].EmployeeName < report[j].EmployeeName
	})
	return report, nil
}

func buildTimeEntryFilter(employeeName, startDate, endDate string) (interfaces.TimeEntryFilter, error) {
	filter := interfaces.TimeEntryFilter{EmployeeName: strings.TrimSpace(employeeName)}

	if s := strings.TrimSpace(startDate); s != "" {
		from, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return interfaces.TimeEntryFilter{}, ErrInvalidTimeEntryData
		}
		filter.From = from
	}
	if s := strings.TrimSpace(endDate); s != "" {
		end, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return interfaces.TimeEntryFilter{}, ErrInvalidTimeEntryData
		}
		filter.To = end.AddDate(0, 0, 1)
	}
	return filter, nil
}

func (u *TimeEntryUseCase) Update(ctx context.Context, id string, cmd CreateTimeEntryCommand) (entities.TimeEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TimeEntry{}, ErrInvalidTimeEntryID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TimeEntry{}, err
	}
	if existing.ID == "" {
		return entities.TimeEntry{}, ErrTimeEntryNotFound
	}
	if strings.TrimSpace(cmd.EmployeeName) == "" || cmd.Date.IsZero() || cmd.Hours < 0 {
		return entities.TimeEntry{}, ErrInvalidTimeEntryData
	}

	existing.EmployeeName = strings.TrimSpace(cmd.EmployeeName)
	existing.Date = cmd.Date
	existing.StartTime = strings.TrimSpace(cmd.StartTime)
	existing.EndTime = strings.TrimSpace(cmd.EndTime)
	existing.Hours = cmd.Hours
	existing.Note = cmd.Note
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.TimeEntry{}, err
	}
	if updated.ID == "" {
		return entities.TimeEntry{}, ErrTimeEntryNotFound
	}
	return updated, nil
}

func (u *TimeEntryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTimeEntryID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTimeEntryNotFound
	}
	return nil
}
