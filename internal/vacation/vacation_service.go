package vacation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sicservitium/internal/employee"
	"sicservitium/internal/spreadsheet"
	vacationerrors "sicservitium/internal/vacation/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeDirectory is the slice of the employee repository the vacation
// module needs: resolving an id to a display name.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

type Service interface {
	Create(ctx context.Context, req CreateVacationRequest) (VacationResponse, error)
	GetAll(ctx context.Context) ([]VacationResponse, error)
	GetByID(ctx context.Context, id string) (VacationResponse, error)
	Update(ctx context.Context, id string, req UpdateVacationRequest) (VacationResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateVacationStatusRequest) (VacationResponse, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Export(ctx context.Context, format string) (spreadsheet.File, error)
	CheckReminders(ctx context.Context) ([]ReminderResponse, error)
}

type service struct {
	repo      Repository
	employees EmployeeDirectory
	ledger    Ledger
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	employees EmployeeDirectory,
	ledger Ledger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("vacation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vacation.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		ledger:    ledger,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateVacationRequest) (VacationResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return VacationResponse{}, vacationerrors.ErrEmployeeNotFound
	}

	empl, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Warn("create vacation employee lookup failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VacationResponse{}, vacationerrors.ErrEmployeeNotFound
		}
		return VacationResponse{}, err
	}

	v := &Vacation{
		ID:                     uuid.New(),
		EmployeeID:             employeeID,
		EmployeeName:           empl.Nome,
		PlannedMonth:           req.PlannedMonth,
		PlannedYear:            req.PlannedYear,
		SellDays:               req.SellDays,
		NotificationDaysBefore: req.NotificationDaysBefore,
		Status:                 StatusPending,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error("create vacation persist failed", zap.Error(err))
		return VacationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create vacation success",
		zap.String("vacation_id", v.ID.String()),
		zap.String("employee_id", v.EmployeeID.String()),
	)

	return s.toResponse(*v), nil
}

func (s *service) GetAll(ctx context.Context) ([]VacationResponse, error) {
	vacations, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all vacations failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]VacationResponse, len(vacations))
	for i, v := range vacations {
		res[i] = s.toResponse(v)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (VacationResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VacationResponse{}, mapRepositoryError(err)
	}
	return s.toResponse(*v), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateVacationRequest) (VacationResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VacationResponse{}, mapRepositoryError(err)
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return VacationResponse{}, vacationerrors.ErrEmployeeNotFound
	}
	empl, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VacationResponse{}, vacationerrors.ErrEmployeeNotFound
		}
		return VacationResponse{}, err
	}

	v.EmployeeID = employeeID
	v.EmployeeName = empl.Nome
	v.PlannedMonth = req.PlannedMonth
	v.PlannedYear = req.PlannedYear
	v.SellDays = req.SellDays
	v.NotificationDaysBefore = req.NotificationDaysBefore

	if err := s.repo.Update(ctx, v); err != nil {
		s.logger.Error("update vacation persist failed", zap.Error(err))
		return VacationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update vacation success", zap.String("vacation_id", id))
	return s.toResponse(*v), nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateVacationStatusRequest) (VacationResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return VacationResponse{}, mapRepositoryError(err)
	}

	v.Status = req.Status
	if err := s.repo.Update(ctx, v); err != nil {
		s.logger.Error("update vacation status failed", zap.Error(err))
		return VacationResponse{}, mapRepositoryError(err)
	}

	// Completing a vacation retires its reminder; reopening it later makes
	// the vacation eligible to notify again.
	if req.Status == StatusCompleted && s.ledger != nil {
		if err := s.ledger.Clear(ctx, id); err != nil {
			s.logger.Error("clear notification ledger failed",
				zap.String("vacation_id", id),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("update vacation status success",
		zap.String("vacation_id", id),
		zap.String("status", req.Status),
	)
	return s.toResponse(*v), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return vacationerrors.ErrInvalidVacationID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete vacation failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.ledger != nil {
		if err := s.ledger.Clear(ctx, id); err != nil {
			s.logger.Error("clear notification ledger failed",
				zap.String("vacation_id", id),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("delete vacation success", zap.String("vacation_id", id))
	return nil
}

func (s *service) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("delete all vacations failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.ledger != nil {
		if err := s.ledger.ClearAll(ctx); err != nil {
			s.logger.Error("clear notification ledger failed", zap.Error(err))
		}
	}

	s.logger.Info("delete all vacations success")
	return nil
}

func (s *service) Export(ctx context.Context, format string) (spreadsheet.File, error) {
	ext, ok := spreadsheet.NormalizeFormat(format)
	if !ok {
		return spreadsheet.File{}, vacationerrors.ErrUnsupportedFormat
	}

	vacations, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("export load vacations failed", zap.Error(err))
		return spreadsheet.File{}, mapRepositoryError(err)
	}

	file, err := spreadsheet.Render("ferias", ext, ExportSheetName,
		ExportHeaders, BuildExportRows(vacations))
	if err != nil {
		s.logger.Error("export write failed", zap.Error(err))
		return spreadsheet.File{}, err
	}
	return file, nil
}

// CheckReminders scans the collection and emits at most one reminder per
// vacation whose start is inside its notification window. Fired reminders
// are recorded in the ledger so the next scan skips them.
func (s *service) CheckReminders(ctx context.Context) ([]ReminderResponse, error) {
	vacations, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("check reminders load failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	now := s.now()
	reminders := make([]ReminderResponse, 0)
	for _, v := range vacations {
		days, due := DueForReminder(v, now)
		if !due {
			continue
		}

		id := v.ID.String()
		if s.ledger != nil {
			notified, err := s.ledger.HasNotified(ctx, id)
			if err != nil {
				s.logger.Error("notification ledger lookup failed",
					zap.String("vacation_id", id),
					zap.Error(err),
				)
				continue
			}
			if notified {
				continue
			}
		}

		reminders = append(reminders, ReminderResponse{
			VacationID:     id,
			EmployeeName:   v.EmployeeName,
			PlannedMonth:   v.PlannedMonth,
			PlannedYear:    v.PlannedYear,
			DaysUntilStart: days,
			Message: fmt.Sprintf(
				"As férias de %s estão planejadas para %02d/%d e começam em %d dia(s).",
				v.EmployeeName, v.PlannedMonth, v.PlannedYear, days,
			),
		})

		if s.ledger != nil {
			if err := s.ledger.MarkNotified(ctx, id); err != nil {
				s.logger.Error("notification ledger mark failed",
					zap.String("vacation_id", id),
					zap.Error(err),
				)
			}
		}
	}

	if len(reminders) > 0 {
		s.logger.Info("vacation reminders due", zap.Int("count", len(reminders)))
	}
	return reminders, nil
}

func (s *service) toResponse(v Vacation) VacationResponse {
	return VacationResponse{
		ID:                     v.ID.String(),
		EmployeeID:             v.EmployeeID.String(),
		EmployeeName:           v.EmployeeName,
		PlannedMonth:           v.PlannedMonth,
		PlannedYear:            v.PlannedYear,
		SellDays:               v.SellDays,
		NotificationDaysBefore: v.NotificationDaysBefore,
		Status:                 v.Status,
		EffectiveStatus:        EffectiveStatus(v, s.now()),
	}
}
