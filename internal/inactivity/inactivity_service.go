package inactivity

import (
	"context"
	"database/sql"
	"errors"
	"time"

	inactivityerrors "go-ems/internal/inactivity/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	employeeStatusActive   = "ACTIVE"
	employeeStatusInactive = "INACTIVE"
)

//go:generate mockgen -source=inactivity_service.go -destination=mock/inactivity_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateInactivityRequest) (InactivityResponse, error)
	GetAll(ctx context.Context, companyID string) ([]InactivityResponse, error)
	GetByID(ctx context.Context, companyID, id string) (InactivityResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) ([]InactivityResponse, error)
	GetCurrentByEmployee(ctx context.Context, companyID, employeeID string) (InactivityResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateInactivityRequest) (InactivityResponse, error)
	End(ctx context.Context, companyID, id string, req EndInactivityRequest) (InactivityResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("inactivity.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("inactivity.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateInactivityRequest,
) (InactivityResponse, error) {
	s.logger.Debug("create inactivity requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("type", req.Type),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return InactivityResponse{}, inactivityerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return InactivityResponse{}, inactivityerrors.ErrInvalidEmployeeID
	}
	if !IsValidType(req.Type) {
		return InactivityResponse{}, inactivityerrors.ErrInvalidType
	}
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create inactivity validation failed", zap.Error(err))
		return InactivityResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create inactivity begin tx failed", zap.Error(err))
		return InactivityResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	belongs, err := qtx.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		s.logger.Error("create inactivity employee check failed", zap.Error(err))
		return InactivityResponse{}, err
	}
	if !belongs {
		return InactivityResponse{}, inactivityerrors.ErrEmployeeNotFound
	}

	// A new open-ended interval supersedes any existing open ones, which
	// get closed at yesterday.
	if end == nil {
		open, err := qtx.FindOpenByEmployee(ctx, companyID, req.EmployeeID)
		if err != nil {
			s.logger.Error("create inactivity open lookup failed", zap.Error(err))
			return InactivityResponse{}, err
		}
		yesterday := dateOnly(time.Now().UTC().AddDate(0, 0, -1))
		for i := range open {
			open[i].EndDate = &yesterday
			if err := qtx.Update(ctx, &open[i]); err != nil {
				s.logger.Error("create inactivity close open interval failed", zap.Error(err))
				return InactivityResponse{}, err
			}
		}
	}

	record := &EmployeeInactivity{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Type:       req.Type,
	}
	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Error("create inactivity persist failed", zap.Error(err))
		return InactivityResponse{}, err
	}

	// The employee is marked inactive with this window regardless of
	// whether the interval covers today.
	if err := qtx.UpdateEmployeeStatus(ctx, companyID, req.EmployeeID, employeeStatusInactive, &start, end); err != nil {
		s.logger.Error("create inactivity status update failed", zap.Error(err))
		return InactivityResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create inactivity commit failed", zap.Error(err))
		return InactivityResponse{}, err
	}
	s.logger.Info("create inactivity success",
		zap.String("inactivity_id", record.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]InactivityResponse, error) {
	records, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (InactivityResponse, error) {
	record, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InactivityResponse{}, inactivityerrors.ErrInactivityNotFound
		}
		return InactivityResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) ([]InactivityResponse, error) {
	records, err := s.repo.FindAllByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetCurrentByEmployee(ctx context.Context, companyID, employeeID string) (InactivityResponse, error) {
	record, err := s.repo.FindCurrentByEmployee(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InactivityResponse{}, inactivityerrors.ErrInactivityNotFound
		}
		return InactivityResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateInactivityRequest,
) (InactivityResponse, error) {
	s.logger.Debug("update inactivity requested",
		zap.String("company_id", companyID),
		zap.String("inactivity_id", id),
	)

	if !IsValidType(req.Type) {
		return InactivityResponse{}, inactivityerrors.ErrInvalidType
	}
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("update inactivity validation failed", zap.Error(err))
		return InactivityResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update inactivity begin tx failed", zap.Error(err))
		return InactivityResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InactivityResponse{}, inactivityerrors.ErrInactivityNotFound
		}
		return InactivityResponse{}, err
	}

	record.StartDate = start
	record.EndDate = end
	record.Reason = req.Reason
	record.Type = req.Type

	if err := qtx.Update(ctx, record); err != nil {
		s.logger.Error("update inactivity persist failed", zap.Error(err))
		return InactivityResponse{}, err
	}

	if err := s.refreshEmployeeWindow(ctx, qtx, companyID, record); err != nil {
		return InactivityResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update inactivity commit failed", zap.Error(err))
		return InactivityResponse{}, err
	}
	s.logger.Info("update inactivity success", zap.String("inactivity_id", id))

	return mapToResponse(*record), nil
}

func (s *service) End(
	ctx context.Context,
	companyID, id string,
	req EndInactivityRequest,
) (InactivityResponse, error) {
	s.logger.Debug("end inactivity requested",
		zap.String("company_id", companyID),
		zap.String("inactivity_id", id),
		zap.String("end_date", req.EndDate),
	)

	end, err := parseDate(req.EndDate)
	if err != nil {
		return InactivityResponse{}, inactivityerrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("end inactivity begin tx failed", zap.Error(err))
		return InactivityResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InactivityResponse{}, inactivityerrors.ErrInactivityNotFound
		}
		return InactivityResponse{}, err
	}

	if dateOnly(end).Before(dateOnly(record.StartDate)) {
		s.logger.Warn("end inactivity before start rejected",
			zap.String("inactivity_id", id),
		)
		return InactivityResponse{}, inactivityerrors.ErrInvalidDateRange
	}

	record.EndDate = &end
	if err := qtx.Update(ctx, record); err != nil {
		s.logger.Error("end inactivity persist failed", zap.Error(err))
		return InactivityResponse{}, err
	}

	if record.IsCurrent() {
		if err := s.refreshEmployeeWindow(ctx, qtx, companyID, record); err != nil {
			return InactivityResponse{}, err
		}
	} else if err := s.reactivateIfInactive(ctx, qtx, companyID, record.EmployeeID.String()); err != nil {
		return InactivityResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("end inactivity commit failed", zap.Error(err))
		return InactivityResponse{}, err
	}
	s.logger.Info("end inactivity success", zap.String("inactivity_id", id))

	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	s.logger.Debug("delete inactivity requested",
		zap.String("company_id", companyID),
		zap.String("inactivity_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inactivityerrors.ErrInactivityNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete inactivity failed", zap.Error(err))
		return err
	}

	// Removing the interval that keeps the employee inactive today puts
	// them back to work.
	if record.IsCurrent() {
		if err := s.reactivateIfInactive(ctx, qtx, companyID, record.EmployeeID.String()); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete inactivity success", zap.String("inactivity_id", id))
	return nil
}

// refreshEmployeeWindow rewrites the employee's cached inactivity window
// from the given interval, but only when the interval covers today and
// the employee is already marked inactive. Edits to historical or future
// intervals leave the cache alone.
func (s *service) refreshEmployeeWindow(
	ctx context.Context,
	qtx Repository,
	companyID string,
	record *EmployeeInactivity,
) error {
	if !record.IsCurrent() {
		return nil
	}

	status, err := qtx.FindEmployeeStatus(ctx, companyID, record.EmployeeID.String())
	if err != nil {
		s.logger.Error("employee status lookup failed", zap.Error(err))
		return err
	}
	if status != employeeStatusInactive {
		return nil
	}
	return qtx.UpdateEmployeeStatus(
		ctx, companyID, record.EmployeeID.String(),
		employeeStatusInactive, &record.StartDate, record.EndDate,
	)
}

func (s *service) reactivateIfInactive(
	ctx context.Context,
	qtx Repository,
	companyID, employeeID string,
) error {
	status, err := qtx.FindEmployeeStatus(ctx, companyID, employeeID)
	if err != nil {
		s.logger.Error("employee status lookup failed", zap.Error(err))
		return err
	}
	if status != employeeStatusInactive {
		return nil
	}
	if err := qtx.UpdateEmployeeStatus(ctx, companyID, employeeID, employeeStatusActive, nil, nil); err != nil {
		s.logger.Error("employee reactivate failed", zap.Error(err))
		return err
	}
	s.logger.Info("employee reactivated", zap.String("employee_id", employeeID))
	return nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func parseDateRange(startRaw string, endRaw *string) (time.Time, *time.Time, error) {
	start, err := parseDate(startRaw)
	if err != nil {
		return time.Time{}, nil, inactivityerrors.ErrInvalidDateFormat
	}

	var end *time.Time
	if endRaw != nil && *endRaw != "" {
		parsed, err := parseDate(*endRaw)
		if err != nil {
			return time.Time{}, nil, inactivityerrors.ErrInvalidDateFormat
		}
		if parsed.Before(start) {
			return time.Time{}, nil, inactivityerrors.ErrInvalidDateRange
		}
		end = &parsed
	}
	return start, end, nil
}

func mapToResponse(in EmployeeInactivity) InactivityResponse {
	var end *string
	if in.EndDate != nil {
		formatted := in.EndDate.Format("2006-01-02")
		end = &formatted
	}
	return InactivityResponse{
		ID:             in.ID.String(),
		CompanyID:      in.CompanyID.String(),
		EmployeeID:     in.EmployeeID.String(),
		StartDate:      in.StartDate.Format("2006-01-02"),
		EndDate:        end,
		Reason:         in.Reason,
		Type:           in.Type,
		IsCurrent:      in.IsCurrent(),
		DurationInDays: in.DurationInDays(time.Now().UTC()),
	}
}

func mapToListResponse(records []EmployeeInactivity) []InactivityResponse {
	res := make([]InactivityResponse, len(records))
	for i, r := range records {
		res[i] = mapToResponse(r)
	}
	return res
}
