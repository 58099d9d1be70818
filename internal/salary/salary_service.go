package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-ems/internal/department"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	salaryerrors "go-ems/internal/salary/errors"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateSalaryRequest) (SalaryResponse, error)
	GetAll(ctx context.Context, companyID string) ([]SalaryResponse, error)
	GetByID(ctx context.Context, companyID, id string) (SalaryResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) (SalaryResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateSalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	GeneratePayslip(ctx context.Context, companyID, id string) ([]byte, error)
	RequestPayslip(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateSalaryRequest,
) (SalaryResponse, error) {
	s.logger.Debug("create salary requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.Float64("gross", req.Gross),
	)

	companyUUID, employeeUUID, err := validateCreateRequest(companyID, req)
	if err != nil {
		s.logger.Warn("create salary validation failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create salary begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindEmployeeRef(ctx, companyID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrEmployeeNotFound
		}
		s.logger.Error("create salary employee lookup failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	exists, err := qtx.ExistsForEmployee(ctx, companyID, req.EmployeeID)
	if err != nil {
		s.logger.Error("create salary duplicate check failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	if exists {
		s.logger.Warn("create salary duplicate",
			zap.String("employee_id", req.EmployeeID),
		)
		return SalaryResponse{}, salaryerrors.ErrDuplicateSalary
	}

	if empl.DepartmentID == nil {
		return SalaryResponse{}, salaryerrors.ErrEmployeeWithoutDepartment
	}

	if err := s.checkBudget(ctx, qtx, companyID, empl.DepartmentID.String(), 0, req.Gross); err != nil {
		return SalaryResponse{}, err
	}

	salaryID := uuid.New()
	deductions := buildDeductions(salaryID, req.Deductions)
	breakdown := ComputeNet(req.Gross, deductions)

	sal := &Salary{
		ID:              salaryID,
		CompanyID:       companyUUID,
		EmployeeID:      employeeUUID,
		Gross:           req.Gross,
		Tax:             breakdown.Tax,
		Insurance:       breakdown.Insurance,
		OtherDeductions: breakdown.Other,
		Net:             breakdown.Net,
		SalaryMonth:     req.SalaryMonth,
		SalaryYear:      req.SalaryYear,
		Deductions:      deductions,
	}

	if err := qtx.Create(ctx, sal); err != nil {
		s.logger.Error("create salary persist failed", zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create salary commit failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	s.logger.Info("create salary success",
		zap.String("salary_id", sal.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Float64("net", sal.Net),
	)

	return mapToResponse(*sal), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]SalaryResponse, error) {
	salaries, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(salaries), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (SalaryResponse, error) {
	sal, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	return mapToResponse(*sal), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) (SalaryResponse, error) {
	sal, err := s.repo.FindByEmployeeAndCompany(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	return mapToResponse(*sal), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateSalaryRequest,
) (SalaryResponse, error) {
	s.logger.Debug("update salary requested",
		zap.String("company_id", companyID),
		zap.String("salary_id", id),
		zap.Float64("gross", req.Gross),
	)

	if req.Gross < 0 {
		return SalaryResponse{}, salaryerrors.ErrNegativeGross
	}
	if req.SalaryMonth < 1 || req.SalaryMonth > 12 {
		return SalaryResponse{}, salaryerrors.ErrInvalidSalaryMonth
	}
	for _, d := range req.Deductions {
		if !IsValidDeductionKind(d.Kind) {
			return SalaryResponse{}, salaryerrors.ErrInvalidDeductionKind
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update salary begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sal, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}

	// The budget only gates raises. The replaced amount offsets the old
	// gross already counted in the department's expenses.
	if req.Gross > sal.Gross {
		empl, err := qtx.FindEmployeeRef(ctx, companyID, sal.EmployeeID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return SalaryResponse{}, salaryerrors.ErrEmployeeNotFound
			}
			return SalaryResponse{}, err
		}
		if empl.DepartmentID != nil {
			if err := s.checkBudget(ctx, qtx, companyID, empl.DepartmentID.String(), sal.Gross, req.Gross); err != nil {
				return SalaryResponse{}, err
			}
		}
	}

	deductions := buildDeductions(sal.ID, req.Deductions)
	breakdown := ComputeNet(req.Gross, deductions)

	sal.Gross = req.Gross
	sal.Tax = breakdown.Tax
	sal.Insurance = breakdown.Insurance
	sal.OtherDeductions = breakdown.Other
	sal.Net = breakdown.Net
	sal.SalaryMonth = req.SalaryMonth
	sal.SalaryYear = req.SalaryYear

	if err := qtx.Update(ctx, sal); err != nil {
		s.logger.Error("update salary persist failed", zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}
	if err := qtx.ReplaceDeductions(ctx, sal.ID.String(), deductions); err != nil {
		s.logger.Error("update salary deductions replace failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update salary commit failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	sal.Deductions = deductions
	s.logger.Info("update salary success",
		zap.String("salary_id", id),
		zap.Float64("net", sal.Net),
	)

	return mapToResponse(*sal), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	s.logger.Debug("delete salary requested",
		zap.String("company_id", companyID),
		zap.String("salary_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndCompany(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salaryerrors.ErrSalaryNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete salary failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("delete salary success", zap.String("salary_id", id))
	return nil
}

func (s *service) GeneratePayslip(ctx context.Context, companyID, id string) ([]byte, error) {
	sal, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salaryerrors.ErrSalaryNotFound
		}
		return nil, err
	}

	empl, err := s.repo.FindEmployeeRef(ctx, companyID, sal.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, salaryerrors.ErrEmployeeNotFound
		}
		return nil, err
	}

	pdf, err := buildPayslipPDF(empl.FullName, sal)
	if err != nil {
		s.logger.Error("payslip pdf build failed",
			zap.String("salary_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("payslip generated",
		zap.String("salary_id", id),
		zap.Int("bytes", len(pdf)),
	)
	return pdf, nil
}

func (s *service) RequestPayslip(ctx context.Context, companyID, id string) error {
	if s.outbox == nil {
		// Without an outbox the request degrades to a synchronous check.
		_, err := s.GetByID(ctx, companyID, id)
		return err
	}

	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	sal, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salaryerrors.ErrSalaryNotFound
		}
		return err
	}

	event := events.SalaryPayslipRequestedEvent{
		EventType:  "salary_payslip_requested",
		SalaryID:   sal.ID.String(),
		CompanyID:  companyID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "salary",
		AggregateID:   sal.ID.String(),
		EventType:     event.EventType,
		Topic:         events.SalaryPayslipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("payslip request outbox persist failed",
			zap.String("salary_id", id),
			zap.Error(err),
		)
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Info("payslip request queued", zap.String("salary_id", id))
	return nil
}

func (s *service) checkBudget(
	ctx context.Context,
	qtx Repository,
	companyID, departmentID string,
	replacedGross, proposedGross float64,
) error {
	dept, err := qtx.FindDepartmentRef(ctx, companyID, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salaryerrors.ErrEmployeeWithoutDepartment
		}
		s.logger.Error("budget check department lookup failed", zap.Error(err))
		return err
	}

	current, err := qtx.SumActiveGrossByDepartment(ctx, companyID, departmentID)
	if err != nil {
		s.logger.Error("budget check expense sum failed", zap.Error(err))
		return err
	}

	guard := department.BudgetGuard{
		DepartmentName: dept.Name,
		Budget:         dept.Budget,
		Period:         dept.BudgetPeriod,
	}
	if err := guard.Validate(current, replacedGross, proposedGross); err != nil {
		s.logger.Warn("budget check rejected",
			zap.String("department_id", departmentID),
			zap.Float64("current", current),
			zap.Float64("replaced", replacedGross),
			zap.Float64("proposed", proposedGross),
			zap.Float64("budget", dept.Budget),
		)
		return err
	}
	return nil
}

func validateCreateRequest(companyID string, req CreateSalaryRequest) (uuid.UUID, uuid.UUID, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, salaryerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, salaryerrors.ErrInvalidEmployeeID
	}
	if req.Gross < 0 {
		return uuid.Nil, uuid.Nil, salaryerrors.ErrNegativeGross
	}
	if req.SalaryMonth < 1 || req.SalaryMonth > 12 {
		return uuid.Nil, uuid.Nil, salaryerrors.ErrInvalidSalaryMonth
	}
	for _, d := range req.Deductions {
		if !IsValidDeductionKind(d.Kind) {
			return uuid.Nil, uuid.Nil, salaryerrors.ErrInvalidDeductionKind
		}
	}
	return companyUUID, employeeUUID, nil
}

func buildDeductions(salaryID uuid.UUID, inputs []DeductionInput) []Deduction {
	deds := make([]Deduction, len(inputs))
	for i, in := range inputs {
		deds[i] = Deduction{
			ID:           uuid.New(),
			SalaryID:     salaryID,
			Name:         in.Name,
			Kind:         in.Kind,
			Value:        in.Value,
			IsPercentage: in.IsPercentage,
			Position:     i,
		}
	}
	return deds
}

func mapToResponse(sal Salary) SalaryResponse {
	deds := make([]DeductionResponse, len(sal.Deductions))
	for i, d := range sal.Deductions {
		deds[i] = DeductionResponse{
			ID:           d.ID.String(),
			Name:         d.Name,
			Kind:         d.Kind,
			Value:        d.Value,
			IsPercentage: d.IsPercentage,
		}
	}
	return SalaryResponse{
		ID:              sal.ID.String(),
		CompanyID:       sal.CompanyID.String(),
		EmployeeID:      sal.EmployeeID.String(),
		Gross:           sal.Gross,
		Tax:             sal.Tax,
		Insurance:       sal.Insurance,
		OtherDeductions: sal.OtherDeductions,
		Net:             sal.Net,
		SalaryMonth:     sal.SalaryMonth,
		SalaryYear:      sal.SalaryYear,
		Deductions:      deds,
	}
}

func mapToListResponse(salaries []Salary) []SalaryResponse {
	res := make([]SalaryResponse, len(salaries))
	for i, s := range salaries {
		res[i] = mapToResponse(s)
	}
	return res
}
