package department

import (
	"context"
	"database/sql"
	"errors"
	"time"

	departmenterrors "go-ems/internal/department/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, companyID string) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, companyID, id string) (DepartmentResponse, error)
	GetBudgetStatus(ctx context.Context, companyID, id string) (BudgetStatusResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {
	s.logger.Debug("create department requested",
		zap.String("company_id", companyID),
		zap.String("name", req.Name),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidCompanyID
	}
	if !IsValidBudgetPeriod(req.BudgetPeriod) {
		return DepartmentResponse{}, departmenterrors.ErrInvalidBudgetPeriod
	}
	if req.Budget < 0 {
		return DepartmentResponse{}, departmenterrors.ErrNegativeBudget
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		Name:         req.Name,
		Description:  req.Description,
		Budget:       req.Budget,
		BudgetPeriod: req.BudgetPeriod,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	s.logger.Info("create department success",
		zap.String("department_id", dept.ID.String()),
		zap.String("company_id", companyID),
	)

	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (DepartmentResponse, error) {
	dept, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		return DepartmentResponse{}, err
	}
	return mapToResponse(*dept), nil
}

func (s *service) GetBudgetStatus(ctx context.Context, companyID, id string) (BudgetStatusResponse, error) {
	dept, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BudgetStatusResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		return BudgetStatusResponse{}, err
	}

	current, err := s.repo.SumActiveGross(ctx, companyID, id)
	if err != nil {
		s.logger.Error("budget status expense sum failed",
			zap.String("department_id", id),
			zap.Error(err),
		)
		return BudgetStatusResponse{}, err
	}

	guard := GuardFor(dept)
	usage := guard.UsagePercentage(current)

	return BudgetStatusResponse{
		DepartmentID:    dept.ID.String(),
		Name:            dept.Name,
		Budget:          dept.Budget,
		BudgetPeriod:    dept.BudgetPeriod,
		CurrentExpenses: current,
		UsagePercentage: usage,
		Overrun:         usage > 100,
	}, nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateDepartmentRequest,
) (DepartmentResponse, error) {
	s.logger.Debug("update department requested",
		zap.String("company_id", companyID),
		zap.String("department_id", id),
	)

	if !IsValidBudgetPeriod(req.BudgetPeriod) {
		return DepartmentResponse{}, departmenterrors.ErrInvalidBudgetPeriod
	}
	if req.Budget < 0 {
		return DepartmentResponse{}, departmenterrors.ErrNegativeBudget
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		return DepartmentResponse{}, err
	}

	dept.Name = req.Name
	dept.Description = req.Description
	dept.Budget = req.Budget
	dept.BudgetPeriod = req.BudgetPeriod

	if err := qtx.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	s.logger.Info("update department success", zap.String("department_id", id))

	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	s.logger.Debug("delete department requested",
		zap.String("company_id", companyID),
		zap.String("department_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete department begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndCompany(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return departmenterrors.ErrDepartmentNotFound
		}
		return err
	}

	count, err := qtx.CountEmployees(ctx, companyID, id)
	if err != nil {
		s.logger.Error("delete department employee count failed", zap.Error(err))
		return err
	}
	if count > 0 {
		s.logger.Warn("delete department rejected, employees assigned",
			zap.String("department_id", id),
			zap.Int64("employees", count),
		)
		return departmenterrors.ErrDepartmentHasEmployees
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete department failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete department commit failed", zap.Error(err))
		return err
	}
	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           dept.ID.String(),
		CompanyID:    dept.CompanyID.String(),
		Name:         dept.Name,
		Description:  dept.Description,
		Budget:       dept.Budget,
		BudgetPeriod: dept.BudgetPeriod,
		CreatedAt:    dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    dept.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
