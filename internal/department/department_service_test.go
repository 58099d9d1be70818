package department_test

import (
	"context"
	"database/sql"
	"testing"

	"go-ems/internal/department"
	departmenterrors "go-ems/internal/department/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepository struct {
	withTxFn             func(tx *sql.Tx) department.Repository
	createFn             func(ctx context.Context, dept *department.Department) error
	findAllByCompanyFn   func(ctx context.Context, companyID string) ([]department.Department, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*department.Department, error)
	updateFn             func(ctx context.Context, dept *department.Department) error
	deleteFn             func(ctx context.Context, companyID, id string) error
	countEmployeesFn     func(ctx context.Context, companyID, id string) (int64, error)
	sumActiveGrossFn     func(ctx context.Context, companyID, id string) (float64, error)
}

func (f *fakeDepartmentRepository) WithTx(tx *sql.Tx) department.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeDepartmentRepository) Create(ctx context.Context, dept *department.Department) error {
	if f.createFn != nil {
		return f.createFn(ctx, dept)
	}
	return nil
}

func (f *fakeDepartmentRepository) FindAllByCompany(ctx context.Context, companyID string) ([]department.Department, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*department.Department, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) Update(ctx context.Context, dept *department.Department) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, dept)
	}
	return nil
}

func (f *fakeDepartmentRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func (f *fakeDepartmentRepository) CountEmployees(ctx context.Context, companyID, id string) (int64, error) {
	if f.countEmployeesFn != nil {
		return f.countEmployeesFn(ctx, companyID, id)
	}
	return 0, nil
}

func (f *fakeDepartmentRepository) SumActiveGross(ctx context.Context, companyID, id string) (float64, error) {
	if f.sumActiveGrossFn != nil {
		return f.sumActiveGrossFn(ctx, companyID, id)
	}
	return 0, nil
}

type departmentServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service department.Service
	repo    *fakeDepartmentRepository
}

func setupDepartmentServiceTest(t *testing.T) *departmentServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeDepartmentRepository{}
	svc := department.NewService(db, repo)

	return &departmentServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		var created *department.Department
		deps.repo.createFn = func(ctx context.Context, dept *department.Department) error {
			created = dept
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, department.CreateDepartmentRequest{
			Name:         "Engineering",
			Budget:       50000,
			BudgetPeriod: "MONTHLY",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, "Engineering", resp.Name)
		assert.Equal(t, 50000.0, resp.Budget)
		assert.Equal(t, "MONTHLY", resp.BudgetPeriod)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid budget period", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, department.CreateDepartmentRequest{
			Name:         "Engineering",
			Budget:       50000,
			BudgetPeriod: "WEEKLY",
		})

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidBudgetPeriod)
	})

	t.Run("negative invalid company id", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, "not-a-uuid", department.CreateDepartmentRequest{
			Name:         "Engineering",
			BudgetPeriod: "MONTHLY",
		})

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidCompanyID)
	})
}

func TestDepartmentService_GetBudgetStatus(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	deptID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*department.Department, error) {
			return &department.Department{
				ID:           deptID,
				CompanyID:    uuid.MustParse(companyID),
				Name:         "Engineering",
				Budget:       10000,
				BudgetPeriod: "MONTHLY",
			}, nil
		}
		deps.repo.sumActiveGrossFn = func(ctx context.Context, cID, id string) (float64, error) {
			return 12000, nil
		}

		resp, err := deps.service.GetBudgetStatus(ctx, companyID, deptID.String())

		assert.NoError(t, err)
		assert.Equal(t, 12000.0, resp.CurrentExpenses)
		assert.InDelta(t, 120.0, resp.UsagePercentage, 0.001)
		assert.True(t, resp.Overrun)
	})

	t.Run("zero budget reports full usage without overrun flag", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*department.Department, error) {
			return &department.Department{
				ID:           deptID,
				Name:         "Interns",
				Budget:       0,
				BudgetPeriod: "MONTHLY",
			}, nil
		}
		deps.repo.sumActiveGrossFn = func(ctx context.Context, cID, id string) (float64, error) {
			return 0, nil
		}

		resp, err := deps.service.GetBudgetStatus(ctx, companyID, deptID.String())

		assert.NoError(t, err)
		assert.Equal(t, 100.0, resp.UsagePercentage)
		assert.False(t, resp.Overrun)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*department.Department, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetBudgetStatus(ctx, companyID, deptID.String())
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	deptID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*department.Department, error) {
			return &department.Department{ID: deptID}, nil
		}
		deps.repo.countEmployeesFn = func(ctx context.Context, cID, id string) (int64, error) {
			return 0, nil
		}

		err := deps.service.Delete(ctx, companyID, deptID.String())
		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative department still has employees", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*department.Department, error) {
			return &department.Department{ID: deptID}, nil
		}
		deps.repo.countEmployeesFn = func(ctx context.Context, cID, id string) (int64, error) {
			return 3, nil
		}

		err := deps.service.Delete(ctx, companyID, deptID.String())
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentHasEmployees)
	})
}
