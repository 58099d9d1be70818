package salary_test

import (
	"context"
	"database/sql"
	"testing"

	"go-ems/internal/salary"
	salaryerrors "go-ems/internal/salary/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSalaryRepository struct {
	withTxFn                     func(tx *sql.Tx) salary.Repository
	createFn                     func(ctx context.Context, s *salary.Salary) error
	findAllByCompanyFn           func(ctx context.Context, companyID string) ([]salary.Salary, error)
	findByIDAndCompanyFn         func(ctx context.Context, companyID, id string) (*salary.Salary, error)
	findByEmployeeAndCompanyFn   func(ctx context.Context, companyID, employeeID string) (*salary.Salary, error)
	existsForEmployeeFn          func(ctx context.Context, companyID, employeeID string) (bool, error)
	updateFn                     func(ctx context.Context, s *salary.Salary) error
	replaceDeductionsFn          func(ctx context.Context, salaryID string, deductions []salary.Deduction) error
	deleteFn                     func(ctx context.Context, companyID, id string) error
	findEmployeeRefFn            func(ctx context.Context, companyID, employeeID string) (*salary.EmployeeRef, error)
	findDepartmentRefFn          func(ctx context.Context, companyID, departmentID string) (*salary.DepartmentRef, error)
	sumActiveGrossByDepartmentFn func(ctx context.Context, companyID, departmentID string) (float64, error)
}

func (f *fakeSalaryRepository) WithTx(tx *sql.Tx) salary.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSalaryRepository) Create(ctx context.Context, s *salary.Salary) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeSalaryRepository) FindAllByCompany(ctx context.Context, companyID string) ([]salary.Salary, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*salary.Salary, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindByEmployeeAndCompany(ctx context.Context, companyID, employeeID string) (*salary.Salary, error) {
	if f.findByEmployeeAndCompanyFn != nil {
		return f.findByEmployeeAndCompanyFn(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) ExistsForEmployee(ctx context.Context, companyID, employeeID string) (bool, error) {
	if f.existsForEmployeeFn != nil {
		return f.existsForEmployeeFn(ctx, companyID, employeeID)
	}
	return false, nil
}

func (f *fakeSalaryRepository) Update(ctx context.Context, s *salary.Salary) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, s)
	}
	return nil
}

func (f *fakeSalaryRepository) ReplaceDeductions(ctx context.Context, salaryID string, deductions []salary.Deduction) error {
	if f.replaceDeductionsFn != nil {
		return f.replaceDeductionsFn(ctx, salaryID, deductions)
	}
	return nil
}

func (f *fakeSalaryRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func (f *fakeSalaryRepository) FindEmployeeRef(ctx context.Context, companyID, employeeID string) (*salary.EmployeeRef, error) {
	if f.findEmployeeRefFn != nil {
		return f.findEmployeeRefFn(ctx, companyID, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepository) FindDepartmentRef(ctx context.Context, companyID, departmentID string) (*salary.DepartmentRef, error) {
	if f.findDepartmentRefFn != nil {
		return f.findDepartmentRefFn(ctx, companyID, departmentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepository) SumActiveGrossByDepartment(ctx context.Context, companyID, departmentID string) (float64, error) {
	if f.sumActiveGrossByDepartmentFn != nil {
		return f.sumActiveGrossByDepartmentFn(ctx, companyID, departmentID)
	}
	return 0, nil
}

type salaryServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service salary.Service
	repo    *fakeSalaryRepository
}

func setupSalaryServiceTest(t *testing.T) *salaryServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSalaryRepository{}
	svc := salary.NewService(db, repo)

	return &salaryServiceDeps{
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

func activeEmployeeRef(deptID uuid.UUID) *salary.EmployeeRef {
	return &salary.EmployeeRef{
		ID:           uuid.New(),
		FullName:     "Jane Smith",
		Status:       "ACTIVE",
		DepartmentID: &deptID,
	}
}

func engineeringRef(deptID uuid.UUID, budget float64) *salary.DepartmentRef {
	return &salary.DepartmentRef{
		ID:           deptID,
		Name:         "Engineering",
		Budget:       budget,
		BudgetPeriod: "MONTHLY",
	}
}

func TestSalaryService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	deptID := uuid.New()

	baseRequest := func() salary.CreateSalaryRequest {
		return salary.CreateSalaryRequest{
			EmployeeID:  employeeID,
			Gross:       1000,
			SalaryMonth: 6,
			SalaryYear:  2026,
			Deductions: []salary.DeductionInput{
				{Name: "income tax", Kind: "TAX", Value: 20, IsPercentage: true},
				{Name: "health", Kind: "INSURANCE", Value: 50},
			},
		}
	}

	t.Run("success computes breakdown", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.findEmployeeRefFn = func(ctx context.Context, cID, eID string) (*salary.EmployeeRef, error) {
			return activeEmployeeRef(deptID), nil
		}
		deps.repo.findDepartmentRefFn = func(ctx context.Context, cID, dID string) (*salary.DepartmentRef, error) {
			return engineeringRef(deptID, 10000), nil
		}
		deps.repo.sumActiveGrossByDepartmentFn = func(ctx context.Context, cID, dID string) (float64, error) {
			return 9000, nil
		}

		var persisted *salary.Salary
		deps.repo.createFn = func(ctx context.Context, s *salary.Salary) error {
			persisted = s
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, baseRequest())

		assert.NoError(t, err)
		assert.NotNil(t, persisted)
		assert.Equal(t, 1000.0, resp.Gross)
		assert.Equal(t, 200.0, resp.Tax)
		assert.Equal(t, 50.0, resp.Insurance)
		assert.Equal(t, 750.0, resp.Net)
		assert.Len(t, resp.Deductions, 2)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative budget exceeded", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.findEmployeeRefFn = func(ctx context.Context, cID, eID string) (*salary.EmployeeRef, error) {
			return activeEmployeeRef(deptID), nil
		}
		deps.repo.findDepartmentRefFn = func(ctx context.Context, cID, dID string) (*salary.DepartmentRef, error) {
			return engineeringRef(deptID, 10000), nil
		}
		deps.repo.sumActiveGrossByDepartmentFn = func(ctx context.Context, cID, dID string) (float64, error) {
			return 9000, nil
		}

		req := baseRequest()
		req.Gross = 1500

		_, err := deps.service.Create(ctx, companyID, req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "monthly budget")
		assert.Contains(t, err.Error(), "Engineering")
	})

	t.Run("landing exactly on budget passes", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.findEmployeeRefFn = func(ctx context.Context, cID, eID string) (*salary.EmployeeRef, error) {
			return activeEmployeeRef(deptID), nil
		}
		deps.repo.findDepartmentRefFn = func(ctx context.Context, cID, dID string) (*salary.DepartmentRef, error) {
			return engineeringRef(deptID, 10000), nil
		}
		deps.repo.sumActiveGrossByDepartmentFn = func(ctx context.Context, cID, dID string) (float64, error) {
			return 9000, nil
		}

		req := baseRequest()
		req.Gross = 1000
		req.Deductions = nil

		_, err := deps.service.Create(ctx, companyID, req)
		assert.NoError(t, err)
	})

	t.Run("negative employee not found", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.findEmployeeRefFn = func(ctx context.Context, cID, eID string) (*salary.EmployeeRef, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Create(ctx, companyID, baseRequest())
		assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotFound)
	})

	t.Run("negative duplicate salary", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.findEmployeeRefFn = func(ctx context.Context, cID, eID string) (*salary.EmployeeRef, error) {
			return activeEmployeeRef(deptID), nil
		}
		deps.repo.existsForEmployeeFn = func(ctx context.Context, cID, eID string) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Create(ctx, companyID, baseRequest())
		assert.ErrorIs(t, err, salaryerrors.ErrDuplicateSalary)
	})

	t.Run("negative employee without department", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.findEmployeeRefFn = func(ctx context.Context, cID, eID string) (*salary.EmployeeRef, error) {
			ref := activeEmployeeRef(deptID)
			ref.DepartmentID = nil
			return ref, nil
		}

		_, err := deps.service.Create(ctx, companyID, baseRequest())
		assert.ErrorIs(t, err, salaryerrors.ErrEmployeeWithoutDepartment)
	})

	t.Run("negative invalid deduction kind", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()

		req := baseRequest()
		req.Deductions = []salary.DeductionInput{{Name: "x", Kind: "PENSION", Value: 1}}

		_, err := deps.service.Create(ctx, companyID, req)
		assert.ErrorIs(t, err, salaryerrors.ErrInvalidDeductionKind)
	})
}

func TestSalaryService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	salaryID := uuid.New()
	employeeID := uuid.New()
	deptID := uuid.New()

	existing := func() *salary.Salary {
		return &salary.Salary{
			ID:          salaryID,
			CompanyID:   uuid.MustParse(companyID),
			EmployeeID:  employeeID,
			Gross:       2000,
			Net:         2000,
			SalaryMonth: 6,
			SalaryYear:  2026,
		}
	}

	t.Run("raise within budget recomputes net", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*salary.Salary, error) {
			return existing(), nil
		}
		deps.repo.findEmployeeRefFn = func(ctx context.Context, cID, eID string) (*salary.EmployeeRef, error) {
			ref := activeEmployeeRef(deptID)
			ref.ID = employeeID
			return ref, nil
		}
		deps.repo.findDepartmentRefFn = func(ctx context.Context, cID, dID string) (*salary.DepartmentRef, error) {
			return engineeringRef(deptID, 10000), nil
		}
		deps.repo.sumActiveGrossByDepartmentFn = func(ctx context.Context, cID, dID string) (float64, error) {
			// Includes the 2000 being replaced.
			return 9000, nil
		}

		resp, err := deps.service.Update(ctx, companyID, salaryID.String(), salary.UpdateSalaryRequest{
			Gross:       2500,
			SalaryMonth: 7,
			SalaryYear:  2026,
			Deductions: []salary.DeductionInput{
				{Name: "income tax", Kind: "TAX", Value: 500},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 2500.0, resp.Gross)
		assert.Equal(t, 2000.0, resp.Net)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative raise exceeding budget", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*salary.Salary, error) {
			return existing(), nil
		}
		deps.repo.findEmployeeRefFn = func(ctx context.Context, cID, eID string) (*salary.EmployeeRef, error) {
			ref := activeEmployeeRef(deptID)
			ref.ID = employeeID
			return ref, nil
		}
		deps.repo.findDepartmentRefFn = func(ctx context.Context, cID, dID string) (*salary.DepartmentRef, error) {
			return engineeringRef(deptID, 10000), nil
		}
		deps.repo.sumActiveGrossByDepartmentFn = func(ctx context.Context, cID, dID string) (float64, error) {
			return 9500, nil
		}

		// Projected: 9500 - 2000 + 5000 = 12500 > 10000.
		_, err := deps.service.Update(ctx, companyID, salaryID.String(), salary.UpdateSalaryRequest{
			Gross:       5000,
			SalaryMonth: 7,
			SalaryYear:  2026,
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "monthly budget")
	})

	t.Run("pay cut skips budget check", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*salary.Salary, error) {
			return existing(), nil
		}
		budgetConsulted := false
		deps.repo.findDepartmentRefFn = func(ctx context.Context, cID, dID string) (*salary.DepartmentRef, error) {
			budgetConsulted = true
			return engineeringRef(deptID, 10000), nil
		}

		_, err := deps.service.Update(ctx, companyID, salaryID.String(), salary.UpdateSalaryRequest{
			Gross:       1500,
			SalaryMonth: 7,
			SalaryYear:  2026,
		})

		assert.NoError(t, err)
		assert.False(t, budgetConsulted)
	})

	t.Run("negative salary not found", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*salary.Salary, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Update(ctx, companyID, salaryID.String(), salary.UpdateSalaryRequest{
			Gross:       1500,
			SalaryMonth: 7,
			SalaryYear:  2026,
		})
		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})
}

func TestSalaryService_GeneratePayslip(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	salaryID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*salary.Salary, error) {
			return &salary.Salary{
				ID:          salaryID,
				EmployeeID:  uuid.New(),
				Gross:       3000,
				Tax:         600,
				Net:         2400,
				SalaryMonth: 3,
				SalaryYear:  2026,
			}, nil
		}
		deps.repo.findEmployeeRefFn = func(ctx context.Context, cID, eID string) (*salary.EmployeeRef, error) {
			return &salary.EmployeeRef{FullName: "Jane Smith"}, nil
		}

		pdf, err := deps.service.GeneratePayslip(ctx, companyID, salaryID.String())

		assert.NoError(t, err)
		assert.NotEmpty(t, pdf)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupSalaryServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*salary.Salary, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GeneratePayslip(ctx, companyID, salaryID.String())
		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})
}
