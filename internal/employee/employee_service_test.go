package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	withTxFn               func(tx *sql.Tx) employee.Repository
	createFn               func(ctx context.Context, empl *employee.Employee) error
	findPageByCompanyFn    func(ctx context.Context, companyID string, offset, limit int) ([]employee.Employee, error)
	countByCompanyFn       func(ctx context.Context, companyID string) (int64, error)
	findOptionsByCompanyFn func(ctx context.Context, companyID string) ([]employee.Employee, error)
	findByIDAndCompanyFn   func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	updateFn               func(ctx context.Context, empl *employee.Employee) error
	deleteFn               func(ctx context.Context, companyID, id string) error
	departmentExistsFn     func(ctx context.Context, companyID, departmentID string) (bool, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindPageByCompany(ctx context.Context, companyID string, offset, limit int) ([]employee.Employee, error) {
	if f.findPageByCompanyFn != nil {
		return f.findPageByCompanyFn(ctx, companyID, offset, limit)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	if f.countByCompanyFn != nil {
		return f.countByCompanyFn(ctx, companyID)
	}
	return 0, nil
}

func (f *fakeEmployeeRepository) FindOptionsByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	if f.findOptionsByCompanyFn != nil {
		return f.findOptionsByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func (f *fakeEmployeeRepository) DepartmentExists(ctx context.Context, companyID, departmentID string) (bool, error) {
	if f.departmentExistsFn != nil {
		return f.departmentExistsFn(ctx, companyID, departmentID)
	}
	return true, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
	outbox  *fakeOutboxRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	outbox := &fakeOutboxRepository{}
	svc := employee.NewServiceWithOutbox(db, repo, outbox, nil)

	return &employeeServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outbox,
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

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	deptID := uuid.New().String()

	t.Run("success queues outbox event", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		var queued *kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			queued = &event
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName:     "Jane Smith",
			Email:        "jane@acme.test",
			HireDate:     "2026-01-15",
			DepartmentID: deptID,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Jane Smith", resp.FullName)
		assert.Equal(t, employee.StatusActive, resp.Status)
		assert.NotNil(t, queued)
		assert.Equal(t, "employee_created", queued.EventType)
		assert.Equal(t, kafka.OutboxStatusPending, queued.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid hire date", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName: "Jane Smith",
			Email:    "jane@acme.test",
			HireDate: "15-01-2026",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})

	t.Run("negative department not in company", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.departmentExistsFn = func(ctx context.Context, cID, dID string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName:     "Jane Smith",
			Email:        "jane@acme.test",
			HireDate:     "2026-01-15",
			DepartmentID: deptID,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrDepartmentNotFound)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success with pagination", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.countByCompanyFn = func(ctx context.Context, cID string) (int64, error) {
			return 42, nil
		}
		var gotOffset, gotLimit int
		deps.repo.findPageByCompanyFn = func(ctx context.Context, cID string, offset, limit int) ([]employee.Employee, error) {
			gotOffset, gotLimit = offset, limit
			return []employee.Employee{{ID: uuid.New(), FullName: "A"}}, nil
		}

		resp, total, err := deps.service.GetAll(ctx, companyID, 3, 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), total)
		assert.Len(t, resp, 1)
		assert.Equal(t, 20, gotOffset)
		assert.Equal(t, 10, gotLimit)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("negative not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cID, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByID(ctx, companyID, uuid.New().String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success without redis", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findOptionsByCompanyFn = func(ctx context.Context, cID string) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: uuid.New(), FullName: "Alice"},
				{ID: uuid.New(), FullName: "Bob"},
			}, nil
		}

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Alice", resp[0].FullName)
	})
}
