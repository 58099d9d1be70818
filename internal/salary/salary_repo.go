package salary

import (
	"context"
	"database/sql"

	"go-ems/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRef is the slice of an employee row this module needs for
// validation and payslips.
type EmployeeRef struct {
	ID           uuid.UUID
	FullName     string
	Status       string
	DepartmentID *uuid.UUID
}

// DepartmentRef carries just enough of a department to run its budget
// guard.
type DepartmentRef struct {
	ID           uuid.UUID
	Name         string
	Budget       float64
	BudgetPeriod string
}

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Salary) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Salary, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Salary, error)
	FindByEmployeeAndCompany(ctx context.Context, companyID, employeeID string) (*Salary, error)
	ExistsForEmployee(ctx context.Context, companyID, employeeID string) (bool, error)
	Update(ctx context.Context, s *Salary) error
	ReplaceDeductions(ctx context.Context, salaryID string, deductions []Deduction) error
	Delete(ctx context.Context, companyID, id string) error

	FindEmployeeRef(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error)
	FindDepartmentRef(ctx context.Context, companyID, departmentID string) (*DepartmentRef, error)
	SumActiveGrossByDepartment(ctx context.Context, companyID, departmentID string) (float64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, s *Salary) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Salary, error) {
	var salaries []Salary
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Deductions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&salaries).Error
	return salaries, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Salary, error) {
	var s Salary
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Deductions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindByEmployeeAndCompany(ctx context.Context, companyID, employeeID string) (*Salary, error) {
	var s Salary
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Deductions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&s, "employee_id = ?", employeeID).Error
	return &s, err
}

func (r *repository) ExistsForEmployee(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Salary{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, s *Salary) error {
	return r.db.WithContext(ctx).
		Omit("Deductions").
		Save(s).Error
}

func (r *repository) ReplaceDeductions(ctx context.Context, salaryID string, deductions []Deduction) error {
	if err := r.db.WithContext(ctx).
		Where("salary_id = ?", salaryID).
		Delete(&Deduction{}).Error; err != nil {
		return err
	}
	if len(deductions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&deductions).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Salary{}, "id = ?", id).Error
}

func (r *repository) FindEmployeeRef(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id", "full_name", "status", "department_id").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Take(&ref).Error
	return &ref, err
}

func (r *repository) FindDepartmentRef(ctx context.Context, companyID, departmentID string) (*DepartmentRef, error) {
	var ref DepartmentRef
	err := r.db.WithContext(ctx).
		Table("departments").
		Select("id", "name", "budget", "budget_period").
		Where("id = ?", departmentID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Take(&ref).Error
	return &ref, err
}

func (r *repository) SumActiveGrossByDepartment(ctx context.Context, companyID, departmentID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("salaries").
		Joins("JOIN employees ON employees.id = salaries.employee_id").
		Where("employees.department_id = ?", departmentID).
		Where("employees.company_id = ?", companyID).
		Where("employees.status = ?", "ACTIVE").
		Where("employees.deleted_at IS NULL").
		Where("salaries.deleted_at IS NULL").
		Select("COALESCE(SUM(salaries.gross), 0)").
		Scan(&total).Error
	return total, err
}
