package department

import (
	"context"
	"database/sql"

	"go-ems/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Department, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, companyID, id string) error
	CountEmployees(ctx context.Context, companyID, id string) (int64, error)
	SumActiveGross(ctx context.Context, companyID, id string) (float64, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Department{}, "id = ?", id).Error
}

func (r *repository) CountEmployees(ctx context.Context, companyID, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("department_id = ?", id).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count, err
}

// SumActiveGross totals the gross salaries of the department's active
// employees. Inactive employees keep their salary rows but do not count
// against the budget.
func (r *repository) SumActiveGross(ctx context.Context, companyID, id string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("salaries").
		Joins("JOIN employees ON employees.id = salaries.employee_id").
		Where("employees.department_id = ?", id).
		Where("employees.company_id = ?", companyID).
		Where("employees.status = ?", "ACTIVE").
		Where("employees.deleted_at IS NULL").
		Where("salaries.deleted_at IS NULL").
		Select("COALESCE(SUM(salaries.gross), 0)").
		Scan(&total).Error
	return total, err
}
