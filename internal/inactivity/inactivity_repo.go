package inactivity

import (
	"context"
	"database/sql"
	"time"

	"go-ems/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=inactivity_repo.go -destination=mock/inactivity_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, in *EmployeeInactivity) error
	FindAllByCompany(ctx context.Context, companyID string) ([]EmployeeInactivity, error)
	FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeInactivity, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*EmployeeInactivity, error)
	FindOpenByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeInactivity, error)
	FindCurrentByEmployee(ctx context.Context, companyID, employeeID string) (*EmployeeInactivity, error)
	Update(ctx context.Context, in *EmployeeInactivity) error
	Delete(ctx context.Context, companyID, id string) error

	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	FindEmployeeStatus(ctx context.Context, companyID, employeeID string) (string, error)
	UpdateEmployeeStatus(ctx context.Context, companyID, employeeID, status string, from, to *time.Time) error
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

func (r *repository) Create(ctx context.Context, in *EmployeeInactivity) error {
	return r.db.WithContext(ctx).Create(in).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]EmployeeInactivity, error) {
	var records []EmployeeInactivity
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("start_date DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeInactivity, error) {
	var records []EmployeeInactivity
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*EmployeeInactivity, error) {
	var in EmployeeInactivity
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&in, "id = ?", id).Error
	return &in, err
}

func (r *repository) FindOpenByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeInactivity, error) {
	var records []EmployeeInactivity
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("end_date IS NULL").
		Find(&records).Error
	return records, err
}

func (r *repository) FindCurrentByEmployee(ctx context.Context, companyID, employeeID string) (*EmployeeInactivity, error) {
	var in EmployeeInactivity
	today := dateOnly(time.Now().UTC())
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("start_date <= ?", today).
		Where("end_date IS NULL OR end_date >= ?", today).
		Order("start_date DESC").
		First(&in).Error
	return &in, err
}

func (r *repository) Update(ctx context.Context, in *EmployeeInactivity) error {
	return r.db.WithContext(ctx).Save(in).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&EmployeeInactivity{}, "id = ?", id).Error
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindEmployeeStatus(ctx context.Context, companyID, employeeID string) (string, error) {
	var status string
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("status").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Take(&status).Error
	return status, err
}

func (r *repository) UpdateEmployeeStatus(
	ctx context.Context,
	companyID, employeeID, status string,
	from, to *time.Time,
) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Updates(map[string]interface{}{
			"status":        status,
			"inactive_from": from,
			"inactive_to":   to,
		}).Error
}
