package salary

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Salary is the single active salary record of an employee. The tax,
// insurance and other amounts are denormalized results of applying the
// deduction rules to the gross.
type Salary struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_salaries_company"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_salaries_employee"`

	Gross           float64 `gorm:"type:numeric(14,2);not null"`
	Tax             float64 `gorm:"type:numeric(14,2);not null;default:0"`
	Insurance       float64 `gorm:"type:numeric(14,2);not null;default:0"`
	OtherDeductions float64 `gorm:"type:numeric(14,2);not null;default:0"`
	Net             float64 `gorm:"type:numeric(14,2);not null"`

	SalaryMonth int `gorm:"type:int;not null"`
	SalaryYear  int `gorm:"type:int;not null"`

	Deductions []Deduction `gorm:"foreignKey:SalaryID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Deduction is one rule contributing to a salary's breakdown. Position
// preserves the submitted order, which matters when rules of the same
// kind compete.
type Deduction struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SalaryID uuid.UUID `gorm:"type:uuid;not null;index:idx_deductions_salary"`

	Name         string  `gorm:"size:100;not null"`
	Kind         string  `gorm:"type:varchar(10);not null"`
	Value        float64 `gorm:"type:numeric(14,2);not null"`
	IsPercentage bool    `gorm:"not null;default:false"`
	Position     int     `gorm:"type:int;not null;default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
