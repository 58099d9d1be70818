package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_employees_company"`
	FullName  string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:uq_employees_company_email"`
	Phone     string    `gorm:"size:50"`
	Position  string    `gorm:"size:100"`
	HireDate  time.Time `gorm:"type:date;not null"`

	DepartmentID *uuid.UUID `gorm:"type:uuid;index"`

	// Cached availability window, maintained by the inactivity module.
	Status       string     `gorm:"type:varchar(10);not null;default:'ACTIVE'"`
	InactiveFrom *time.Time `gorm:"type:date"`
	InactiveTo   *time.Time `gorm:"type:date"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
