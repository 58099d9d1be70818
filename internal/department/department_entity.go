package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Department struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index:idx_departments_company"`
	Name         string    `gorm:"size:255;not null"`
	Description  string    `gorm:"type:text"`
	Budget       float64   `gorm:"type:numeric(14,2);not null;default:0"`
	BudgetPeriod string    `gorm:"type:varchar(10);not null;default:'MONTHLY'"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
