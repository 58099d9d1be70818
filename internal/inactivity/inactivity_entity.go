package inactivity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeSickLeave      = "SICK_LEAVE"
	TypeUnpaidLeave    = "UNPAID_LEAVE"
	TypeSuspension     = "SUSPENSION"
	TypeAdministrative = "ADMINISTRATIVE"
	TypeOther          = "OTHER"
)

func IsValidType(t string) bool {
	switch t {
	case TypeSickLeave, TypeUnpaidLeave, TypeSuspension, TypeAdministrative, TypeOther:
		return true
	}
	return false
}

// EmployeeInactivity is a period during which an employee is off the
// books. A nil EndDate means the interval is open-ended.
type EmployeeInactivity struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_inactivities_company"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_inactivities_employee"`

	StartDate time.Time  `gorm:"type:date;not null"`
	EndDate   *time.Time `gorm:"type:date"`
	Reason    string     `gorm:"size:1000"`
	Type      string     `gorm:"type:varchar(20);not null"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
