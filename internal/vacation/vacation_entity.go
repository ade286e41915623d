package vacation

import (
	"time"

	"github.com/google/uuid"
)

const (
	SellDaysNone    = "none"
	SellDaysFirst10 = "first10"
	SellDaysLast10  = "last10"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Vacation struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID             uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeName           string    `gorm:"not null"`
	PlannedMonth           int       `gorm:"not null"`
	PlannedYear            int       `gorm:"not null"`
	SellDays               string    `gorm:"type:varchar(10);not null;default:none"`
	NotificationDaysBefore int       `gorm:"not null;default:30"`
	Status                 string    `gorm:"type:varchar(15);not null;default:pending"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
