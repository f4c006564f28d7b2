package task

import (
	"time"

	"orgdir/internal/employee"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	TaskName    string             `gorm:"size:255;not null"`
	Description string             `gorm:"size:1000"`
	Status      string             `gorm:"size:50;not null;default:'pending'"`
	EmployeeID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	Employee    *employee.Employee `gorm:"foreignKey:EmployeeID"`
	IsDeleted   bool               `gorm:"not null;default:false"`
	CreatedAt   time.Time          `gorm:"autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime"`
}
