package employee

import (
	"time"

	"orgdir/internal/department"
	"orgdir/internal/section"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Name         string                 `gorm:"size:255;not null"`
	Role         string                 `gorm:"size:100;not null;index"`
	Phone        string                 `gorm:"size:50;not null"`
	Email        string                 `gorm:"size:255;not null;index:uq_employees_active_email,unique,where:is_deleted = false"`
	DepartmentID uuid.UUID              `gorm:"type:uuid;not null;index"`
	SectionID    uuid.UUID              `gorm:"type:uuid;not null;index"`
	Department   *department.Department `gorm:"foreignKey:DepartmentID"`
	Section      *section.Section       `gorm:"foreignKey:SectionID"`
	IsDeleted    bool                   `gorm:"not null;default:false"`
	CreatedAt    time.Time              `gorm:"autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"autoUpdateTime"`
}
