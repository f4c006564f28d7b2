package section

import (
	"time"

	"orgdir/internal/department"

	"github.com/google/uuid"
)

type Section struct {
	ID           uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Name         string                 `gorm:"size:255;not null;index:uq_sections_active_name,unique,where:is_deleted = false"`
	DepartmentID uuid.UUID              `gorm:"type:uuid;not null;index"`
	Department   *department.Department `gorm:"foreignKey:DepartmentID"`
	IsDeleted    bool                   `gorm:"not null;default:false"`
	CreatedAt    time.Time              `gorm:"autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"autoUpdateTime"`
}
