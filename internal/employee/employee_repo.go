package employee

import (
	"context"
	"database/sql"

	"orgdir/internal/integrity"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByRole(ctx context.Context, role string) ([]Employee, error)
	FindByDepartment(ctx context.Context, departmentID string) ([]Employee, error)
	FindBySection(ctx context.Context, sectionID string) ([]Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Replace(ctx context.Context, id string, fields ReplaceFields) (int64, error)
	SoftDelete(ctx context.Context, id string) (int64, error)
	FindByIDWithDeleted(ctx context.Context, id string) (*Employee, error)
}

// ReplaceFields is the full set of mutable employee columns; update is
// whole-record replace, omitted values are not preserved.
type ReplaceFields struct {
	Name         string
	Role         string
	Phone        string
	Email        string
	DepartmentID string
	SectionID    string
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Department").
		Preload("Section").
		Order("created_at ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Department").
		Preload("Section").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByRole(ctx context.Context, role string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Department").
		Preload("Section").
		Where("role = ?", role).
		Order("created_at ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByDepartment(ctx context.Context, departmentID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Department").
		Preload("Section").
		Where("department_id = ?", departmentID).
		Order("created_at ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindBySection(ctx context.Context, sectionID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Department").
		Preload("Section").
		Where("section_id = ?", sectionID).
		Order("created_at ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		First(&empl, "email = ?", email).Error
	return &empl, err
}

func (r *repository) Replace(ctx context.Context, id string, fields ReplaceFields) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Scopes(integrity.Visible()).
		Updates(map[string]any{
			"name":          fields.Name,
			"role":          fields.Role,
			"phone":         fields.Phone,
			"email":         fields.Email,
			"department_id": fields.DepartmentID,
			"section_id":    fields.SectionID,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Scopes(integrity.Visible()).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}

func (r *repository) FindByIDWithDeleted(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "id = ?", id).Error
	return &empl, err
}
