package task

import (
	"context"
	"database/sql"

	"orgdir/internal/integrity"

	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Task) error
	FindAll(ctx context.Context) ([]Task, error)
	FindByID(ctx context.Context, id string) (*Task, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Task, error)
	Replace(ctx context.Context, id string, fields ReplaceFields) (int64, error)
	SoftDelete(ctx context.Context, id string) (int64, error)
	FindByIDWithDeleted(ctx context.Context, id string) (*Task, error)
}

// ReplaceFields is the full set of mutable task columns.
type ReplaceFields struct {
	TaskName    string
	Description string
	Status      string
	EmployeeID  string
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

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Employee").
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Employee").
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Task, error) {
	var tasks []Task
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *repository) Replace(ctx context.Context, id string, fields ReplaceFields) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id = ?", id).
		Scopes(integrity.Visible()).
		Updates(map[string]any{
			"task_name":   fields.TaskName,
			"description": fields.Description,
			"status":      fields.Status,
			"employee_id": fields.EmployeeID,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id = ?", id).
		Scopes(integrity.Visible()).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}

func (r *repository) FindByIDWithDeleted(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		First(&t, "id = ?", id).Error
	return &t, err
}
