package department

import (
	"context"
	"database/sql"

	"orgdir/internal/integrity"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	FindByName(ctx context.Context, name string) (*Department, error)
	// Replace overwrites name and description in one statement gated on
	// the record still being active, so concurrent writers cannot lose
	// each other's updates through a fetch-then-save gap.
	Replace(ctx context.Context, id, name, description string) (int64, error)
	SoftDelete(ctx context.Context, id string) (int64, error)
	FindByIDWithDeleted(ctx context.Context, id string) (*Department, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Order("created_at ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) FindByName(ctx context.Context, name string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		First(&dept, "name = ?", name).Error
	return &dept, err
}

func (r *repository) Replace(ctx context.Context, id, name, description string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Department{}).
		Where("id = ?", id).
		Scopes(integrity.Visible()).
		Updates(map[string]any{
			"name":        name,
			"description": description,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Department{}).
		Where("id = ?", id).
		Scopes(integrity.Visible()).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}

func (r *repository) FindByIDWithDeleted(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		First(&dept, "id = ?", id).Error
	return &dept, err
}
