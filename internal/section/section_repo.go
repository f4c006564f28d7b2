package section

import (
	"context"
	"database/sql"

	"orgdir/internal/integrity"

	"gorm.io/gorm"
)

//go:generate mockgen -source=section_repo.go -destination=mock/section_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, sec *Section) error
	FindAll(ctx context.Context) ([]Section, error)
	FindByID(ctx context.Context, id string) (*Section, error)
	FindByDepartment(ctx context.Context, departmentID string) ([]Section, error)
	Replace(ctx context.Context, id, name, departmentID string) (int64, error)
	SoftDelete(ctx context.Context, id string) (int64, error)
	FindByIDWithDeleted(ctx context.Context, id string) (*Section, error)
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

func (r *repository) Create(ctx context.Context, sec *Section) error {
	return r.db.WithContext(ctx).Create(sec).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Section, error) {
	var secs []Section
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Department").
		Order("created_at ASC").
		Find(&secs).Error
	return secs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Section, error) {
	var sec Section
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Department").
		First(&sec, "id = ?", id).Error
	return &sec, err
}

func (r *repository) FindByDepartment(ctx context.Context, departmentID string) ([]Section, error) {
	var secs []Section
	err := r.db.WithContext(ctx).
		Scopes(integrity.Visible()).
		Preload("Department").
		Where("department_id = ?", departmentID).
		Order("created_at ASC").
		Find(&secs).Error
	return secs, err
}

func (r *repository) Replace(ctx context.Context, id, name, departmentID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Section{}).
		Where("id = ?", id).
		Scopes(integrity.Visible()).
		Updates(map[string]any{
			"name":          name,
			"department_id": departmentID,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Section{}).
		Where("id = ?", id).
		Scopes(integrity.Visible()).
		Update("is_deleted", true)
	return res.RowsAffected, res.Error
}

func (r *repository) FindByIDWithDeleted(ctx context.Context, id string) (*Section, error) {
	var sec Section
	err := r.db.WithContext(ctx).
		First(&sec, "id = ?", id).Error
	return &sec, err
}
