package integrity

import (
	"context"
	"fmt"
	"net/http"

	"orgdir/internal/shared/apperror"

	"gorm.io/gorm"
)

// Kind identifies a referencable entity collection.
type Kind string

const (
	KindDepartment Kind = "departments"
	KindSection    Kind = "sections"
	KindEmployee   Kind = "employees"
)

var kindLabels = map[Kind]string{
	KindDepartment: "department",
	KindSection:    "section",
	KindEmployee:   "employee",
}

func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// ConflictingRecord is what AssertUniqueName reports back about the
// record already holding a name.
type ConflictingRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

//go:generate mockgen -source=checker.go -destination=mock/checker_mock.go -package=mock

// Checker gates every mutating operation on foreign-key existence and
// active-name uniqueness. It never mutates state itself.
type Checker interface {
	// AssertExists fails with an invalid-reference error when no
	// non-deleted record of kind has the given id.
	AssertExists(ctx context.Context, kind Kind, id string) error

	// AssertUniqueName fails with a conflict error when an active
	// record of kind other than excludeID already holds name. The
	// conflicting record's id and name ride along in the error details.
	AssertUniqueName(ctx context.Context, kind Kind, name string, excludeID string) error
}

type checker struct {
	db *gorm.DB
}

func NewChecker(db *gorm.DB) Checker {
	return &checker{db: db}
}

func (c *checker) AssertExists(ctx context.Context, kind Kind, id string) error {
	var count int64
	err := c.db.WithContext(ctx).
		Table(string(kind)).
		Where("id = ?", id).
		Scopes(Visible()).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return InvalidReference(kind)
	}
	return nil
}

func (c *checker) AssertUniqueName(ctx context.Context, kind Kind, name string, excludeID string) error {
	query := c.db.WithContext(ctx).
		Table(string(kind)).
		Select("id::text AS id", "name").
		Where("name = ?", name).
		Scopes(Visible())
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var existing []ConflictingRecord
	if err := query.Limit(1).Scan(&existing).Error; err != nil {
		return err
	}

	if len(existing) > 0 {
		return DuplicateName(kind, name).WithDetails(existing[0])
	}
	return nil
}

// InvalidReference is the error every dangling or tombstoned foreign
// key resolves to, regardless of which registry hit it.
func InvalidReference(kind Kind) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidReference,
		fmt.Sprintf("Invalid %s: it does not exist or was removed", kind.Label()),
		http.StatusBadRequest,
	)
}

func DuplicateName(kind Kind, name string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("A %s named %q already exists", kind.Label(), name),
		http.StatusConflict,
	)
}
