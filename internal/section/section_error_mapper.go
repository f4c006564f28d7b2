package section

import (
	"errors"
	"strings"

	sectionerrors "orgdir/internal/section/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sectionerrors.ErrSectionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_sections_active_name" {
			return sectionerrors.ErrSectionNameTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_sections_active_name") {
		return sectionerrors.ErrSectionNameTaken
	}

	return err
}
