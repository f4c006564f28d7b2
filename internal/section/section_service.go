package section

import (
	"context"
	"database/sql"
	"time"

	"orgdir/internal/integrity"
	sectionerrors "orgdir/internal/section/errors"
	"orgdir/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=section_service.go -destination=mock/section_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSectionRequest) (SectionResponse, error)
	GetAll(ctx context.Context) ([]SectionResponse, error)
	GetByID(ctx context.Context, id string) (SectionResponse, error)
	GetByDepartment(ctx context.Context, departmentID string) ([]SectionResponse, error)
	Update(ctx context.Context, id string, req UpdateSectionRequest) (SectionResponse, error)
	Delete(ctx context.Context, id string) (SectionResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	checker integrity.Checker
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, checker integrity.Checker, logger ...*zap.Logger) Service {
	l := zap.L().Named("section.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("section.service")
	}
	return &service{db: db, repo: repo, checker: checker, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateSectionRequest,
) (SectionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create section requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("department_id", req.DepartmentID),
	)

	if err := s.checker.AssertExists(ctx, integrity.KindDepartment, req.DepartmentID); err != nil {
		s.logger.Warn("create section department check failed",
			zap.String("request_id", rid),
			zap.String("department_id", req.DepartmentID),
			zap.Error(err),
		)
		return SectionResponse{}, err
	}

	// Section names are unique across all departments, not per parent.
	if err := s.checker.AssertUniqueName(ctx, integrity.KindSection, req.Name, ""); err != nil {
		return SectionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create section begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SectionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sec := &Section{
		ID:           uuid.New(),
		Name:         req.Name,
		DepartmentID: uuid.MustParse(req.DepartmentID),
		IsDeleted:    false,
	}

	if err := qtx.Create(ctx, sec); err != nil {
		s.logger.Error("create section persist failed", zap.Error(err))
		return SectionResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create section commit failed", zap.String("request_id", rid), zap.Error(err))
		return SectionResponse{}, err
	}

	s.logger.Info("create section success",
		zap.String("request_id", rid),
		zap.String("section_id", sec.ID.String()),
	)

	return mapToResponse(*sec), nil
}

func (s *service) GetAll(ctx context.Context) ([]SectionResponse, error) {
	secs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all sections failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(secs), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SectionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SectionResponse{}, sectionerrors.ErrInvalidSectionID
	}

	sec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SectionResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*sec), nil
}

func (s *service) GetByDepartment(ctx context.Context, departmentID string) ([]SectionResponse, error) {
	if _, err := uuid.Parse(departmentID); err != nil {
		return nil, sectionerrors.ErrInvalidDepartmentID
	}

	secs, err := s.repo.FindByDepartment(ctx, departmentID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if len(secs) == 0 {
		return nil, sectionerrors.ErrNoSectionsInDepartment
	}

	return mapToListResponse(secs), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateSectionRequest,
) (SectionResponse, error) {
	s.logger.Debug("update section requested",
		zap.String("section_id", id),
		zap.String("department_id", req.DepartmentID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return SectionResponse{}, sectionerrors.ErrInvalidSectionID
	}

	if err := s.checker.AssertExists(ctx, integrity.KindDepartment, req.DepartmentID); err != nil {
		return SectionResponse{}, err
	}
	if err := s.checker.AssertUniqueName(ctx, integrity.KindSection, req.Name, id); err != nil {
		return SectionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update section begin tx failed", zap.Error(err))
		return SectionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.Replace(ctx, id, req.Name, req.DepartmentID)
	if err != nil {
		s.logger.Error("update section persist failed", zap.Error(err))
		return SectionResponse{}, mapRepositoryError(err)
	}
	if rows == 0 {
		return SectionResponse{}, mapRepositoryError(gorm.ErrRecordNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update section commit failed", zap.Error(err))
		return SectionResponse{}, err
	}

	sec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SectionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update section success", zap.String("section_id", id))

	return mapToResponse(*sec), nil
}

func (s *service) Delete(ctx context.Context, id string) (SectionResponse, error) {
	s.logger.Debug("delete section requested", zap.String("section_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return SectionResponse{}, sectionerrors.ErrInvalidSectionID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete section begin tx failed", zap.Error(err))
		return SectionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.SoftDelete(ctx, id)
	if err != nil {
		s.logger.Error("delete section failed", zap.Error(err))
		return SectionResponse{}, mapRepositoryError(err)
	}
	if rows == 0 {
		return SectionResponse{}, mapRepositoryError(gorm.ErrRecordNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete section commit failed", zap.Error(err))
		return SectionResponse{}, err
	}

	sec, err := s.repo.FindByIDWithDeleted(ctx, id)
	if err != nil {
		return SectionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("delete section success", zap.String("section_id", id))
	return mapToResponse(*sec), nil
}

func mapToResponse(sec Section) SectionResponse {
	resp := SectionResponse{
		ID:           sec.ID.String(),
		Name:         sec.Name,
		DepartmentID: sec.DepartmentID.String(),
		IsDeleted:    sec.IsDeleted,
		CreatedAt:    sec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    sec.UpdatedAt.Format(time.RFC3339),
	}
	if sec.Department != nil {
		resp.Department = &SectionDepartmentResponse{
			ID:   sec.Department.ID.String(),
			Name: sec.Department.Name,
		}
	}
	return resp
}

func mapToListResponse(secs []Section) []SectionResponse {
	res := make([]SectionResponse, len(secs))
	for i, s := range secs {
		res[i] = mapToResponse(s)
	}
	return res
}
