package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "orgdir/internal/employee/errors"
	"orgdir/internal/events"
	"orgdir/internal/integrity"
	"orgdir/internal/messaging/kafka"
	"orgdir/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByRole(ctx context.Context, role string) ([]EmployeeResponse, error)
	GetByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error)
	GetBySection(ctx context.Context, sectionID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	checker integrity.Checker
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, checker integrity.Checker, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, checker, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	checker integrity.Checker,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		checker: checker,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("department_id", req.DepartmentID),
		zap.String("section_id", req.SectionID),
		zap.String("email", req.Email),
	)

	if err := s.checker.AssertExists(ctx, integrity.KindDepartment, req.DepartmentID); err != nil {
		s.logger.Warn("create employee department check failed",
			zap.String("request_id", rid),
			zap.String("department_id", req.DepartmentID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}
	if err := s.checker.AssertExists(ctx, integrity.KindSection, req.SectionID); err != nil {
		s.logger.Warn("create employee section check failed",
			zap.String("request_id", rid),
			zap.String("section_id", req.SectionID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := s.assertEmailFree(ctx, req.Email, ""); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		ID:           uuid.New(),
		Name:         req.Name,
		Role:         req.Role,
		Phone:        req.Phone,
		Email:        req.Email,
		DepartmentID: uuid.MustParse(req.DepartmentID),
		SectionID:    uuid.MustParse(req.SectionID),
		IsDeleted:    false,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:    "employee_created",
			RequestID:    rid,
			EmployeeID:   empl.ID.String(),
			DepartmentID: req.DepartmentID,
			SectionID:    req.SectionID,
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetByRole(ctx context.Context, role string) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindByRole(ctx, role)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if len(empls) == 0 {
		return nil, employeeerrors.ErrNoEmployeesForRole
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(departmentID); err != nil {
		return nil, employeeerrors.ErrInvalidDepartmentID
	}

	empls, err := s.repo.FindByDepartment(ctx, departmentID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if len(empls) == 0 {
		return nil, employeeerrors.ErrNoEmployeesInDepartment
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetBySection(ctx context.Context, sectionID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(sectionID); err != nil {
		return nil, employeeerrors.ErrInvalidSectionID
	}

	empls, err := s.repo.FindBySection(ctx, sectionID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if len(empls) == 0 {
		return nil, employeeerrors.ErrNoEmployeesInSection
	}

	return mapToListResponse(empls), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("employee_id", id),
		zap.String("department_id", req.DepartmentID),
		zap.String("section_id", req.SectionID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	if err := s.checker.AssertExists(ctx, integrity.KindDepartment, req.DepartmentID); err != nil {
		return EmployeeResponse{}, err
	}
	if err := s.checker.AssertExists(ctx, integrity.KindSection, req.SectionID); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.assertEmailFree(ctx, req.Email, id); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.Replace(ctx, id, ReplaceFields{
		Name:         req.Name,
		Role:         req.Role,
		Phone:        req.Phone,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		SectionID:    req.SectionID,
	})
	if err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if rows == 0 {
		return EmployeeResponse{}, mapRepositoryError(gorm.ErrRecordNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.SoftDelete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if rows == 0 {
		return EmployeeResponse{}, mapRepositoryError(gorm.ErrRecordNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.FindByIDWithDeleted(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

// assertEmailFree enforces email uniqueness among active employees.
// excludeID lets updates keep their own address.
func (s *service) assertEmailFree(ctx context.Context, email, excludeID string) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if excludeID != "" && existing.ID.String() == excludeID {
		return nil
	}
	return employeeerrors.ErrEmployeeEmailTaken
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		Name:         empl.Name,
		Role:         empl.Role,
		Phone:        empl.Phone,
		Email:        empl.Email,
		DepartmentID: empl.DepartmentID.String(),
		SectionID:    empl.SectionID.String(),
		IsDeleted:    empl.IsDeleted,
		CreatedAt:    empl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    empl.UpdatedAt.Format(time.RFC3339),
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	if empl.Section != nil {
		resp.Section = &EmployeeSectionResponse{
			ID:   empl.Section.ID.String(),
			Name: empl.Section.Name,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
