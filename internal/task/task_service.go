package task

import (
	"context"
	"database/sql"
	"time"

	"orgdir/internal/integrity"
	"orgdir/internal/shared/contextutil"
	taskerrors "orgdir/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	GetAll(ctx context.Context) ([]TaskResponse, error)
	GetByID(ctx context.Context, id string) (TaskResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]TaskResponse, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) (TaskResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	checker integrity.Checker
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, checker integrity.Checker, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		checker: checker,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create task requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)

	// An assignee pointing at a missing or removed employee is rejected
	// before anything is written.
	if err := s.checker.AssertExists(ctx, integrity.KindEmployee, req.EmployeeID); err != nil {
		s.logger.Warn("create task employee check failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return TaskResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create task begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t := &Task{
		ID:          uuid.New(),
		TaskName:    req.TaskName,
		Description: req.Description,
		Status:      status,
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		IsDeleted:   false,
	}

	if err := qtx.Create(ctx, t); err != nil {
		s.logger.Error("create task persist failed", zap.Error(err))
		return TaskResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create task commit failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("create task success",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
	)

	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TaskResponse, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all tasks failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(tasks), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*t), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]TaskResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, taskerrors.ErrInvalidEmployeeID
	}

	tasks, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if len(tasks) == 0 {
		return nil, taskerrors.ErrNoTasksForEmployee
	}

	return mapToListResponse(tasks), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTaskRequest) (TaskResponse, error) {
	s.logger.Debug("update task requested",
		zap.String("task_id", id),
		zap.String("employee_id", req.EmployeeID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	if err := s.checker.AssertExists(ctx, integrity.KindEmployee, req.EmployeeID); err != nil {
		return TaskResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update task begin tx failed", zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.Replace(ctx, id, ReplaceFields{
		TaskName:    req.TaskName,
		Description: req.Description,
		Status:      req.Status,
		EmployeeID:  req.EmployeeID,
	})
	if err != nil {
		s.logger.Error("update task persist failed", zap.Error(err))
		return TaskResponse{}, mapRepositoryError(err)
	}
	if rows == 0 {
		return TaskResponse{}, mapRepositoryError(gorm.ErrRecordNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update task commit failed", zap.Error(err))
		return TaskResponse{}, err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update task success", zap.String("task_id", id))

	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, id string) (TaskResponse, error) {
	s.logger.Debug("delete task requested", zap.String("task_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete task begin tx failed", zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.SoftDelete(ctx, id)
	if err != nil {
		s.logger.Error("delete task failed", zap.Error(err))
		return TaskResponse{}, mapRepositoryError(err)
	}
	if rows == 0 {
		return TaskResponse{}, mapRepositoryError(gorm.ErrRecordNotFound)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete task commit failed", zap.Error(err))
		return TaskResponse{}, err
	}

	t, err := s.repo.FindByIDWithDeleted(ctx, id)
	if err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("delete task success", zap.String("task_id", id))
	return mapToResponse(*t), nil
}

func mapToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		TaskName:    t.TaskName,
		Description: t.Description,
		Status:      t.Status,
		EmployeeID:  t.EmployeeID.String(),
		IsDeleted:   t.IsDeleted,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.Employee != nil {
		resp.Employee = &TaskEmployeeResponse{
			ID:   t.Employee.ID.String(),
			Name: t.Employee.Name,
		}
	}
	return resp
}

func mapToListResponse(tasks []Task) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = mapToResponse(t)
	}
	return res
}
