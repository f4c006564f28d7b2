package task_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orgdir/internal/integrity"
	"orgdir/internal/task"
	taskerrors "orgdir/internal/task/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTaskService struct {
	CreateFn        func(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error)
	GetAllFn        func(ctx context.Context) ([]task.TaskResponse, error)
	GetByIDFn       func(ctx context.Context, id string) (task.TaskResponse, error)
	GetByEmployeeFn func(ctx context.Context, employeeID string) ([]task.TaskResponse, error)
	UpdateFn        func(ctx context.Context, id string, req task.UpdateTaskRequest) (task.TaskResponse, error)
	DeleteFn        func(ctx context.Context, id string) (task.TaskResponse, error)
}

func (f *fakeTaskService) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeTaskService) GetAll(ctx context.Context) ([]task.TaskResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeTaskService) GetByID(ctx context.Context, id string) (task.TaskResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeTaskService) GetByEmployee(ctx context.Context, employeeID string) ([]task.TaskResponse, error) {
	return f.GetByEmployeeFn(ctx, employeeID)
}
func (f *fakeTaskService) Update(ctx context.Context, id string, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeTaskService) Delete(ctx context.Context, id string) (task.TaskResponse, error) {
	return f.DeleteFn(ctx, id)
}

func TestTaskHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeTaskService{
			CreateFn: func(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
				return task.TaskResponse{
					ID:         uuid.New().String(),
					TaskName:   req.TaskName,
					Status:     task.StatusPending,
					EmployeeID: req.EmployeeID,
				}, nil
			},
		}

		h := task.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"task_name":"Ship release","employee_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing employee_id is a validation error", func(t *testing.T) {
		h := task.NewHandler(&fakeTaskService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"task_name":"Ship release"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "VALIDATION_ERROR", res["error"].(map[string]any)["code"])
	})

	t.Run("unknown employee is an invalid reference", func(t *testing.T) {
		svc := &fakeTaskService{
			CreateFn: func(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
				return task.TaskResponse{}, integrity.InvalidReference(integrity.KindEmployee)
			},
		}

		h := task.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"task_name":"Ship release","employee_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "INVALID_REFERENCE", res["error"].(map[string]any)["code"])
	})

	t.Run("bad status rejected by binding", func(t *testing.T) {
		h := task.NewHandler(&fakeTaskService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"task_name":"Ship release","status":"done","employee_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaskHandler_GetByEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no tasks for employee", func(t *testing.T) {
		svc := &fakeTaskService{
			GetByEmployeeFn: func(ctx context.Context, employeeID string) ([]task.TaskResponse, error) {
				return nil, taskerrors.ErrNoTasksForEmployee
			},
		}

		h := task.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/tasks/employee/some-id", nil)
		c.Params = gin.Params{{Key: "id", Value: "some-id"}}

		h.GetByEmployee(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "EMPTY_RESULT", res["error"].(map[string]any)["code"])
	})
}

func TestTaskHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakeTaskService{
			DeleteFn: func(ctx context.Context, id string) (task.TaskResponse, error) {
				return task.TaskResponse{}, taskerrors.ErrTaskNotFound
			},
		}

		h := task.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/tasks/missing", nil)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
