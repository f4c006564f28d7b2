package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orgdir/internal/department"
	departmenterrors "orgdir/internal/department/errors"
	"orgdir/internal/middleware"
	"orgdir/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	CreateFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetAllFn  func(ctx context.Context) ([]department.DepartmentResponse, error)
	GetByIDFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
	UpdateFn  func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn  func(ctx context.Context, id string) (department.DepartmentResponse, error)
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.DeleteFn(ctx, id)
}

func TestDepartmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.New().String(), Name: req.Name}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Engineering"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, "Engineering", res["data"].(map[string]any)["name"])
	})

	t.Run("validation error", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, false, res["ok"])
		assert.Equal(t, "VALIDATION_ERROR", res["error"].(map[string]any)["code"])
	})

	t.Run("duplicate name", func(t *testing.T) {
		existing := department.DepartmentResponse{ID: uuid.New().String(), Name: "Engineering"}
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNameTaken.WithDetails(existing)
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Engineering"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		errObj := res["error"].(map[string]any)
		assert.Equal(t, "CONFLICT", errObj["code"])
		assert.Equal(t, existing.ID, errObj["details"].(map[string]any)["id"])
	})

	t.Run("unexpected service error maps to 500", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, errors.New("failed")
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Engineering"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDepartmentHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetAllFn: func(ctx context.Context) ([]department.DepartmentResponse, error) {
				return []department.DepartmentResponse{{ID: uuid.New().String(), Name: "Engineering"}}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDepartmentHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetByIDFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/departments/missing", nil)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "NOT_FOUND", res["error"].(map[string]any)["code"])
	})
}

func TestDepartmentHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns tombstoned record", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeDepartmentService{
			DeleteFn: func(ctx context.Context, deleteID string) (department.DepartmentResponse, error) {
				assert.Equal(t, id, deleteID)
				return department.DepartmentResponse{ID: deleteID, Name: "Engineering", IsDeleted: true}, nil
			},
		}

		h := department.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/departments/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["data"].(map[string]any)["is_deleted"])
	})
}

func TestDepartmentHandler_IdempotentCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("replays the cached response without re-running the service", func(t *testing.T) {
		created := department.DepartmentResponse{ID: uuid.New().String(), Name: "Engineering"}

		calls := 0
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				calls++
				return created, nil
			},
		}

		rdb, redisMock := redismock.NewClientMock()
		h := department.NewHandlerWithRedis(svc, rdb)

		r := gin.New()
		r.POST("/departments", middleware.Idempotency(rdb), h.Create)

		cacheKey := "idemp:/departments::retry-1"
		payload, _ := json.Marshal(response.ApiEnvelope{
			Ok:      true,
			Message: "Department created successfully",
			Data:    created,
		})

		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		redisMock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		redisMock.ExpectDel(cacheKey + ":lock").SetVal(1)

		body := `{"name":"Engineering"}`
		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "retry-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)

		redisMock.ExpectGet(cacheKey).SetVal(string(payload))

		retry := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(body))
		retry.Header.Set("Content-Type", "application/json")
		retry.Header.Set("Idempotency-Key", "retry-1")
		w2 := httptest.NewRecorder()
		r.ServeHTTP(w2, retry)

		assert.Equal(t, http.StatusOK, w2.Code)
		assert.Equal(t, 1, calls)

		var res map[string]any
		json.Unmarshal(w2.Body.Bytes(), &res)
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, created.ID, res["data"].(map[string]any)["id"])

		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected while the lock is held", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				t.Error("service must not run while the key is locked")
				return department.DepartmentResponse{}, nil
			},
		}

		rdb, redisMock := redismock.NewClientMock()
		h := department.NewHandlerWithRedis(svc, rdb)

		r := gin.New()
		r.POST("/departments", middleware.Idempotency(rdb), h.Create)

		cacheKey := "idemp:/departments::retry-2"
		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{"name":"Engineering"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "retry-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
