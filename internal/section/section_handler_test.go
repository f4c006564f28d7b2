package section_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orgdir/internal/integrity"
	"orgdir/internal/section"
	sectionerrors "orgdir/internal/section/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSectionService struct {
	CreateFn          func(ctx context.Context, req section.CreateSectionRequest) (section.SectionResponse, error)
	GetAllFn          func(ctx context.Context) ([]section.SectionResponse, error)
	GetByIDFn         func(ctx context.Context, id string) (section.SectionResponse, error)
	GetByDepartmentFn func(ctx context.Context, departmentID string) ([]section.SectionResponse, error)
	UpdateFn          func(ctx context.Context, id string, req section.UpdateSectionRequest) (section.SectionResponse, error)
	DeleteFn          func(ctx context.Context, id string) (section.SectionResponse, error)
}

func (f *fakeSectionService) Create(ctx context.Context, req section.CreateSectionRequest) (section.SectionResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeSectionService) GetAll(ctx context.Context) ([]section.SectionResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeSectionService) GetByID(ctx context.Context, id string) (section.SectionResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeSectionService) GetByDepartment(ctx context.Context, departmentID string) ([]section.SectionResponse, error) {
	return f.GetByDepartmentFn(ctx, departmentID)
}
func (f *fakeSectionService) Update(ctx context.Context, id string, req section.UpdateSectionRequest) (section.SectionResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeSectionService) Delete(ctx context.Context, id string) (section.SectionResponse, error) {
	return f.DeleteFn(ctx, id)
}

func TestSectionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeSectionService{
			CreateFn: func(ctx context.Context, req section.CreateSectionRequest) (section.SectionResponse, error) {
				return section.SectionResponse{ID: uuid.New().String(), Name: req.Name, DepartmentID: req.DepartmentID}, nil
			},
		}

		h := section.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Backend","department_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/sections", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown parent department", func(t *testing.T) {
		svc := &fakeSectionService{
			CreateFn: func(ctx context.Context, req section.CreateSectionRequest) (section.SectionResponse, error) {
				return section.SectionResponse{}, integrity.InvalidReference(integrity.KindDepartment)
			},
		}

		h := section.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Backend","department_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/sections", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "INVALID_REFERENCE", res["error"].(map[string]any)["code"])
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc := &fakeSectionService{
			CreateFn: func(ctx context.Context, req section.CreateSectionRequest) (section.SectionResponse, error) {
				return section.SectionResponse{}, sectionerrors.ErrSectionNameTaken
			},
		}

		h := section.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Backend","department_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/sections", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestSectionHandler_GetByDepartment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no sections in department", func(t *testing.T) {
		svc := &fakeSectionService{
			GetByDepartmentFn: func(ctx context.Context, departmentID string) ([]section.SectionResponse, error) {
				return nil, sectionerrors.ErrNoSectionsInDepartment
			},
		}

		h := section.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/sections/department/some-id", nil)
		c.Params = gin.Params{{Key: "id", Value: "some-id"}}

		h.GetByDepartment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "EMPTY_RESULT", res["error"].(map[string]any)["code"])
	})
}

func TestSectionHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakeSectionService{
			UpdateFn: func(ctx context.Context, id string, req section.UpdateSectionRequest) (section.SectionResponse, error) {
				return section.SectionResponse{}, sectionerrors.ErrSectionNotFound
			},
		}

		h := section.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Backend","department_id":"` + uuid.New().String() + `"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/sections/missing", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
