package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"orgdir/internal/department"
	departmenterrors "orgdir/internal/department/errors"
	"orgdir/internal/integrity"
	"orgdir/internal/shared/apperror"

	departmentMock "orgdir/internal/department/mock"
	integrityMock "orgdir/internal/integrity/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	checker   *integrityMock.MockChecker
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)
	checker := integrityMock.NewMockChecker(ctrl)

	svc := department.NewService(db, repo, checker, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		checker:   checker,
		redisMock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := department.CreateDepartmentRequest{Name: "Engineering", Description: "Builds things"}

		deps.checker.EXPECT().
			AssertUniqueName(ctx, integrity.KindDepartment, "Engineering", "").
			Return(nil)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *department.Department) error {
				assert.Equal(t, "Engineering", d.Name)
				assert.False(t, d.IsDeleted)
				return nil
			})

		deps.redisMock.ExpectDel(department.DepartmentListKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.Equal(t, "Builds things", resp.Description)
		assert.False(t, resp.IsDeleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name returns conflict with existing record", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := department.Department{ID: uuid.New(), Name: "Engineering"}

		deps.checker.EXPECT().
			AssertUniqueName(ctx, integrity.KindDepartment, "Engineering", "").
			Return(integrity.DuplicateName(integrity.KindDepartment, "Engineering"))
		deps.repo.EXPECT().
			FindByName(ctx, "Engineering").
			Return(&existing, nil)

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConflict, appErr.Code)

		details, ok := appErr.Details.(department.DepartmentResponse)
		assert.True(t, ok)
		assert.Equal(t, existing.ID.String(), details.ID)
	})

	t.Run("persist failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.checker.EXPECT().
			AssertUniqueName(ctx, integrity.KindDepartment, "Engineering", "").
			Return(nil)

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("insert failed"))

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []department.DepartmentResponse{
			{ID: "d-1", Name: "Engineering"},
			{ID: "d-2", Name: "Sales"},
		}
		jsonResp, _ := json.Marshal(cached)

		deps.redisMock.ExpectGet(department.DepartmentListKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Engineering", resp[0].Name)
	})

	t.Run("cache miss loads from repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(department.DepartmentListKey).RedisNil()

		depts := []department.Department{
			{ID: uuid.New(), Name: "Engineering"},
		}

		deps.repo.EXPECT().
			FindAll(ctx).
			Return(depts, nil).
			Times(1)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Engineering", resp[0].Name)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(department.DepartmentListKey).RedisNil()

		deps.repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db connection error")).
			Times(1)

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found maps to department error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		dept := department.Department{ID: uuid.New(), Name: "Engineering"}
		deps.repo.EXPECT().
			FindByID(ctx, dept.ID.String()).
			Return(&dept, nil)

		resp, err := deps.service.GetByID(ctx, dept.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, dept.ID.String(), resp.ID)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		req := department.UpdateDepartmentRequest{Name: "Platform", Description: "Renamed"}

		deps.checker.EXPECT().
			AssertUniqueName(ctx, integrity.KindDepartment, "Platform", id.String()).
			Return(nil)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Replace(ctx, id.String(), "Platform", "Renamed").
			Return(int64(1), nil)
		deps.redisMock.ExpectDel(department.DepartmentListKey).SetVal(1)
		deps.repo.EXPECT().
			FindByID(ctx, id.String()).
			Return(&department.Department{ID: id, Name: "Platform", Description: "Renamed"}, nil)

		resp, err := deps.service.Update(ctx, id.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Platform", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("tombstoned or missing record is not updatable", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()

		deps.checker.EXPECT().
			AssertUniqueName(ctx, integrity.KindDepartment, "Platform", id).
			Return(nil)

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Replace(ctx, id, "Platform", "").
			Return(int64(0), nil)

		_, err := deps.service.Update(ctx, id, department.UpdateDepartmentRequest{Name: "Platform"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns tombstoned record", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			SoftDelete(ctx, id.String()).
			Return(int64(1), nil)
		deps.redisMock.ExpectDel(department.DepartmentListKey).SetVal(1)
		deps.repo.EXPECT().
			FindByIDWithDeleted(ctx, id.String()).
			Return(&department.Department{ID: id, Name: "Engineering", IsDeleted: true}, nil)

		resp, err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.True(t, resp.IsDeleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			SoftDelete(ctx, id).
			Return(int64(0), nil)

		_, err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}
