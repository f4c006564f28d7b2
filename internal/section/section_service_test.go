package section_test

import (
	"context"
	"database/sql"
	"testing"

	"orgdir/internal/integrity"
	"orgdir/internal/section"
	sectionerrors "orgdir/internal/section/errors"

	integrityMock "orgdir/internal/integrity/mock"
	sectionMock "orgdir/internal/section/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service section.Service
	repo    *sectionMock.MockRepository
	checker *integrityMock.MockChecker
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := sectionMock.NewMockRepository(ctrl)
	checker := integrityMock.NewMockChecker(ctrl)

	svc := section.NewService(db, repo, checker)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		checker: checker,
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

func TestSectionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.New()
		req := section.CreateSectionRequest{Name: "Backend", DepartmentID: deptID.String()}

		deps.checker.EXPECT().
			AssertExists(ctx, integrity.KindDepartment, deptID.String()).
			Return(nil)
		deps.checker.EXPECT().
			AssertUniqueName(ctx, integrity.KindSection, "Backend", "").
			Return(nil)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, sec *section.Section) error {
				assert.Equal(t, "Backend", sec.Name)
				assert.Equal(t, deptID, sec.DepartmentID)
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Backend", resp.Name)
		assert.Equal(t, deptID.String(), resp.DepartmentID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown parent department rejected before persist", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.New().String()

		deps.checker.EXPECT().
			AssertExists(ctx, integrity.KindDepartment, deptID).
			Return(integrity.InvalidReference(integrity.KindDepartment))
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, section.CreateSectionRequest{
			Name:         "Backend",
			DepartmentID: deptID,
		})

		assert.Error(t, err)
	})

	t.Run("duplicate name rejected across departments", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.New().String()

		deps.checker.EXPECT().
			AssertExists(ctx, integrity.KindDepartment, deptID).
			Return(nil)
		deps.checker.EXPECT().
			AssertUniqueName(ctx, integrity.KindSection, "Backend", "").
			Return(integrity.DuplicateName(integrity.KindSection, "Backend"))

		_, err := deps.service.Create(ctx, section.CreateSectionRequest{
			Name:         "Backend",
			DepartmentID: deptID,
		})

		assert.Error(t, err)
	})
}

func TestSectionService_GetByDepartment(t *testing.T) {
	ctx := context.Background()

	t.Run("empty result reports empty filter error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.New().String()

		deps.repo.EXPECT().
			FindByDepartment(ctx, deptID).
			Return([]section.Section{}, nil)

		_, err := deps.service.GetByDepartment(ctx, deptID)

		assert.ErrorIs(t, err, sectionerrors.ErrNoSectionsInDepartment)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deptID := uuid.New()
		secs := []section.Section{
			{ID: uuid.New(), Name: "Backend", DepartmentID: deptID},
		}

		deps.repo.EXPECT().
			FindByDepartment(ctx, deptID.String()).
			Return(secs, nil)

		resp, err := deps.service.GetByDepartment(ctx, deptID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}

func TestSectionService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("tombstoned section is not updatable", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deptID := uuid.New().String()

		deps.checker.EXPECT().
			AssertExists(ctx, integrity.KindDepartment, deptID).
			Return(nil)
		deps.checker.EXPECT().
			AssertUniqueName(ctx, integrity.KindSection, "Backend", id).
			Return(nil)

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Replace(ctx, id, "Backend", deptID).
			Return(int64(0), nil)

		_, err := deps.service.Update(ctx, id, section.UpdateSectionRequest{
			Name:         "Backend",
			DepartmentID: deptID,
		})

		assert.ErrorIs(t, err, sectionerrors.ErrSectionNotFound)
	})
}

func TestSectionService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns tombstoned record", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			SoftDelete(ctx, id.String()).
			Return(int64(1), nil)
		deps.repo.EXPECT().
			FindByIDWithDeleted(ctx, id.String()).
			Return(&section.Section{ID: id, Name: "Backend", IsDeleted: true}, nil)

		resp, err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.True(t, resp.IsDeleted)
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

		assert.ErrorIs(t, err, sectionerrors.ErrSectionNotFound)
	})
}

func TestSectionService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New().String()
		deps.repo.EXPECT().
			FindByID(ctx, id).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, sectionerrors.ErrSectionNotFound)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, sectionerrors.ErrInvalidSectionID)
	})

	t.Run("malformed department filter id is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByDepartment(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, sectionerrors.ErrInvalidDepartmentID)
	})
}
