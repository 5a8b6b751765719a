package repo

import (
	"context"
	"testing"
	"time"

	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProject(t *testing.T, db *gorm.DB) (*model.Project, []model.Employee) {
	t.Helper()
	ctx := context.Background()

	client := model.Client{Name: "Acme", TaxID: "123456789"}
	require.NoError(t, NewClientRepo(db).Create(ctx, &client))

	employees := []model.Employee{
		{Name: "Rui", TaxID: "111111111", Active: true},
		{Name: "Sara", TaxID: "222222222", Active: true},
	}
	er := NewEmployeeRepo(db)
	for i := range employees {
		require.NoError(t, er.Create(ctx, &employees[i]))
	}

	project := model.Project{
		Name:      "Website",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Budget:    1200,
		Status:    model.ProjectStatusInProgress,
		ClientID:  client.ID,
	}
	require.NoError(t, NewProjectRepo(db).Create(ctx, &project,
		[]uint{employees[0].ID, employees[1].ID}))
	return &project, employees
}

func assignedEmployeeIDs(t *testing.T, db *gorm.DB, projectID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, db.Model(&model.ProjectAssignment{}).
		Where("project_id = ?", projectID).
		Order("employee_id").
		Pluck("employee_id", &ids).Error)
	return ids
}

func TestProjectRepo_Update_AssignmentSet(t *testing.T) {
	ctx := context.Background()

	t.Run("present list replaces wholesale", func(t *testing.T) {
		db := testDB(t)
		project, employees := seedProject(t, db)
		r := NewProjectRepo(db)

		keep := []uint{employees[1].ID}
		require.NoError(t, r.Update(ctx, project, &keep))

		// exactly one row survives, the one for the kept employee
		assert.Equal(t, []uint{employees[1].ID}, assignedEmployeeIDs(t, db, project.ID))
	})

	t.Run("nil leaves assignments untouched", func(t *testing.T) {
		db := testDB(t)
		project, employees := seedProject(t, db)
		r := NewProjectRepo(db)

		require.NoError(t, r.Update(ctx, project, nil))

		assert.Equal(t, []uint{employees[0].ID, employees[1].ID},
			assignedEmployeeIDs(t, db, project.ID))
	})

	t.Run("present empty list clears all", func(t *testing.T) {
		db := testDB(t)
		project, _ := seedProject(t, db)
		r := NewProjectRepo(db)

		require.NoError(t, r.Update(ctx, project, &[]uint{}))

		assert.Empty(t, assignedEmployeeIDs(t, db, project.ID))
	})

	t.Run("update bumps the version", func(t *testing.T) {
		db := testDB(t)
		project, _ := seedProject(t, db)
		r := NewProjectRepo(db)

		require.NoError(t, r.Update(ctx, project, nil))
		assert.Equal(t, 1, project.Version)

		// a second writer still holding version 0 loses
		stale := *project
		stale.Version = 0
		assert.ErrorIs(t, r.Update(ctx, &stale, nil), apperrors.ErrConflict)
	})
}

func TestProjectRepo_Finish(t *testing.T) {
	ctx := context.Background()

	t.Run("marks finished and creates the report", func(t *testing.T) {
		db := testDB(t)
		project, _ := seedProject(t, db)
		r := NewProjectRepo(db)

		reportDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		report, err := r.Finish(ctx, project.ID, reportDate)
		require.NoError(t, err)

		assert.Equal(t, project.ID, report.ProjectID)
		assert.Equal(t, project.Budget, report.Value)
		// 30 days between the seeded start and end dates
		assert.Equal(t, 720, report.TotalHours)

		stored, err := r.Get(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ProjectStatusFinished, stored.Status)

		var n int64
		require.NoError(t, db.Model(&model.Report{}).
			Where("project_id = ?", project.ID).Count(&n).Error)
		assert.EqualValues(t, 1, n)
	})

	t.Run("finishing twice creates a second report", func(t *testing.T) {
		db := testDB(t)
		project, _ := seedProject(t, db)
		r := NewProjectRepo(db)

		when := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		_, err := r.Finish(ctx, project.ID, when)
		require.NoError(t, err)
		_, err = r.Finish(ctx, project.ID, when.AddDate(0, 0, 1))
		require.NoError(t, err)

		var n int64
		require.NoError(t, db.Model(&model.Report{}).
			Where("project_id = ?", project.ID).Count(&n).Error)
		assert.EqualValues(t, 2, n)

		stored, err := r.Get(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ProjectStatusFinished, stored.Status)
	})

	t.Run("unknown project leaves nothing behind", func(t *testing.T) {
		db := testDB(t)
		r := NewProjectRepo(db)

		_, err := r.Finish(ctx, 999, time.Now())
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		var n int64
		require.NoError(t, db.Model(&model.Report{}).Count(&n).Error)
		assert.Zero(t, n)
	})
}
