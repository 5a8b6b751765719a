package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB opens a throwaway sqlite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Client{},
		&model.Employee{},
		&model.Project{},
		&model.ProjectAssignment{},
		&model.Contract{},
		&model.Invoice{},
		&model.Report{},
		&model.User{},
	))
	return db
}

func TestOptimisticUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success bumps the stored version", func(t *testing.T) {
		db := testDB(t)
		r := NewClientRepo(db)
		c := model.Client{Name: "Acme", TaxID: "123456789"}
		require.NoError(t, r.Create(ctx, &c))

		c.Name = "Acme Lda"
		require.NoError(t, r.Update(ctx, &c))
		assert.Equal(t, 1, c.Version)

		stored, err := r.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Lda", stored.Name)
		assert.Equal(t, 1, stored.Version)
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		db := testDB(t)
		r := NewClientRepo(db)
		c := model.Client{Name: "Acme", TaxID: "123456789"}
		require.NoError(t, r.Create(ctx, &c))
		require.NoError(t, r.Update(ctx, &c)) // version is now 1

		stale := model.Client{ID: c.ID, Name: "Acme SA", TaxID: "123456789", Version: 0}
		err := r.Update(ctx, &stale)
		assert.ErrorIs(t, err, apperrors.ErrConflict)

		stored, err := r.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Lda", stored.Name)
	})

	t.Run("absent row is not found, not a conflict", func(t *testing.T) {
		db := testDB(t)
		r := NewClientRepo(db)
		gone := model.Client{ID: 999, Name: "Ghost", TaxID: "000000000"}
		assert.ErrorIs(t, r.Update(ctx, &gone), apperrors.ErrNotFound)
	})
}

func TestDelete_AbsentRowIsNoOp(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	const absent = uint(12345)

	tests := []struct {
		name string
		del  func() error
	}{
		{"client", func() error { return NewClientRepo(db).Delete(ctx, absent) }},
		{"employee", func() error { return NewEmployeeRepo(db).Delete(ctx, absent) }},
		{"project", func() error { return NewProjectRepo(db).Delete(ctx, absent) }},
		{"contract", func() error { return NewContractRepo(db).Delete(ctx, absent) }},
		{"invoice", func() error { return NewInvoiceRepo(db).Delete(ctx, absent) }},
		{"report", func() error { return NewReportRepo(db).Delete(ctx, absent) }},
		{"user", func() error { return NewUserRepo(db).Delete(ctx, absent) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.del())
			// deleting twice is just as silent
			assert.NoError(t, tt.del())
		})
	}
}
