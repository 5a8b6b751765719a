package repo

import (
	"errors"

	"github.com/izabelforte/ProjetoPCRH/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// optimisticUpdate applies updates to the row with the given id only if its
// version still matches. Zero rows affected means the row is gone (NotFound)
// or someone else wrote first (Conflict); the existence re-check decides.
func optimisticUpdate(tx *gorm.DB, m interface{}, id uint, version int, updates map[string]interface{}) error {
	updates["version"] = gorm.Expr("version + 1")
	res := tx.Model(m).Where("id = ? AND version = ?", id, version).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := tx.Model(m).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}
	return nil
}

// translateNotFound maps gorm's sentinel onto the application taxonomy.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
