package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jaktrip/internal/infra"
	"jaktrip/internal/models/db_models"
)

type RundownRepositoryInterface interface {
	Create(ctx context.Context, rundown *db_models.SavedRundown) error
	ListByUser(ctx context.Context, userID string, page int, pageSize int) ([]db_models.SavedRundown, int64, error)
	GetByID(ctx context.Context, id string) (*db_models.SavedRundown, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (bool, error)
	SoftDelete(ctx context.Context, id string) (bool, error)
}

func NewRundownRepository(db *gorm.DB) RundownRepositoryInterface {
	return &RundownRepository{db: db}
}

type RundownRepository struct {
	db *gorm.DB
}

// Create inserts the rundown and its items in one transaction.
func (r *RundownRepository) Create(ctx context.Context, rundown *db_models.SavedRundown) error {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	err := tx.Create(rundown).Error
	return infra.ReleaseTransaction(tx, err)
}

// ListByUser pages through a user's rundowns, newest first. Items are not loaded.
func (r *RundownRepository) ListByUser(ctx context.Context, userID string, page int, pageSize int) ([]db_models.SavedRundown, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Model(&db_models.SavedRundown{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rundowns []db_models.SavedRundown
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&rundowns).Error
	if err != nil {
		return nil, 0, err
	}
	return rundowns, total, nil
}

func (r *RundownRepository) GetByID(ctx context.Context, id string) (*db_models.SavedRundown, error) {
	var rundown db_models.SavedRundown
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_order ASC")
		}).
		Where("id = ?", id).
		First(&rundown).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rundown, nil
}

// UpdateFields reports false when no live row has the id.
func (r *RundownRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&db_models.SavedRundown{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *RundownRepository) SoftDelete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.SavedRundown{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
