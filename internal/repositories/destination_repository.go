package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jaktrip/internal/models/db_models"
)

type DestinationRepositoryInterface interface {
	ListAll(ctx context.Context) ([]db_models.Destination, error)
	GetByIDs(ctx context.Context, ids []string) ([]db_models.Destination, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, rows []db_models.Destination) error
}

func NewDestinationRepository(db *gorm.DB) DestinationRepositoryInterface {
	return &DestinationRepository{db: db}
}

type DestinationRepository struct {
	db *gorm.DB
}

// ListAll returns the whole catalog in insertion order.
func (r *DestinationRepository) ListAll(ctx context.Context) ([]db_models.Destination, error) {
	var rows []db_models.Destination
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByIDs skips ids that are not UUIDs; those can never match a row.
func (r *DestinationRepository) GetByIDs(ctx context.Context, ids []string) ([]db_models.Destination, error) {
	valid := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if parsed, err := uuid.Parse(id); err == nil {
			valid = append(valid, parsed)
		}
	}
	if len(valid) == 0 {
		return []db_models.Destination{}, nil
	}

	var rows []db_models.Destination
	if err := r.db.WithContext(ctx).Where("id IN ?", valid).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DestinationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.Destination{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DestinationRepository) CreateBatch(ctx context.Context, rows []db_models.Destination) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}
