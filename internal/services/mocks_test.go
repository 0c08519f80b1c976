package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jaktrip/internal/models/db_models"
	"jaktrip/pkg/logger"
)

func init() {
	logger.IsTest = true
}

type mockDestinationRepo struct {
	mock.Mock
}

func (m *mockDestinationRepo) ListAll(ctx context.Context) ([]db_models.Destination, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]db_models.Destination)
	return rows, args.Error(1)
}

func (m *mockDestinationRepo) GetByIDs(ctx context.Context, ids []string) ([]db_models.Destination, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]db_models.Destination)
	return rows, args.Error(1)
}

func (m *mockDestinationRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDestinationRepo) CreateBatch(ctx context.Context, rows []db_models.Destination) error {
	return m.Called(ctx, rows).Error(0)
}

type mockRundownRepo struct {
	mock.Mock
}

func (m *mockRundownRepo) Create(ctx context.Context, rundown *db_models.SavedRundown) error {
	return m.Called(ctx, rundown).Error(0)
}

func (m *mockRundownRepo) ListByUser(ctx context.Context, userID string, page int, pageSize int) ([]db_models.SavedRundown, int64, error) {
	args := m.Called(ctx, userID, page, pageSize)
	rows, _ := args.Get(0).([]db_models.SavedRundown)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *mockRundownRepo) GetByID(ctx context.Context, id string) (*db_models.SavedRundown, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*db_models.SavedRundown)
	return row, args.Error(1)
}

func (m *mockRundownRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	args := m.Called(ctx, id, fields)
	return args.Bool(0), args.Error(1)
}

func (m *mockRundownRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
