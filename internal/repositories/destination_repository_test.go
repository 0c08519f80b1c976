package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaktrip/internal/models/db_models"
)

var destinationColumns = []string{"id", "created_at", "updated_at", "deleted_at", "name", "category", "price", "location", "indoor_outdoor", "description"}

func TestDestinationRepository_ListAll(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDestinationRepository(db)

	id1, id2 := uuid.New(), uuid.New()
	rows := sqlmock.NewRows(destinationColumns).
		AddRow(id1.String(), 1, 1, nil, "Museum Nasional", "Sejarah", "50000", "Jakarta Pusat", "indoor", "Museum").
		AddRow(id2.String(), 2, 2, nil, "Taman Mini", "Rekreasi", "100000", "Jakarta Timur", "outdoor", "")

	mock.ExpectQuery(`SELECT \* FROM "destinations" WHERE "destinations"."deleted_at" IS NULL ORDER BY created_at ASC, id ASC`).
		WillReturnRows(rows)

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, id1, got[0].ID)
	assert.Equal(t, "Museum Nasional", got[0].Name)
	assert.Equal(t, "Jakarta Timur", got[1].Location)

	raw := got[1].ToRaw()
	assert.Equal(t, id2.String(), raw.ID)
	assert.Equal(t, "100000", string(raw.Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationRepository_ListAllError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDestinationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "destinations"`).WillReturnError(errors.New("connection refused"))

	got, err := repo.ListAll(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestDestinationRepository_GetByIDsSkipsForeignIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDestinationRepository(db)

	got, err := repo.GetByIDs(context.Background(), []string{"sample-kuliner-1", ""})
	require.NoError(t, err)
	assert.Empty(t, got)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "destinations" WHERE id IN \(\$1\)`).
		WillReturnRows(sqlmock.NewRows(destinationColumns).
			AddRow(id.String(), 1, 1, nil, "Kopi Kenangan", "Cafe", "30000", "Jakarta Barat", "indoor", ""))

	got, err = repo.GetByIDs(context.Background(), []string{"not-a-uuid", id.String()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kopi Kenangan", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationRepository_Count(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDestinationRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "destinations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestDestinationRepository_CreateBatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDestinationRepository(db)

	assert.NoError(t, repo.CreateBatch(context.Background(), nil))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "destinations"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	rows := []db_models.Destination{
		{Name: "Warung Makan Enak", Category: "Kuliner", Price: "50000"},
		{Name: "Hutan Kota", Category: "Alam", Price: "25000"},
	}
	require.NoError(t, repo.CreateBatch(context.Background(), rows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationRepository_CreateBatchRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDestinationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "destinations"`).WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.CreateBatch(context.Background(), []db_models.Destination{{Name: "Monas"}})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
