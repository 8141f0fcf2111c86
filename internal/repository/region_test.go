package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

func regionRows(regions ...models.Region) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "code", "name", "region_image_url"})
	for _, region := range regions {
		rows.AddRow(region.ID, region.Code, region.Name, region.RegionImageUrl)
	}
	return rows
}

func TestRegionGetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "regions"`).
		WillReturnRows(regionRows(
			models.Region{ID: uuid.New(), Code: "AKL", Name: "Auckland"},
			models.Region{ID: uuid.New(), Code: "WGN", Name: "Wellington"},
		))

	regions, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "AKL", regions[0].Code)
	assert.Equal(t, "Wellington", regions[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "regions" WHERE id = (.+)`).
		WillReturnRows(regionRows(models.Region{ID: id, Code: "NTL", Name: "Northland"}))

	region, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, region.ID)
	assert.Equal(t, "NTL", region.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "regions" WHERE id = (.+)`).
		WillReturnRows(regionRows())

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "regions"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	region := models.Region{Code: "BOP", Name: "Bay of Plenty"}
	require.NoError(t, repo.Create(context.Background(), &region))

	// BeforeCreate assigns the id when the caller did not.
	assert.NotEqual(t, uuid.Nil, region.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionUpdate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "regions" WHERE id = (.+)`).
		WillReturnRows(regionRows())

	// The update must report not-found; it never creates a row silently.
	_, err := repo.Update(context.Background(), uuid.New(), models.Region{Code: "XXX", Name: "Nowhere"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "regions" WHERE id = (.+)`).
		WillReturnRows(regionRows(models.Region{ID: id, Code: "OLD", Name: "Old Name"}))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "regions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), id, models.Region{Code: "NEW", Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "NEW", updated.Code)
	assert.Equal(t, "New Name", updated.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "regions" WHERE id = (.+)`).
		WillReturnRows(regionRows(models.Region{ID: id, Code: "GIS", Name: "Gisborne"}))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "regions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "GIS", deleted.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "regions" WHERE id = (.+)`).
		WillReturnRows(regionRows())

	_, err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
