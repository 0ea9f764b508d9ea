package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestGetAllCategories(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"id", "type"}).
		AddRow(int64(1), "Science").
		AddRow(int64(2), "Art").
		AddRow(int64(3), "Geography")

	query := `SELECT id, type FROM categories ORDER BY id ASC`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

	result, err := repo.GetAllCategories()

	assert.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, "Science", result[0].Type)
	assert.Equal(t, "Geography", result[2].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCategories_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"id", "type"})

	query := `SELECT id, type FROM categories ORDER BY id ASC`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

	result, err := repo.GetAllCategories()

	assert.NoError(t, err)
	assert.Len(t, result, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}
