package repository

import (
	"fmt"
	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.DB
type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all categories ordered by id
func (a *CategoryDatabaseAdapter) GetAllCategories() ([]*domain.Category, error) {
	var modelCategories []models.Category
	query := `SELECT id, type FROM categories ORDER BY id ASC`
	if err := a.db.Select(&modelCategories, query); err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories := make([]*domain.Category, len(modelCategories))
	for i, c := range modelCategories {
		categories[i] = &domain.Category{ID: c.ID, Type: c.Type}
	}
	return categories, nil
}
