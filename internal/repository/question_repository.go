package repository

import (
	"database/sql"
	"fmt"
	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// GetAllQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetAllQuestions() ([]*domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT id, question, answer, category, difficulty FROM questions ORDER BY id ASC`
	if err := a.db.Select(&modelQuestions, query); err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	return toDomainQuestions(modelQuestions), nil
}

// GetQuestionByID implements domain.QuestionRepository. Returns (nil, nil)
// when no question has the given id so callers can distinguish absence
// from a store failure.
func (a *QuestionDatabaseAdapter) GetQuestionByID(id int64) (*domain.Question, error) {
	var modelQuestion models.Question
	query := `SELECT id, question, answer, category, difficulty FROM questions WHERE id = $1`
	err := a.db.Get(&modelQuestion, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %d: %w", id, err)
	}
	return toDomainQuestion(&modelQuestion), nil
}

// GetQuestionsByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionsByCategory(categoryID int64) ([]*domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT id, question, answer, category, difficulty FROM questions WHERE category = $1 ORDER BY id ASC`
	if err := a.db.Select(&modelQuestions, query, categoryID); err != nil {
		return nil, fmt.Errorf("failed to query questions for category %d: %w", categoryID, err)
	}
	return toDomainQuestions(modelQuestions), nil
}

// SearchQuestions implements domain.QuestionRepository using a
// case-insensitive substring match on the question text.
func (a *QuestionDatabaseAdapter) SearchQuestions(term string) ([]*domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT id, question, answer, category, difficulty FROM questions WHERE question ILIKE $1 ORDER BY id ASC`
	if err := a.db.Select(&modelQuestions, query, "%"+term+"%"); err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return toDomainQuestions(modelQuestions), nil
}

// SaveQuestion implements domain.QuestionRepository. The id is generated
// by the database and written back onto the domain question.
func (a *QuestionDatabaseAdapter) SaveQuestion(question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	query := `INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := a.db.QueryRow(query,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.ID = id
	return nil
}

// DeleteQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestion(id int64) error {
	query := `DELETE FROM questions WHERE id = $1`
	result, err := a.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("question with ID %d not found", id)
	}
	return nil
}

// CountQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CountQuestions() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM questions`
	if err := a.db.Get(&count, query); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// Helper functions for model conversion
func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Category:   m.Category,
		Difficulty: m.Difficulty,
	}
}

func toDomainQuestions(ms []models.Question) []*domain.Question {
	questions := make([]*domain.Question, len(ms))
	for i := range ms {
		questions[i] = toDomainQuestion(&ms[i])
	}
	return questions
}
