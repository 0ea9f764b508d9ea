package repository

import (
	"errors"
	"regexp"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func questionRows(questions ...*domain.Question) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "question", "answer", "category", "difficulty"})
	for _, q := range questions {
		rows.AddRow(q.ID, q.Question, q.Answer, q.Category, q.Difficulty)
	}
	return rows
}

func TestGetAllQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	expected := []*domain.Question{
		{ID: 1, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{ID: 2, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
	}

	query := `SELECT id, question, answer, category, difficulty FROM questions ORDER BY id ASC`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(questionRows(expected...))

	result, err := repo.GetAllQuestions()

	assert.NoError(t, err)
	assert.Len(t, result, len(expected))
	for i, q := range result {
		assert.Equal(t, expected[i].ID, q.ID)
		assert.Equal(t, expected[i].Question, q.Question)
		assert.Equal(t, expected[i].Answer, q.Answer)
		assert.Equal(t, expected[i].Category, q.Category)
		assert.Equal(t, expected[i].Difficulty, q.Difficulty)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	expected := &domain.Question{ID: 5, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3}

	query := `SELECT id, question, answer, category, difficulty FROM questions WHERE id = $1`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(5)).WillReturnRows(questionRows(expected))

	result, err := repo.GetQuestionByID(5)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, expected.ID, result.ID)
	assert.Equal(t, expected.Question, result.Question)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	query := `SELECT id, question, answer, category, difficulty FROM questions WHERE id = $1`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(999)).WillReturnRows(questionRows())

	result, err := repo.GetQuestionByID(999)

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionsByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	expected := []*domain.Question{
		{ID: 10, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
	}

	query := `SELECT id, question, answer, category, difficulty FROM questions WHERE category = $1 ORDER BY id ASC`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(6)).WillReturnRows(questionRows(expected...))

	result, err := repo.GetQuestionsByCategory(6)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, int64(6), result[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuestionsByCategory_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	query := `SELECT id, question, answer, category, difficulty FROM questions WHERE category = $1 ORDER BY id ASC`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(int64(42)).WillReturnRows(questionRows())

	result, err := repo.GetQuestionsByCategory(42)

	assert.NoError(t, err)
	assert.Len(t, result, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	expected := []*domain.Question{
		{ID: 3, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
	}

	query := `SELECT id, question, answer, category, difficulty FROM questions WHERE question ILIKE $1 ORDER BY id ASC`
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("%autobiography%").WillReturnRows(questionRows(expected...))

	result, err := repo.SearchQuestions("autobiography")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, expected[0].ID, result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	question := domain.NewQuestion("What is the heaviest organ in the human body?", "The Liver", 1, 4)

	query := `INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id`
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(question.Question, question.Answer, question.Category, question.Difficulty).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(24)))

	err := repo.SaveQuestion(question)

	assert.NoError(t, err)
	assert.Equal(t, int64(24), question.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuestion_StoreError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	question := domain.NewQuestion("q", "a", 1, 1)

	query := `INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id`
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(question.Question, question.Answer, question.Category, question.Difficulty).
		WillReturnError(errors.New("constraint violation"))

	err := repo.SaveQuestion(question)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestion(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	query := `DELETE FROM questions WHERE id = $1`
	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteQuestion(7)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuestion_NoRows(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	query := `DELETE FROM questions WHERE id = $1`
	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(int64(999)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteQuestion(999)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	query := `SELECT COUNT(*) FROM questions`
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(19))

	count, err := repo.CountQuestions()

	assert.NoError(t, err)
	assert.Equal(t, 19, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
