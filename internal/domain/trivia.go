package domain

// Question represents a trivia question
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// NewQuestion creates a new Question instance
func NewQuestion(question, answer string, category int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
}

// Validate checks the four fields required to insert a question. The
// category id itself is not validated against the categories table;
// referential integrity is not enforced at this layer.
func (q *Question) Validate() error {
	if q.Question == "" {
		return NewUnprocessableError("question is required", nil)
	}
	if q.Answer == "" {
		return NewUnprocessableError("answer is required", nil)
	}
	if q.Category == 0 {
		return NewUnprocessableError("category is required", nil)
	}
	if q.Difficulty == 0 {
		return NewUnprocessableError("difficulty is required", nil)
	}
	return nil
}

// Category represents a named grouping of questions. Categories are
// read-only from the API's perspective; only the seeder writes them.
type Category struct {
	ID   int64
	Type string
}

// QuestionRepository defines persistence operations for questions
type QuestionRepository interface {
	GetAllQuestions() ([]*Question, error)
	GetQuestionByID(id int64) (*Question, error)
	GetQuestionsByCategory(categoryID int64) ([]*Question, error)
	SearchQuestions(term string) ([]*Question, error)
	SaveQuestion(question *Question) error
	DeleteQuestion(id int64) error
	CountQuestions() (int, error)
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	GetAllCategories() ([]*Category, error)
}
