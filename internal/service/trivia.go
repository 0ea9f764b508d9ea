package service

import (
	"math/rand"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// QuestionsPerPage is the fixed page size for every paginated listing
const QuestionsPerPage = 10

// TriviaService defines the operations behind the trivia API
type TriviaService interface {
	ListCategories() (*dto.CategoryListResponse, error)
	ListQuestions(page int) (*dto.QuestionListResponse, error)
	DeleteQuestion(id int64) (*dto.DeleteQuestionResponse, error)
	CreateQuestion(req *dto.PostQuestionsRequest) (*dto.CreateQuestionResponse, error)
	SearchQuestions(term string, page int) (*dto.SearchQuestionsResponse, error)
	QuestionsByCategory(categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)
	NextQuizQuestion(req *dto.QuizRequest) (*dto.QuizResponse, error)
}

// triviaService implements TriviaService
type triviaService struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
}

// NewTriviaService creates a new instance of triviaService
func NewTriviaService(questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository) TriviaService {
	return &triviaService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// paginate returns the fixed-size window for the requested page. Pages
// before 1 or past the end yield an empty slice, never an error; callers
// decide whether an empty page is a not-found condition.
func paginate(page int, questions []dto.QuestionResponse) []dto.QuestionResponse {
	start := (page - 1) * QuestionsPerPage
	if start < 0 || start >= len(questions) {
		return []dto.QuestionResponse{}
	}
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

func formatQuestion(q *domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func formatQuestions(questions []*domain.Question) []dto.QuestionResponse {
	formatted := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		formatted[i] = formatQuestion(q)
	}
	return formatted
}

func (s *triviaService) categoryMap() (map[int64]string, error) {
	categories, err := s.categoryRepo.GetAllCategories()
	if err != nil {
		return nil, domain.NewInternalError("Failed to get categories", err)
	}
	mapping := make(map[int64]string, len(categories))
	for _, c := range categories {
		mapping[c.ID] = c.Type
	}
	return mapping, nil
}

// ListCategories implements TriviaService. An empty mapping is never a
// success; zero categories means the store was not seeded.
func (s *triviaService) ListCategories() (*dto.CategoryListResponse, error) {
	categories, err := s.categoryMap()
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, domain.NewNotFoundError("no categories found")
	}
	return &dto.CategoryListResponse{
		Success:    true,
		Categories: categories,
	}, nil
}

// ListQuestions implements TriviaService
func (s *triviaService) ListQuestions(page int) (*dto.QuestionListResponse, error) {
	questions, err := s.questionRepo.GetAllQuestions()
	if err != nil {
		return nil, domain.NewInternalError("Failed to get questions", err)
	}

	totalQuestions := len(questions)
	currentQuestions := paginate(page, formatQuestions(questions))
	if len(currentQuestions) == 0 {
		return nil, domain.NewNotFoundError("no questions on requested page")
	}

	categories, err := s.categoryMap()
	if err != nil {
		return nil, err
	}

	return &dto.QuestionListResponse{
		Success:        true,
		TotalQuestions: totalQuestions,
		Categories:     categories,
		Questions:      currentQuestions,
	}, nil
}

// DeleteQuestion implements TriviaService. A failed lookup is NotFound; a
// failure during the delete itself is Unprocessable.
func (s *triviaService) DeleteQuestion(id int64) (*dto.DeleteQuestionResponse, error) {
	question, err := s.questionRepo.GetQuestionByID(id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewNotFoundError("question not found")
	}

	if err := s.questionRepo.DeleteQuestion(id); err != nil {
		return nil, domain.NewUnprocessableError("Failed to delete question", err)
	}

	return &dto.DeleteQuestionResponse{
		Success: true,
		Deleted: id,
	}, nil
}

// CreateQuestion implements TriviaService
func (s *triviaService) CreateQuestion(req *dto.PostQuestionsRequest) (*dto.CreateQuestionResponse, error) {
	question := domain.NewQuestion(req.Question, req.Answer, int64(req.Category), int(req.Difficulty))
	if err := question.Validate(); err != nil {
		return nil, err
	}

	if err := s.questionRepo.SaveQuestion(question); err != nil {
		return nil, domain.NewUnprocessableError("Failed to save question", err)
	}

	totalQuestions, err := s.questionRepo.CountQuestions()
	if err != nil {
		return nil, domain.NewUnprocessableError("Failed to count questions", err)
	}

	return &dto.CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		Question:       question.Question,
		TotalQuestions: totalQuestions,
	}, nil
}

// SearchQuestions implements TriviaService. NotFound fires only on zero
// matches; an out-of-range page over a nonzero match set is an empty 200.
func (s *triviaService) SearchQuestions(term string, page int) (*dto.SearchQuestionsResponse, error) {
	questions, err := s.questionRepo.SearchQuestions(term)
	if err != nil {
		return nil, domain.NewInternalError("Failed to search questions", err)
	}

	totalQuestions := len(questions)
	if totalQuestions == 0 {
		return nil, domain.NewNotFoundError("no questions match search term")
	}

	return &dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      paginate(page, formatQuestions(questions)),
		TotalQuestions: totalQuestions,
	}, nil
}

// QuestionsByCategory implements TriviaService. TotalQuestions reports
// the global count across all categories, which the frontend's pager
// expects; a nonexistent category id and a category with no questions
// are indistinguishable here.
func (s *triviaService) QuestionsByCategory(categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	questions, err := s.questionRepo.GetQuestionsByCategory(categoryID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get questions for category", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("no questions found for category")
	}

	total, err := s.questionRepo.CountQuestions()
	if err != nil {
		return nil, domain.NewInternalError("Failed to count questions", err)
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		TotalQuestions:  total,
		CurrentCategory: categoryID,
		Questions:       paginate(page, formatQuestions(questions)),
	}, nil
}

// NextQuizQuestion implements TriviaService. Candidates are loaded for
// the requested category (or all categories for a zero id), previously
// served questions are removed, and one of the remainder is picked at
// random. When the candidate count equals the previous-questions count
// the quiz is treated as exhausted and a success without a question is
// returned; this count comparison is what the shipped frontend keys its
// end-of-game screen on.
func (s *triviaService) NextQuizQuestion(req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		return nil, domain.NewBadRequestError("quiz_category and previous_questions are required")
	}

	var candidates []*domain.Question
	var err error
	if req.QuizCategory.ID == 0 {
		candidates, err = s.questionRepo.GetAllQuestions()
	} else {
		candidates, err = s.questionRepo.GetQuestionsByCategory(int64(req.QuizCategory.ID))
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz candidates", err)
	}

	previous := *req.PreviousQuestions
	if len(candidates) == len(previous) {
		return &dto.QuizResponse{Success: true}, nil
	}

	// Remove the first candidate matching each previous id.
	for _, prev := range previous {
		for i, candidate := range candidates {
			if candidate.ID == prev {
				candidates = append(candidates[:i], candidates[i+1:]...)
				break
			}
		}
	}

	// The count check above does not catch mismatched sets: previous ids
	// outside the candidate set can leave nothing to pick from.
	if len(candidates) == 0 {
		return nil, domain.NewInternalError("no quiz candidates remain after exclusion", nil)
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	selected := formatQuestion(candidates[rand.Intn(len(candidates))])

	return &dto.QuizResponse{
		Success:  true,
		Question: &selected,
	}, nil
}
