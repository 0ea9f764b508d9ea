package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexInt64 is an int64 that accepts both JSON numbers and numeric strings.
// The trivia frontend sends category ids as strings in some requests
// (quiz_category.id is "5") and as numbers in others.
type FlexInt64 int64

func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" || string(data) == `""` {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*f = FlexInt64(v)
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexInt64(v)
	return nil
}

// QuestionResponse is the formatted question record returned everywhere
// questions appear in the API
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryListResponse is the response for GET /categories
type CategoryListResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionListResponse is the response for GET /questions. The category
// mapping rides along for client-side display even though it is unrelated
// to the requested page.
type QuestionListResponse struct {
	Success        bool               `json:"success"`
	TotalQuestions int                `json:"total_questions"`
	Categories     map[int64]string   `json:"categories"`
	Questions      []QuestionResponse `json:"questions"`
}

// DeleteQuestionResponse is the response for DELETE /questions/{id}
type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// PostQuestionsRequest is the body of POST /questions. A non-empty
// SearchTerm selects the search branch; otherwise the four creation
// fields are required.
type PostQuestionsRequest struct {
	SearchTerm string    `json:"searchTerm"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Category   FlexInt64 `json:"category"`
	Difficulty FlexInt64 `json:"difficulty"`
}

// CreateQuestionResponse is the create-branch response of POST /questions
type CreateQuestionResponse struct {
	Success        bool   `json:"success"`
	Created        int64  `json:"created"`
	Question       string `json:"question"`
	TotalQuestions int    `json:"total_questions"`
}

// SearchQuestionsResponse is the search-branch response of POST /questions
type SearchQuestionsResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// CategoryQuestionsResponse is the response for
// GET /categories/{category_id}/questions. TotalQuestions is the global
// question count, not the filtered count.
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory int64              `json:"current_category"`
	Questions       []QuestionResponse `json:"questions"`
}

// QuizCategory is the category descriptor in a quiz request. An ID of
// zero means "any category".
type QuizCategory struct {
	ID   FlexInt64 `json:"id"`
	Type string    `json:"type,omitempty"`
}

// QuizRequest is the body of POST /quizzes. Both fields are pointers so
// that a missing or null field can be told apart from an empty one; an
// empty previous-questions list is valid, a missing one is not.
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions *[]int64      `json:"previous_questions"`
}

// QuizResponse is the response for POST /quizzes. Question is omitted
// when the quiz is exhausted.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question,omitempty"`
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
