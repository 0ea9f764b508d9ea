package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TriviaHandler handles trivia-related HTTP requests
type TriviaHandler struct {
	service service.TriviaService
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(service service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		service: service,
	}
}

// GetCategories godoc
// @Summary List all categories
// @Description Returns the id-to-type mapping of every category
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.service.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions, paginated
// @Description Returns one 10-question page plus the total count and the category mapping
// @Tags questions
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	resp, err := h.service.ListQuestions(page)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question by id
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		// Non-integer ids fall outside the route's domain, same as an
		// unknown question.
		return domain.NewNotFoundError("question not found")
	}

	resp, err := h.service.DeleteQuestion(int64(id))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PostQuestions godoc
// @Summary Create a question, or search questions
// @Description A non-empty searchTerm in the body selects the search branch; otherwise the four creation fields are required
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.PostQuestionsRequest true "Creation fields or searchTerm"
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) PostQuestions(c *fiber.Ctx) error {
	var req dto.PostQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewUnprocessableError("invalid request body", err)
	}

	if req.SearchTerm != "" {
		resp, err := h.service.SearchQuestions(req.SearchTerm, c.QueryInt("page", 1))
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.service.CreateQuestion(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestionsByCategory godoc
// @Summary List questions in one category
// @Description Returns the category's questions paginated; total_questions is the global count
// @Tags categories
// @Produce json
// @Param category_id path int true "Category ID"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{category_id}/questions [get]
func (h *TriviaHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("category_id")
	if err != nil {
		return domain.NewNotFoundError("category not found")
	}

	resp, err := h.service.QuestionsByCategory(int64(categoryID), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PostQuizzes godoc
// @Summary Get the next quiz question
// @Description Picks a random unseen question from the requested category; returns success without a question when the quiz is exhausted
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Category descriptor and previously served question ids"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *TriviaHandler) PostQuizzes(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewBadRequestError("invalid request body")
	}

	resp, err := h.service.NextQuizQuestion(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
