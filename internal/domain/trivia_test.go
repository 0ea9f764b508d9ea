package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionValidate(t *testing.T) {
	valid := func() *Question {
		return NewQuestion("Who discovered penicillin?", "Alexander Fleming", 1, 3)
	}

	assert.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"empty question", func(q *Question) { q.Question = "" }},
		{"empty answer", func(q *Question) { q.Answer = "" }},
		{"zero category", func(q *Question) { q.Category = 0 }},
		{"zero difficulty", func(q *Question) { q.Difficulty = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid()
			tt.mutate(q)

			err := q.Validate()

			var domainErr *DomainError
			if assert.ErrorAs(t, err, &domainErr) {
				assert.Equal(t, ErrUnprocessable, domainErr.Code)
			}
		})
	}
}

func TestDomainErrorHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, NewBadRequestError("m").HTTPStatus())
	assert.Equal(t, 404, NewNotFoundError("m").HTTPStatus())
	assert.Equal(t, 422, NewUnprocessableError("m", nil).HTTPStatus())
	assert.Equal(t, 500, NewInternalError("m", nil).HTTPStatus())
}
