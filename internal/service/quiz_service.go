package service

import (
	"context"
	"quiz_backend/internal/model"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
)

// QuestionStore is the slice of the question repository the quiz services
// need; satisfied by repository.QuestionRepository.
type QuestionStore interface {
	RandomQuestions(ctx context.Context, limit int) ([]model.Question, error)
	FindOptionsByQuestionID(ctx context.Context, questionID int) ([]model.Option, error)
	FindCorrectOptionIDs(ctx context.Context, questionID int) ([]int, error)
}

// QuestionPayload is the exact external shape of one question. The correctness
// flag stays server-side; options carry only id and text.
type QuestionPayload struct {
	ID                            int             `json:"Id"`
	Text                          string          `json:"Text"`
	ChapterID                     int             `json:"ChapterId"`
	MultipleCorrectAnswersAllowed bool            `json:"MultipleCorrectAnswersAllowed"`
	Options                       []OptionPayload `json:"options"`
}

type OptionPayload struct {
	ID   int    `json:"Id"`
	Text string `json:"Text"`
}

type QuizService struct {
	Questions QuestionStore
}

func NewQuizService(questions QuestionStore) *QuizService {
	return &QuizService{Questions: questions}
}

// RandomQuestions fetches count questions in random order, then loads every
// question's options concurrently and joins before assembling the payload.
// Any failed lookup fails the whole batch; there are no partial results.
func (s *QuizService) RandomQuestions(ctx context.Context, count int) ([]QuestionPayload, error) {
	questions, err := s.Questions.RandomQuestions(ctx, count)
	if err != nil {
		return nil, err
	}

	payloads := make([]QuestionPayload, len(questions))
	g, ctx := errgroup.WithContext(ctx)
	for i, q := range questions {
		g.Go(func() error {
			options, err := s.Questions.FindOptionsByQuestionID(ctx, q.ID)
			if err != nil {
				return err
			}

			views := make([]OptionPayload, len(options))
			for j, o := range options {
				views[j] = OptionPayload{ID: o.ID, Text: o.Text}
			}

			payloads[i] = QuestionPayload{
				ID:                            q.ID,
				Text:                          StripNumbering(q.Text),
				ChapterID:                     q.ChapterID,
				MultipleCorrectAnswersAllowed: q.MultipleCorrectAnswersAllowed,
				Options:                       views,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return payloads, nil
}

// Some imported question texts carry their position in the source document as
// an enumerated-list marker inside the leading array wrapper, e.g.
// `\[\begin{array}{ll} 12. \ ...`. The marker is dropped, the wrapper kept.
var numberingPattern = regexp.MustCompile(`^\\\[\\begin\{array\}\{ll\}\s*\d+\.\s*\\\s*`)

func StripNumbering(text string) string {
	return strings.TrimSpace(numberingPattern.ReplaceAllString(text, `\[\begin{array}{ll}`))
}
