package service

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// AnswerSubmission is one submitted (question, chosen option) pair. The chosen
// option id is a string on the wire and is never validated against existence;
// the checker reports ground truth and leaves the comparison to the caller.
type AnswerSubmission struct {
	QuestionID int    `json:"questionId"`
	AnswerID   string `json:"answerId"`
}

// CheckResult lists the correct option ids for one submitted question.
type CheckResult struct {
	QuestionID     int      `json:"questionId"`
	CorrectAnswers []string `json:"correctAnswers"`
}

type AnswerService struct {
	Questions QuestionStore
}

func NewAnswerService(questions QuestionStore) *AnswerService {
	return &AnswerService{Questions: questions}
}

// CheckAnswers resolves every submission concurrently and joins. Results are
// written by index, so output order always equals submission order; duplicate
// question ids are looked up independently, not deduplicated. One failed
// lookup fails the whole batch.
func (s *AnswerService) CheckAnswers(ctx context.Context, submissions []AnswerSubmission) ([]CheckResult, error) {
	results := make([]CheckResult, len(submissions))
	g, ctx := errgroup.WithContext(ctx)
	for i, sub := range submissions {
		g.Go(func() error {
			ids, err := s.Questions.FindCorrectOptionIDs(ctx, sub.QuestionID)
			if err != nil {
				return err
			}

			answers := make([]string, len(ids))
			for j, id := range ids {
				answers[j] = strconv.Itoa(id)
			}

			results[i] = CheckResult{QuestionID: sub.QuestionID, CorrectAnswers: answers}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
