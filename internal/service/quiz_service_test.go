package service

import (
	"context"
	"errors"
	"fmt"
	"quiz_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeQuestionStore struct {
	questions  []model.Question
	options    map[int][]model.Option
	correct    map[int][]int
	err        error
	optionsErr error
	correctErr error
}

func (f *fakeQuestionStore) RandomQuestions(ctx context.Context, limit int) ([]model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.questions) {
		limit = len(f.questions)
	}
	return f.questions[:limit], nil
}

func (f *fakeQuestionStore) FindOptionsByQuestionID(ctx context.Context, questionID int) ([]model.Option, error) {
	if f.optionsErr != nil {
		return nil, f.optionsErr
	}
	return f.options[questionID], nil
}

func (f *fakeQuestionStore) FindCorrectOptionIDs(ctx context.Context, questionID int) ([]int, error) {
	if f.correctErr != nil {
		return nil, f.correctErr
	}
	return f.correct[questionID], nil
}

func newFakeStore(questionCount int) *fakeQuestionStore {
	f := &fakeQuestionStore{
		options: make(map[int][]model.Option),
		correct: make(map[int][]int),
	}
	for i := 1; i <= questionCount; i++ {
		multi := i%3 == 1
		f.questions = append(f.questions, model.Question{
			ID:                            i,
			Text:                          fmt.Sprintf("Question %d", i),
			ChapterID:                     i%10 + 1,
			MultipleCorrectAnswersAllowed: multi,
		})
		correctCount := 1
		if multi {
			correctCount = 2
		}
		for j := 0; j < 4; j++ {
			optID := i*10 + j + 1
			f.options[i] = append(f.options[i], model.Option{
				ID:         optID,
				Text:       fmt.Sprintf("Option %d", j+1),
				IsCorrect:  j < correctCount,
				QuestionID: i,
			})
			if j < correctCount {
				f.correct[i] = append(f.correct[i], optID)
			}
		}
	}
	return f
}

func TestStripNumbering(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "numbered array prefix",
			in:   `\[\begin{array}{ll} 12. \ \text{Which caliber is legal?}\end{array}\]`,
			want: `\[\begin{array}{ll}\text{Which caliber is legal?}\end{array}\]`,
		},
		{
			name: "single digit",
			in:   `\[\begin{array}{ll}1. \ A\end{array}\]`,
			want: `\[\begin{array}{ll}A\end{array}\]`,
		},
		{
			name: "plain text untouched",
			in:   "What is the closed season for roe deer?",
			want: "What is the closed season for roe deer?",
		},
		{
			name: "number without wrapper untouched",
			in:   "12. What is the closed season?",
			want: "12. What is the closed season?",
		},
		{
			name: "wrapper without number untouched",
			in:   `\[\begin{array}{ll}\text{No marker here}\end{array}\]`,
			want: `\[\begin{array}{ll}\text{No marker here}\end{array}\]`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, StripNumbering(tc.in))
		})
	}
}

func TestRandomQuestionsShapesPayload(t *testing.T) {
	store := newFakeStore(5)
	svc := NewQuizService(store)

	payloads, err := svc.RandomQuestions(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, payloads, 5)

	for _, p := range payloads {
		require.GreaterOrEqual(t, len(p.Options), 2)
		require.LessOrEqual(t, len(p.Options), 4)
		require.Equal(t, p.ID%3 == 1, p.MultipleCorrectAnswersAllowed)
		for _, o := range p.Options {
			require.NotZero(t, o.ID)
			require.NotEmpty(t, o.Text)
		}
	}
}

func TestRandomQuestionsReturnsAllWhenFewerExist(t *testing.T) {
	store := newFakeStore(3)
	svc := NewQuizService(store)

	payloads, err := svc.RandomQuestions(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, payloads, 3)
}

func TestRandomQuestionsStripsNumbering(t *testing.T) {
	store := &fakeQuestionStore{
		questions: []model.Question{
			{ID: 1, Text: `\[\begin{array}{ll} 7. \ \text{Stem}\end{array}\]`, ChapterID: 2},
		},
		options: map[int][]model.Option{
			1: {{ID: 11, Text: "A", QuestionID: 1}, {ID: 12, Text: "B", IsCorrect: true, QuestionID: 1}},
		},
	}
	svc := NewQuizService(store)

	payloads, err := svc.RandomQuestions(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, `\[\begin{array}{ll}\text{Stem}\end{array}\]`, payloads[0].Text)
}

func TestRandomQuestionsAllOrNothing(t *testing.T) {
	store := newFakeStore(5)
	store.optionsErr = errors.New("connection reset")
	svc := NewQuizService(store)

	payloads, err := svc.RandomQuestions(context.Background(), 5)
	require.Error(t, err)
	require.Nil(t, payloads)

	store = newFakeStore(5)
	store.err = errors.New("connection refused")
	svc = NewQuizService(store)

	payloads, err = svc.RandomQuestions(context.Background(), 5)
	require.Error(t, err)
	require.Nil(t, payloads)
}
