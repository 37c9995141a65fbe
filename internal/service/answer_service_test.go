package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckAnswersPreservesOrder(t *testing.T) {
	store := newFakeStore(6)
	svc := NewAnswerService(store)

	subs := []AnswerSubmission{
		{QuestionID: 4, AnswerID: "41"},
		{QuestionID: 1, AnswerID: "999"},
		{QuestionID: 4, AnswerID: "42"},
		{QuestionID: 2, AnswerID: "21"},
	}

	results, err := svc.CheckAnswers(context.Background(), subs)
	require.NoError(t, err)
	require.Len(t, results, len(subs))

	for i, r := range results {
		require.Equal(t, subs[i].QuestionID, r.QuestionID)
	}

	// The duplicated question is computed independently but identically.
	require.Equal(t, results[0].CorrectAnswers, results[2].CorrectAnswers)
}

func TestCheckAnswersReturnsGroundTruthIDs(t *testing.T) {
	store := newFakeStore(3)
	svc := NewAnswerService(store)

	// Question 1 allows multiple correct answers: options 11 and 12.
	results, err := svc.CheckAnswers(context.Background(), []AnswerSubmission{
		{QuestionID: 1, AnswerID: "13"},
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"11", "12"}, results[0].CorrectAnswers)

	// Question 2 has one correct option.
	results, err = svc.CheckAnswers(context.Background(), []AnswerSubmission{
		{QuestionID: 2, AnswerID: "21"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"21"}, results[0].CorrectAnswers)
}

func TestCheckAnswersIdempotent(t *testing.T) {
	store := newFakeStore(6)
	svc := NewAnswerService(store)

	subs := []AnswerSubmission{
		{QuestionID: 1, AnswerID: "11"},
		{QuestionID: 2, AnswerID: "22"},
	}

	first, err := svc.CheckAnswers(context.Background(), subs)
	require.NoError(t, err)
	second, err := svc.CheckAnswers(context.Background(), subs)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		require.ElementsMatch(t, first[i].CorrectAnswers, second[i].CorrectAnswers)
	}
}

func TestCheckAnswersUnknownQuestion(t *testing.T) {
	store := newFakeStore(2)
	svc := NewAnswerService(store)

	results, err := svc.CheckAnswers(context.Background(), []AnswerSubmission{
		{QuestionID: 404, AnswerID: "1"},
	})
	require.NoError(t, err)
	require.Equal(t, 404, results[0].QuestionID)
	require.Empty(t, results[0].CorrectAnswers)
}

func TestCheckAnswersAllOrNothing(t *testing.T) {
	store := newFakeStore(3)
	store.correctErr = errors.New("query timeout")
	svc := NewAnswerService(store)

	results, err := svc.CheckAnswers(context.Background(), []AnswerSubmission{
		{QuestionID: 1, AnswerID: "11"},
		{QuestionID: 2, AnswerID: "21"},
	})
	require.Error(t, err)
	require.Nil(t, results)
}
