package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"quiz_backend/internal/model"
	"quiz_backend/pkg/database"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "quiz.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedQuestions(t *testing.T, db *gorm.DB, count int) {
	t.Helper()

	for i := 1; i <= count; i++ {
		multi := i%3 == 1
		require.NoError(t, db.Create(&model.Question{
			ID:                            i,
			Text:                          fmt.Sprintf("Question %d", i),
			ChapterID:                     i%10 + 1,
			MultipleCorrectAnswersAllowed: multi,
		}).Error)

		correctCount := 1
		if multi {
			correctCount = 2
		}
		for j := 0; j < 4; j++ {
			require.NoError(t, db.Create(&model.Option{
				ID:         i*10 + j + 1,
				Text:       fmt.Sprintf("Option %d", j+1),
				IsCorrect:  j < correctCount,
				QuestionID: i,
			}).Error)
		}
	}
}

func TestRandomQuestionsReturnsDistinctRows(t *testing.T) {
	db := openTestDB(t)
	seedQuestions(t, db, 10)
	repo := NewQuestionRepository(db)

	questions, err := repo.RandomQuestions(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, questions, 5)

	seen := make(map[int]bool)
	for _, q := range questions {
		require.False(t, seen[q.ID], "question %d returned twice", q.ID)
		seen[q.ID] = true
	}
}

func TestRandomQuestionsCappedByCorpusSize(t *testing.T) {
	db := openTestDB(t)
	seedQuestions(t, db, 4)
	repo := NewQuestionRepository(db)

	questions, err := repo.RandomQuestions(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, questions, 4)
}

func TestFindOptionsByQuestionID(t *testing.T) {
	db := openTestDB(t)
	seedQuestions(t, db, 3)
	repo := NewQuestionRepository(db)

	options, err := repo.FindOptionsByQuestionID(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, options, 4)
	for _, o := range options {
		require.Equal(t, 2, o.QuestionID)
	}
}

func TestFindCorrectOptionIDs(t *testing.T) {
	db := openTestDB(t)
	seedQuestions(t, db, 3)
	repo := NewQuestionRepository(db)

	// Question 1 is multi-correct: options 11 and 12.
	ids, err := repo.FindCorrectOptionIDs(context.Background(), 1)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{11, 12}, ids)

	// Question 2 has a single correct option.
	ids, err = repo.FindCorrectOptionIDs(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, []int{21}, ids)
}

func TestFindCorrectOptionIDsUnknownQuestion(t *testing.T) {
	db := openTestDB(t)
	seedQuestions(t, db, 2)
	repo := NewQuestionRepository(db)

	ids, err := repo.FindCorrectOptionIDs(context.Background(), 999)
	require.NoError(t, err)
	require.Empty(t, ids)
}
