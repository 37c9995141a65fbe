package repository

import (
	"context"
	"quiz_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// RandomQuestions returns up to limit questions in uniformly random order.
// Every call reshuffles; there is no seed and no caching.
func (r *QuestionRepository) RandomQuestions(ctx context.Context, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.WithContext(ctx).Order(r.randomExpr()).Limit(limit).Find(&questions).Error
	return questions, err
}

// FindOptionsByQuestionID returns all options of one question, correctness
// flag included; callers shape the external view.
func (r *QuestionRepository) FindOptionsByQuestionID(ctx context.Context, questionID int) ([]model.Option, error) {
	var options []model.Option
	err := r.DB.WithContext(ctx).Where("question_id = ?", questionID).Find(&options).Error
	return options, err
}

// FindCorrectOptionIDs returns the ids of the options flagged correct for one
// question. An unknown question id yields an empty slice, not an error.
func (r *QuestionRepository) FindCorrectOptionIDs(ctx context.Context, questionID int) ([]int, error) {
	var ids []int
	err := r.DB.WithContext(ctx).
		Model(&model.Option{}).
		Where("question_id = ? AND is_correct = ?", questionID, true).
		Pluck("id", &ids).Error
	return ids, err
}

// MySQL spells random ordering RAND(); sqlite (used in tests) spells it RANDOM().
func (r *QuestionRepository) randomExpr() string {
	if r.DB.Dialector.Name() == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}
