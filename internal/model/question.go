package model

// Question is one multiple-choice question. The external casing of the quiz
// API differs from the column names, so serialization lives on the service
// payload types, not here.
type Question struct {
	ID                            int    `gorm:"primaryKey;autoIncrement"`
	Text                          string `gorm:"type:text;not null"`
	ChapterID                     int    `gorm:"index;not null"`
	MultipleCorrectAnswersAllowed bool   `gorm:"not null"`
}

func (Question) TableName() string {
	return "questions"
}

// Option belongs to exactly one question. IsCorrect is authoritative and must
// never reach a client except through the answer checker's aggregated ids.
type Option struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Text       string `gorm:"type:text;not null"`
	IsCorrect  bool   `gorm:"not null"`
	QuestionID int    `gorm:"index;not null"`
}

func (Option) TableName() string {
	return "options"
}
