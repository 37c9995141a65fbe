package controller

import (
	"net/http"
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService   *service.QuizService
	AnswerService *service.AnswerService
	QuestionCount int
}

func NewQuizController(quizService *service.QuizService, answerService *service.AnswerService, questionCount int) *QuizController {
	return &QuizController{
		QuizService:   quizService,
		AnswerService: answerService,
		QuestionCount: questionCount,
	}
}

// GetQuestions returns a fresh random batch as a bare JSON array; the client
// contract predates this service and has no response envelope.
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	questions, err := c.QuizService.RandomQuestions(ctx.Request.Context(), c.QuestionCount)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

// CheckAnswers grades a submitted batch. The response is one entry per
// submission, in submission order.
func (c *QuizController) CheckAnswers(ctx *gin.Context) {
	var req struct {
		Answers []service.AnswerSubmission `json:"answers"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid request body")
		return
	}

	results, err := c.AnswerService.CheckAnswers(ctx.Request.Context(), req.Answers)
	if err != nil {
		util.LogServerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}
