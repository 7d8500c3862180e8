package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck-api/internal/dto"
	"github.com/quizdeck/quizdeck-api/internal/middleware"
	"github.com/quizdeck/quizdeck-api/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// ListQuizzes godoc
// @Summary List the caller's quizzes
// @Description Returns every quiz visible to the authenticated teacher, newest first.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuizResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.List(middleware.ScopeFrom(ctx))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary Get one quiz
// @Description Returns a single quiz by id. Rows owned by other teachers are indistinguishable from missing ones.
// @Tags Quizzes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.quizService.Get(middleware.ScopeFrom(ctx), ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Creates a quiz owned by the authenticated teacher. A non-array questions value is replaced with an empty array.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.QuizCreateRequest true "Quiz fields"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "name is required"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("CreateQuiz: failed to bind JSON")
		abortWithError(ctx, bindingError(err))
		return
	}

	quiz, err := c.quizService.Create(middleware.ScopeFrom(ctx), req)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// UpdateQuiz godoc
// @Summary Partially update a quiz
// @Description Applies only the fields present in the body. An empty recognized-field set is rejected.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Param quiz body dto.QuizCreateRequest true "Any subset of mutable quiz fields"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "No fields to update"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id} [patch]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	var req dto.QuizUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("UpdateQuiz: failed to bind JSON")
		abortWithError(ctx, bindingError(err))
		return
	}

	quiz, err := c.quizService.Update(middleware.ScopeFrom(ctx), ctx.Param("id"), req)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Deletes a quiz within the caller's visible scope. Repeating the delete yields 404 again.
// @Tags Quizzes
// @Security BearerAuth
// @Param id path string true "Quiz ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	if err := c.quizService.Delete(middleware.ScopeFrom(ctx), ctx.Param("id")); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
