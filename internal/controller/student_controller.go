package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck-api/internal/dto"
	"github.com/quizdeck/quizdeck-api/internal/middleware"
	"github.com/quizdeck/quizdeck-api/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListStudents godoc
// @Summary List the caller's students
// @Description Returns every student visible to the authenticated teacher, newest first.
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StudentResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.List(middleware.ScopeFrom(ctx))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// CreateStudent godoc
// @Summary Create a student
// @Description Creates a student owned by the authenticated teacher. Optional fields are trimmed; blank values become null.
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student body dto.StudentCreateRequest true "Student fields"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse "name or email missing"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("CreateStudent: failed to bind JSON")
		abortWithError(ctx, bindingError(err))
		return
	}

	student, err := c.studentService.Create(middleware.ScopeFrom(ctx), req)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, student)
}
