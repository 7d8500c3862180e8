package service

import (
	"strings"

	"github.com/jinzhu/copier"
	"github.com/quizdeck/quizdeck-api/internal/apperr"
	"github.com/quizdeck/quizdeck-api/internal/dto"
	"github.com/quizdeck/quizdeck-api/internal/model"
	"github.com/quizdeck/quizdeck-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type StudentService interface {
	List(scope *repository.Scope) ([]dto.StudentResponse, error)
	Create(scope *repository.Scope, req dto.StudentCreateRequest) (*dto.StudentResponse, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) List(scope *repository.Scope) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.FindAll(scope)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list students from repository")
		return nil, apperr.Internal("Failed to list students", err)
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		var resp dto.StudentResponse
		if err := copier.Copy(&resp, &students[i]); err != nil {
			log.Error().Err(err).Msg("Failed to copy Student model to StudentResponse")
			return nil, apperr.Internal("Failed to prepare student response", err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *studentService) Create(scope *repository.Scope, req dto.StudentCreateRequest) (*dto.StudentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.BadRequest("name is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, apperr.BadRequest("email is required")
	}

	student := &model.Student{
		TeacherID:  scope.TeacherID(),
		Name:       name,
		Email:      email,
		Number:     normalizeOptional(req.Number),
		Class:      normalizeOptional(req.Class),
		Div:        normalizeOptional(req.Div),
		RollNumber: normalizeOptional(req.RollNumber),
	}
	if err := s.studentRepo.Create(scope, student); err != nil {
		log.Error().Err(err).Msg("Failed to create student")
		return nil, apperr.Internal("Failed to create student", err)
	}

	var resp dto.StudentResponse
	if err := copier.Copy(&resp, student); err != nil {
		log.Error().Err(err).Msg("Failed to copy Student model to StudentResponse")
		return nil, apperr.Internal("Failed to prepare student response", err)
	}
	return &resp, nil
}

// normalizeOptional trims an optional value; empty-after-trim becomes null
// rather than an empty string.
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
