package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/quizdeck/quizdeck-api/internal/apperr"
	"github.com/quizdeck/quizdeck-api/internal/dto"
	"github.com/quizdeck/quizdeck-api/internal/model"
	"github.com/quizdeck/quizdeck-api/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	List(scope *repository.Scope) ([]dto.QuizResponse, error)
	Get(scope *repository.Scope, id string) (*dto.QuizResponse, error)
	Create(scope *repository.Scope, req dto.QuizCreateRequest) (*dto.QuizResponse, error)
	Update(scope *repository.Scope, id string, req dto.QuizUpdateRequest) (*dto.QuizResponse, error)
	Delete(scope *repository.Scope, id string) error
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) List(scope *repository.Scope) ([]dto.QuizResponse, error) {
	quizzes, err := s.quizRepo.FindAll(scope)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes from repository")
		return nil, apperr.Internal("Failed to list quizzes", err)
	}

	// Empty result is an empty sequence, not an error.
	responses := make([]dto.QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		resp, err := quizResponse(&quizzes[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *quizService) Get(scope *repository.Scope, id string) (*dto.QuizResponse, error) {
	quizID, err := uuid.Parse(id)
	if err != nil {
		return nil, quizNotFound()
	}

	quiz, err := s.quizRepo.FindByID(scope, quizID)
	if errors.Is(err, repository.ErrNotVisible) {
		return nil, quizNotFound()
	}
	if err != nil {
		log.Error().Err(err).Str("quizID", id).Msg("Failed to fetch quiz from repository")
		return nil, apperr.Internal("Failed to fetch quiz", err)
	}
	return quizResponse(quiz)
}

func (s *quizService) Create(scope *repository.Scope, req dto.QuizCreateRequest) (*dto.QuizResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.BadRequest("name is required")
	}

	quiz := &model.Quiz{
		TeacherID:   scope.TeacherID(),
		Name:        name,
		Description: req.Description,
		Class:       req.Class,
		Topic:       req.Topic,
		Questions:   dto.SanitizeQuestions(req.Questions),
	}
	if err := s.quizRepo.Create(scope, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to create quiz")
		return nil, apperr.Internal("Failed to create quiz", err)
	}
	return quizResponse(quiz)
}

func (s *quizService) Update(scope *repository.Scope, id string, req dto.QuizUpdateRequest) (*dto.QuizResponse, error) {
	quizID, err := uuid.Parse(id)
	if err != nil {
		return nil, quizNotFound()
	}

	fields, err := quizUpdateFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, apperr.BadRequest("No fields to update")
	}

	quiz, err := s.quizRepo.Update(scope, quizID, fields)
	if errors.Is(err, repository.ErrNotVisible) {
		return nil, quizNotFound()
	}
	if err != nil {
		log.Error().Err(err).Str("quizID", id).Msg("Failed to update quiz")
		return nil, apperr.Internal("Failed to update quiz", err)
	}
	return quizResponse(quiz)
}

func (s *quizService) Delete(scope *repository.Scope, id string) error {
	quizID, err := uuid.Parse(id)
	if err != nil {
		return quizNotFound()
	}

	err = s.quizRepo.Delete(scope, quizID)
	if errors.Is(err, repository.ErrNotVisible) {
		return quizNotFound()
	}
	if err != nil {
		log.Error().Err(err).Str("quizID", id).Msg("Failed to delete quiz")
		return apperr.Internal("Failed to delete quiz", err)
	}
	return nil
}

// quizUpdateFields builds the column map from the fields present in the PATCH
// body. Absent fields are left untouched; unrecognized fields are ignored.
func quizUpdateFields(req dto.QuizUpdateRequest) (map[string]any, error) {
	fields := make(map[string]any)

	if raw, ok := req["name"]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, apperr.BadRequest("name must be a string")
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperr.BadRequest("name cannot be empty")
		}
		fields["name"] = name
	}

	for _, column := range []string{"description", "class", "topic"} {
		raw, ok := req[column]
		if !ok {
			continue
		}
		var value *string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, apperr.BadRequest(column + " must be a string or null")
		}
		fields[column] = value
	}

	if raw, ok := req["questions"]; ok {
		fields["questions"] = dto.SanitizeQuestions(raw)
	}

	return fields, nil
}

func quizNotFound() *apperr.Error {
	return apperr.NotFound("Not found", "Quiz not found")
}

func quizResponse(quiz *model.Quiz) (*dto.QuizResponse, error) {
	var resp dto.QuizResponse
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to QuizResponse")
		return nil, apperr.Internal("Failed to prepare quiz response", fmt.Errorf("copying quiz: %w", err))
	}
	if resp.Questions == nil {
		resp.Questions = json.RawMessage("[]")
	}
	return &resp, nil
}
