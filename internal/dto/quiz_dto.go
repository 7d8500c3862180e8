package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type QuizCreateRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Class       *string         `json:"class"`
	Topic       *string         `json:"topic"`
	Questions   json.RawMessage `json:"questions"`
}

// QuizUpdateRequest carries only the fields that were present in a PATCH
// body, so absent fields stay untouched server-side.
type QuizUpdateRequest map[string]json.RawMessage

type QuizResponse struct {
	ID          uuid.UUID       `json:"id"`
	TeacherID   uuid.UUID       `json:"teacher_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Class       *string         `json:"class"`
	Topic       *string         `json:"topic"`
	Questions   json.RawMessage `json:"questions" swaggertype:"array,object"`
	CreatedAt   time.Time       `json:"created_at"`
}

var emptyQuestions = json.RawMessage("[]")

// SanitizeQuestions replaces anything that is not a JSON array with an empty
// array. Silent sanitization, not a validation error.
func SanitizeQuestions(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' || !json.Valid(trimmed) {
		return emptyQuestions
	}
	return trimmed
}
