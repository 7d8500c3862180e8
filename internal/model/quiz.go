package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Quiz is owned by exactly one teacher. Ownership is enforced by the
// database's row-level security, not by application queries; TeacherID is set
// once at creation and never updated.
type Quiz struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TeacherID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Name        string          `gorm:"not null" json:"name"`
	Description *string         `json:"description"`
	Class       *string         `json:"class"`
	Topic       *string         `json:"topic"`
	Questions   json.RawMessage `gorm:"type:jsonb;not null;default:'[]'" json:"questions"`
	CreatedAt   time.Time       `json:"created_at"`
}
