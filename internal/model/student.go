package model

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TeacherID  uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"not null" json:"email"`
	Number     *string   `json:"number"`
	Class      *string   `json:"class"`
	Div        *string   `json:"div"`
	RollNumber *string   `gorm:"column:roll_number" json:"roll_number"`
	CreatedAt  time.Time `json:"created_at"`
}
